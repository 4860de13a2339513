package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/config"
	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/scaffold"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	yes         bool
	force       bool
	dryRun      bool
	git         bool
	projectName string
	modName     string
	namespace   string
	description string
	author      string
	engine      string
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new add-on project",
		Long: `Create a new Bedrock add-on project.

The project gets:
  - behavior_packs/<mod> and resource_packs/<mod> from folder_structure.json
  - minecorg.json with the project name, mod name and namespace
  - pack manifests with fresh UUIDs, the BP depending on the RP
  - package.json and the TypeScript build configuration
  - .env with PROJECT_NAME for the build scripts
  - a git repository (with --git)

The directory defaults to ./<mod name>. Existing files are kept unless
--force is given, so init can be rerun to fill in what is missing.

Examples:
  minecorg init                                  # Prompt for everything
  minecorg init --yes --project-name "Wolf Pack" --namespace myns
  minecorg init packs/wolves --mod-name wolves   # Choose the directory
  minecorg init --dry-run --json                 # Show what would be done`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept defaults, no prompts")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite generated files that already have content")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")
	cmd.Flags().BoolVar(&flags.git, "git", false, "Initialize a git repository")
	cmd.Flags().StringVar(&flags.projectName, "project-name", "", "Human-readable project name")
	cmd.Flags().StringVar(&flags.modName, "mod-name", "", "Pack folder name (default: derived from the project name)")
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "Identifier namespace (default: namespace setting)")
	cmd.Flags().StringVar(&flags.description, "description", "", "Pack description")
	cmd.Flags().StringVar(&flags.author, "author", "", "Manifest author (default: author setting)")
	cmd.Flags().StringVar(&flags.engine, "min-engine-version", "", "Minimum engine version (default: min_engine_version setting)")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string, flags *initFlags) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	meta, err := collectMetadata(cmd, a, flags, true)
	if err != nil {
		return err
	}

	root := filepath.Join(a.root, meta.ModName)
	if len(args) == 1 {
		root = args[0]
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	opts := scaffold.Options{
		Root:   root,
		Meta:   meta,
		Author: flags.author,
		Force:  flags.force,
		DryRun: flags.dryRun,
		Git:    flags.git,
	}

	styles := initStyles(a.printer.IsTTY())
	var report func(scaffold.StepResult)
	if !a.printer.IsJSON() {
		heading := "Creating " + meta.ProjectName
		if flags.dryRun {
			heading = "Dry run: " + heading
		}
		a.printer.Println()
		a.printer.Print("%s %s\n\n", styles.heading.Render(heading), styles.dim.Render(root))
		report = func(step scaffold.StepResult) {
			a.printer.Step(output.StepStatus(step.Status), formatStepName(step.Name), step.Message)
		}
	}

	results := scaffold.New(a.loader, scaffold.WithLogger(a.logger)).Run(cmd.Context(), opts, report)
	failed := countFailed(results)

	if a.printer.IsJSON() {
		status := string(scaffold.StatusOK)
		switch {
		case failed > 0:
			status = string(scaffold.StatusFailed)
		case flags.dryRun:
			status = string(scaffold.StatusDryRun)
		}
		if err := a.printer.WriteJSON(map[string]any{
			"status":  status,
			"root":    root,
			"project": meta,
			"steps":   results,
		}); err != nil {
			return output.NewSystemErrorWithCause("writing output", err)
		}
		if failed > 0 {
			return output.NewSystemError(fmt.Sprintf("init failed: %s", pluralize(failed, "step")))
		}
		return nil
	}

	if failed > 0 {
		return fail(a.printer, output.NewSystemError(fmt.Sprintf("init failed: %s", pluralize(failed, "step"))).
			WithHint("fix the problem and rerun init; completed steps are skipped"))
	}
	if !flags.dryRun {
		printNextSteps(a.printer, styles, root)
	}
	return nil
}

// collectMetadata fills project metadata from flags, settings and prompts.
func collectMetadata(cmd *cobra.Command, a *app, flags *initFlags, withAuthor bool) (project.Metadata, error) {
	p := newPrompter(cmd, flags.yes)

	meta := project.Metadata{
		ProjectName: flags.projectName,
		ModName:     flags.modName,
		Namespace:   flags.namespace,
		Description: flags.description,
	}

	missing, err := p.fill([]field{
		{flag: "project-name", label: "Project name", value: &meta.ProjectName, needed: true},
	})
	if err != nil {
		return meta, fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
	}
	rest := []field{
		{flag: "mod-name", label: "Mod name", value: &meta.ModName, def: defaultModName(meta.ProjectName), needed: true},
		{flag: "namespace", label: "Namespace", value: &meta.Namespace, def: a.settings.Namespace, needed: true},
		{flag: "description", label: "Description", value: &meta.Description},
	}
	if withAuthor {
		rest = append(rest, field{flag: "author", label: "Author", value: &flags.author, def: a.settings.Author})
	}
	more, err := p.fill(rest)
	if err != nil {
		return meta, fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
	}
	missing = append(missing, more...)
	if len(missing) > 0 {
		return meta, fail(a.printer, output.NewUserError("missing required values: "+strings.Join(missing, ", ")).
			WithHint("pass them as flags, set defaults with 'minecorg config set', or run in a terminal"))
	}

	engine := flags.engine
	if engine == "" {
		engine = a.settings.MinEngineVersion
	}
	if engine != "" {
		normalized, err := config.NormalizeEngineVersion(engine)
		if err != nil {
			return meta, fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
		}
		meta.MinEngineVersion = normalized
	}

	if err := meta.Validate(); err != nil {
		return meta, fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
	}
	return meta, nil
}

var nonModChars = regexp.MustCompile(`[^a-z0-9]+`)

// defaultModName turns "Wolf Pack!" into "wolf_pack".
func defaultModName(projectName string) string {
	return strings.Trim(nonModChars.ReplaceAllString(strings.ToLower(projectName), "_"), "_")
}

func countFailed(results []scaffold.StepResult) int {
	n := 0
	for _, r := range results {
		if r.Status == scaffold.StatusFailed {
			n++
		}
	}
	return n
}
