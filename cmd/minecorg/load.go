package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/scaffold"
)

// loadFlags holds the command-line flags for the load command.
type loadFlags struct {
	initFlags
	fix bool
}

// newLoadCmd creates the load command.
func newLoadCmd() *cobra.Command {
	flags := &loadFlags{}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Adopt an existing add-on directory as a minecorg project",
		Long: `Write minecorg.json for an add-on that was not created by minecorg.

After writing the metadata, load scans the directory against the folder
structure and lists what is missing. With --fix (or after confirming at
the prompt) the missing directories and files are created.

Examples:
  minecorg load                                   # Prompt for metadata
  minecorg load --yes --project-name Wolves --mod-name wolves --namespace myns --fix`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoad(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept defaults, no prompts")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Replace an existing minecorg.json")
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "Create missing structure items")
	cmd.Flags().StringVar(&flags.projectName, "project-name", "", "Human-readable project name")
	cmd.Flags().StringVar(&flags.modName, "mod-name", "", "Pack folder name")
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "Identifier namespace")
	cmd.Flags().StringVar(&flags.description, "description", "", "Pack description")
	cmd.Flags().StringVar(&flags.engine, "min-engine-version", "", "Minimum engine version")

	return cmd
}

// runLoad executes the load command.
func runLoad(cmd *cobra.Command, flags *loadFlags) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if project.Exists(a.root) && !flags.force {
		return fail(a.printer, output.NewConflictError(project.MetadataFile+" already exists in "+a.root).
			WithHint("pass --force to replace it"))
	}

	meta, err := collectMetadata(cmd, a, &flags.initFlags, false)
	if err != nil {
		return err
	}
	if err := project.Save(a.root, meta); err != nil {
		return fail(a.printer, output.NewSystemErrorWithCause(err.Error(), err))
	}

	p := project.New(a.root, meta)
	s := scaffold.New(a.loader, scaffold.WithLogger(a.logger))
	missing, err := s.Scan(p)
	if err != nil {
		return fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	fix := flags.fix
	if !fix && len(missing) > 0 && !a.printer.IsJSON() {
		printMissing(a.printer, missing)
		fix = newPrompter(cmd, flags.yes).confirm("Create the missing items?")
	}

	var created []project.Item
	if fix && len(missing) > 0 {
		if created, err = s.Repair(p); err != nil {
			return fail(a.printer, output.NewSystemErrorWithCause(err.Error(), err))
		}
		missing = nil
	}

	if a.printer.IsJSON() {
		return a.printer.WriteJSON(map[string]any{
			"status":   "ok",
			"root":     a.root,
			"project":  meta,
			"missing":  nonNilItems(missing),
			"created":  nonNilItems(created),
			"metadata": project.MetadataFile,
		})
	}

	_ = a.printer.Success(map[string]any{"message": "Metadata stored in " + project.MetadataFile})
	a.printer.KeyValue("project_name", meta.ProjectName)
	a.printer.KeyValue("mod_name", meta.ModName)
	a.printer.KeyValue("namespace", meta.Namespace)
	if len(created) > 0 {
		a.printer.Stderr("Created %s\n", pluralize(len(created), "missing item"))
	}
	return nil
}

func nonNilItems(items []project.Item) []project.Item {
	if items == nil {
		return []project.Item{}
	}
	return items
}
