package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/entity"
	"github.com/gorewood/minecorg/internal/output"
)

// entityFlags holds the command-line flags for new entity.
type entityFlags struct {
	model   string
	texture string
	force   bool
	dryRun  bool
}

// newNewCmd creates the new command group.
func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate content in the current project",
	}
	cmd.AddCommand(newEntityCmd())
	return cmd
}

// newEntityCmd creates the new entity command.
func newEntityCmd() *cobra.Command {
	flags := &entityFlags{}

	cmd := &cobra.Command{
		Use:   "entity <name>",
		Short: "Generate a custom entity",
		Long: `Generate a custom entity from the entity templates.

Writes, with <ns> the project namespace:
  BP/entities/<name>.json                            identifier <ns>:<name>
  RP/entity/<name>.entity.json                       client entity
  RP/render_controllers/<name>.render_controllers.json
  RP/models/entity/<name>.geo.json                   identifier geometry.<name>
  RP/textures/entity/<name>.png|.tga                 with --texture
and adds the entity and spawn egg names to RP/texts/en_US.lang.

The model is taken from --model, else from a model already in the
project, else from the built-in template. A model without a
minecraft:geometry description identifier is rejected and nothing is
written.

Examples:
  minecorg new entity wolf
  minecorg new entity dire_wolf --model ~/models/wolf.geo.json --texture wolf.png
  minecorg new entity wolf --dry-run --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewEntity(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Geometry file to use")
	cmd.Flags().StringVarP(&flags.texture, "texture", "t", "", "Texture to copy (.png or .tga)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Replace an existing entity")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the files without writing them")

	return cmd
}

// runNewEntity executes the new entity command.
func runNewEntity(cmd *cobra.Command, name string, flags *entityFlags) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.loadProject("")
	if err != nil {
		return err
	}

	plan, err := entity.NewGenerator(a.loader, a.logger).Plan(cmd.Context(), p, entity.Options{
		Name:        name,
		ModelPath:   flags.model,
		TexturePath: flags.texture,
		Force:       flags.force,
	})
	if err != nil {
		return fail(a.printer, planError(err))
	}

	files := plan.Paths()
	if !flags.dryRun {
		written, err := plan.Write()
		if err != nil {
			return fail(a.printer, output.NewSystemErrorWithCause(err.Error(), err).
				WithHint("files written before the failure were left in place: "+joinOrNone(written)))
		}
		files = written
	}

	if a.printer.IsJSON() {
		status := "created"
		if flags.dryRun {
			status = "dry_run"
		}
		lang := make([]string, 0, len(plan.Lang))
		for _, entry := range plan.Lang {
			lang = append(lang, entry.Key)
		}
		return a.printer.WriteJSON(map[string]any{
			"status":       status,
			"id":           plan.Entity.ID,
			"model_source": plan.ModelSource,
			"files":        files,
			"lang":         lang,
		})
	}

	title := "Created " + plan.Entity.ID
	if flags.dryRun {
		title = "Would create " + plan.Entity.ID
	}
	a.printer.Box(title, strings.Join(files, "\n"))
	a.printer.Stderr("Model: %s\n", plan.ModelSource)
	return nil
}

// planError maps entity planning failures to exit errors.
func planError(err error) *output.ExitError {
	switch {
	case errors.Is(err, entity.ErrExists):
		return output.NewConflictErrorWithCause(err.Error(), err).WithHint("pass --force to replace it")
	case errors.Is(err, entity.ErrEmptyTemplate):
		return output.NewUserErrorWithCause(err.Error(), err).WithHint("check the templates with 'minecorg templates'")
	default:
		return output.NewUserErrorWithCause(err.Error(), err)
	}
}

func joinOrNone(paths []string) string {
	if len(paths) == 0 {
		return "none"
	}
	return strings.Join(paths, ", ")
}
