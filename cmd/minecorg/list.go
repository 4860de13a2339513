package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/project"
)

// listFlags holds the command-line flags for the list command.
type listFlags struct {
	models   bool
	textures bool
}

// listGroup is the listing of one asset kind.
type listGroup struct {
	Kind    project.AssetKind `json:"kind"`
	Dir     string            `json:"dir"`
	Missing bool              `json:"missing,omitempty"`
	Count   int               `json:"count"`
	Assets  []project.Asset   `json:"assets"`
}

// listCategories maps the command argument to the pack folder name.
var listCategories = map[string]string{
	"entity": project.CategoryEntity,
	"block":  project.CategoryBlocks,
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list entity|block",
		Short: "List definitions, models or textures in the project",
		Long: `List what the project contains for entities or blocks.

Without flags, lists behavior pack definitions and their identifiers.
With -m and/or -t, lists resource pack models and/or textures instead.

Examples:
  minecorg list entity          # Entity definitions
  minecorg list entity -m -t    # Entity models and textures
  minecorg list block -t --json # Block textures as JSON`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"entity", "block"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.models, "model", "m", false, "List models")
	cmd.Flags().BoolVarP(&flags.textures, "texture", "t", false, "List textures")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, arg string, flags *listFlags) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.loadProject("")
	if err != nil {
		return err
	}
	category := listCategories[arg]

	var kinds []project.AssetKind
	if flags.models {
		kinds = append(kinds, project.AssetModels)
	}
	if flags.textures {
		kinds = append(kinds, project.AssetTextures)
	}
	if len(kinds) == 0 {
		kinds = append(kinds, project.AssetDefinitions)
	}

	groups := make([]listGroup, 0, len(kinds))
	for _, kind := range kinds {
		group, err := listKind(p, kind, category)
		if err != nil {
			return fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
		}
		groups = append(groups, group)
	}

	if a.printer.IsJSON() {
		return a.printer.WriteJSON(map[string]any{
			"category": category,
			"results":  groups,
		})
	}

	for _, group := range groups {
		printListGroup(a.printer, group, arg)
	}
	return nil
}

func listKind(p *project.Project, kind project.AssetKind, category string) (listGroup, error) {
	dir, err := p.AssetDir(kind, category)
	if err != nil {
		return listGroup{}, err
	}
	group := listGroup{Kind: kind, Dir: p.Rel(dir), Assets: []project.Asset{}}

	assets, err := p.ListAssets(kind, category)
	switch {
	case errors.Is(err, project.ErrAssetDirMissing):
		group.Missing = true
		return group, nil
	case err != nil:
		return listGroup{}, err
	}
	group.Assets = assets
	group.Count = len(assets)
	return group, nil
}

func printListGroup(printer *output.Printer, group listGroup, noun string) {
	if group.Missing {
		printer.Warn("%s directory missing: %s (run 'minecorg scan --fix')", group.Kind, group.Dir)
		return
	}
	printer.Section(fmt.Sprintf("Available %s (%d)", group.Kind, group.Count))
	if group.Count == 0 {
		printer.Println("No " + noun + " " + string(group.Kind) + " found in " + group.Dir)
		return
	}

	labels := make([]string, 0, len(group.Assets))
	details := make([]string, 0, len(group.Assets))
	for _, asset := range group.Assets {
		label := asset.Name
		if len(asset.Identifiers) > 0 {
			label += " (" + asset.Identifiers[0] + ")"
		}
		labels = append(labels, label)
		details = append(details, asset.File)
	}
	printer.Numbered(labels, details)
}
