package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/templates"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [name]",
		Short: "List templates or print one",
		Long: `List the templates minecorg uses and where each one comes from.

Templates are resolved in order:
  1. --templates-dir, or the templates_dir setting
  2. templates/ next to the minecorg executable
  3. Built-in templates

Copy a built-in template into your templates directory to customize it.

Examples:
  minecorg templates                   # List templates
  minecorg templates entity.json       # Print the effective entity.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runTemplateShow(cmd, args[0])
			}
			return runTemplatesList(cmd)
		},
	}
}

func runTemplatesList(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	infos := a.loader.List()

	if a.printer.IsJSON() {
		return a.printer.WriteJSON(map[string]any{"templates": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := string(info.Source)
		if info.Overrides != "" {
			source += " (overrides " + string(info.Overrides) + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Path})
	}
	a.printer.Table([]string{"NAME", "SOURCE", "PATH"}, rows)
	return nil
}

func runTemplateShow(cmd *cobra.Command, name string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	data, err := a.loader.Raw(name)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return fail(a.printer, output.NewUserErrorWithCause(err.Error(), err).
				WithHint("run 'minecorg templates' to see the available names"))
		}
		return fail(a.printer, output.NewSystemErrorWithCause(err.Error(), err))
	}

	if a.printer.IsJSON() {
		return a.printer.WriteJSON(map[string]any{"name": name, "content": string(data)})
	}
	a.printer.Print("%s", data)
	if !strings.HasSuffix(string(data), "\n") {
		a.printer.Println()
	}
	return nil
}
