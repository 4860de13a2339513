package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/scaffold"
)

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List folder structure items missing from a project",
		Long: `Compare a project against folder_structure.json and list what is missing.

A missing directory is listed once; its contents are not. Use --fix to
create the missing items (existing files are never touched).

Examples:
  minecorg scan                 # Scan the current project
  minecorg scan ../wolves       # Scan another project
  minecorg scan --fix           # Create what is missing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Create the missing items")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, args []string, fix bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}
	p, err := a.loadProject(dir)
	if err != nil {
		return err
	}

	s := scaffold.New(a.loader, scaffold.WithLogger(a.logger))
	missing, err := s.Scan(p)
	if err != nil {
		return fail(a.printer, output.NewUserErrorWithCause(err.Error(), err))
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
			"root":     p.Root,
			"complete": len(missing) == 0,
			"missing":  nonNilItems(missing),
			"created":  nonNilItems(created),
		})
	}

	switch {
	case len(created) > 0:
		_ = a.printer.Success(map[string]any{"message": "Created " + pluralize(len(created), "missing item")})
	case len(missing) == 0:
		_ = a.printer.Success(map[string]any{"message": "Project structure is complete"})
	default:
		printMissing(a.printer, missing)
		a.printer.Stderr("Run 'minecorg scan --fix' to create them\n")
	}
	return nil
}

// printMissing lists missing structure items, directories with a slash.
func printMissing(printer *output.Printer, missing []project.Item) {
	printer.Section("Missing (" + pluralize(len(missing), "item") + ")")
	for _, item := range missing {
		name := item.Path
		if item.Dir {
			name += "/"
		}
		printer.Println("  " + name)
	}
}
