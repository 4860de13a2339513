package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/scaffold"
)

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a TTY-aware style set.
func initStyles(isTTY bool) initStyleSet {
	if !isTTY {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// formatStepName converts step names to display names.
func formatStepName(name string) string {
	switch name {
	case scaffold.StepProjectDir:
		return "Project directory"
	case scaffold.StepStructure:
		return "Folder structure"
	case scaffold.StepMetadata:
		return "minecorg.json"
	case scaffold.StepManifests:
		return "Pack manifests"
	case scaffold.StepPackageJSON:
		return "package.json"
	case scaffold.StepBuildConfig:
		return "Build configuration"
	case scaffold.StepEnv:
		return ".env"
	case scaffold.StepGit:
		return "Git repository"
	default:
		return name
	}
}

// printNextSteps outputs the next steps message.
func printNextSteps(printer *output.Printer, styles initStyleSet, root string) {
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("Project ready!")))
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Enter the project:"))
	printer.Print("     %s\n", styles.accent.Render("cd "+root))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Add your first entity:"))
	printer.Print("     %s\n", styles.accent.Render("minecorg new entity <name> --model <file.geo.json>"))
	printer.Println()
	printer.Print("  3. %s\n", styles.dim.Render("Install build tools:"))
	printer.Print("     %s\n", styles.accent.Render("npm install"))
}
