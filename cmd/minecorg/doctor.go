package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version   string         `json:"version"`
	Project   []checkResult  `json:"project"`
	Templates []checkResult  `json:"templates"`
	Tools     []checkResult  `json:"tools"`
	Summary   *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	fix   bool
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check project health and suggest fixes",
		Long: `Check the current project, the templates and the tools minecorg uses.

Runs health checks in three categories:
  PROJECT   - minecorg.json, folder structure, pack manifests, .env
  TEMPLATES - every JSON template parses and has content
  TOOLS     - git and the settings file

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Examples:
  minecorg doctor              # Run all health checks
  minecorg doctor --fix        # Create missing folders, rewrite .env
  minecorg doctor --quiet      # Only show failures and warnings
  minecorg doctor --json       # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "Auto-fix what can be fixed (missing folders, .env)")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	result := &doctorResult{
		Version:   version,
		Project:   runProjectChecks(a, flags),
		Templates: runTemplateChecks(a),
		Tools:     runToolChecks(cmd, a),
		Summary:   &doctorSummary{},
	}

	allChecks := append(append(append([]checkResult{}, result.Project...), result.Templates...), result.Tools...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	if a.printer.IsJSON() {
		return a.printer.WriteJSON(result)
	}
	outputDoctorHuman(a.printer, result, flags.quiet)
	return nil
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("minecorg doctor %s\n", result.Version)

	printCheckSection(printer, "PROJECT", result.Project, quiet)
	printCheckSection(printer, "TEMPLATES", result.Templates, quiet)
	printCheckSection(printer, "TOOLS", result.Tools, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks. In quiet mode passing
// checks, and sections with nothing else, are left out.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	if quiet {
		hasNonPass := false
		for _, check := range checks {
			if check.Status != checkPass {
				hasNonPass = true
				break
			}
		}
		if !hasNonPass {
			return
		}
	}

	printer.Println()
	printer.Println(title)

	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}
		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     -> %s\n", check.Hint)
		}
	}
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}
