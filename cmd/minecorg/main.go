// Package main provides the entry point for the minecorg CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// isVerbose reads the --verbose persistent flag.
func isVerbose(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "verbose") == "true"
}

// useColor resolves --color against TTY detection of the command's output.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the minecorg CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minecorg",
		Short: "Scaffold and grow Minecraft Bedrock add-ons",
		Long: `minecorg - scaffolding for Minecraft Bedrock add-ons.

minecorg creates a behavior pack and resource pack pair with a TypeScript
build setup, then generates content into it from JSON templates:
  - init lays out a new project and its pack manifests
  - new entity writes the definition, client entity, render controller,
    model and lang entries of a custom entity
  - list and scan show what a project contains and what it is missing

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'minecorg --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Variables already in the environment win over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		if _, err := output.ParseColorMode(persistentFlag(cmd, "color")); err != nil {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).WithStderr(cmd.ErrOrStderr())
			return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	cmd.PersistentFlags().String("project", "", "Project directory (default: current directory)")
	cmd.PersistentFlags().String("templates-dir", "", "Directory of template overrides")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads .env.local then .env from the working directory.
// Missing files are fine.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "project", Title: "Project Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "content", Title: "Content Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "tooling", Title: "Tooling Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newInitCmd(), "project")
	addGroupedCommand(cmd, newLoadCmd(), "project")
	addGroupedCommand(cmd, newScanCmd(), "project")
	addGroupedCommand(cmd, newDoctorCmd(), "project")

	addGroupedCommand(cmd, newNewCmd(), "content")
	addGroupedCommand(cmd, newListCmd(), "content")

	addGroupedCommand(cmd, newTemplatesCmd(), "tooling")
	addGroupedCommand(cmd, newConfigCmd(), "tooling")
	addGroupedCommand(cmd, newServeCmd(), "tooling")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
