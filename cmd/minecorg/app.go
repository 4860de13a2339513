package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/config"
	"github.com/gorewood/minecorg/internal/logging"
	"github.com/gorewood/minecorg/internal/output"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/templates"
)

// app bundles what most commands need: output, logging, user settings and
// the template loader.
type app struct {
	printer  *output.Printer
	logger   *zap.Logger
	store    *config.Store
	settings config.Settings
	loader   *templates.Loader
	root     string
}

// newApp builds the command context from persistent flags and settings.
// Errors are already printed when it returns one.
func newApp(cmd *cobra.Command) (*app, error) {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	logger := logging.ForCLI(cmd.ErrOrStderr(), isVerbose(cmd))

	store, err := config.Open(config.Dir())
	if err != nil {
		return nil, fail(printer, output.NewUserErrorWithCause(err.Error(), err).
			WithHint("fix or remove "+config.FilePath(config.Dir())))
	}
	settings, err := store.Settings()
	if err != nil {
		return nil, fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	overrideDir := persistentFlag(cmd, "templates-dir")
	if overrideDir == "" {
		overrideDir = settings.TemplatesDir
	}
	loader := templates.New(
		templates.WithOverrideDir(overrideDir),
		templates.WithInstallDir(templates.InstallDir()),
		templates.WithLogger(logger),
	)

	root := persistentFlag(cmd, "project")
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return nil, fail(printer, output.NewSystemErrorWithCause("getting working directory", err))
		}
	}

	logger.Debug("command context ready",
		zap.String("root", root),
		zap.String("templates_dir", overrideDir),
		zap.String("config", store.Path()))

	return &app{
		printer:  printer,
		logger:   logger,
		store:    store,
		settings: settings,
		loader:   loader,
		root:     root,
	}, nil
}

// loadProject reads minecorg.json from dir, or from the app root when dir
// is empty.
func (a *app) loadProject(dir string) (*project.Project, error) {
	if dir == "" {
		dir = a.root
	}
	p, err := project.Load(dir)
	if err != nil {
		return nil, fail(a.printer, projectError(err))
	}
	a.logger.Debug("project loaded", zap.String("root", p.Root), zap.String("namespace", p.Meta.Namespace))
	return p, nil
}

// projectError maps project loading failures to exit errors.
func projectError(err error) *output.ExitError {
	var invalid *project.InvalidError
	switch {
	case errors.Is(err, project.ErrNoProject):
		return output.NewUserErrorWithCause(err.Error(), err).
			WithHint("run 'minecorg init' to create a project or 'minecorg load' to adopt this directory")
	case errors.As(err, &invalid):
		return output.NewUserErrorWithCause(err.Error(), err).
			WithHint("edit " + project.MetadataFile + " or rerun 'minecorg load'")
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

// fail prints err and returns it, so RunE can `return fail(...)`.
func fail(printer *output.Printer, err *output.ExitError) error {
	printer.Error(err)
	return err
}

// pluralize returns "1 file" or "3 files".
func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
