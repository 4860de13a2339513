// Package scaffold creates a new Bedrock add-on project: the folder
// skeleton, minecorg.json, pack manifests and the TypeScript build setup.
//
// Initialization runs as a list of named steps. Each step reports its own
// outcome so a failure in one does not hide the others.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/git"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/templates"
)

// Status is the outcome of a step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusDryRun  Status = "dry_run"
)

// Step names in execution order.
const (
	StepProjectDir  = "project_dir"
	StepStructure   = "structure"
	StepMetadata    = "metadata"
	StepManifests   = "manifests"
	StepPackageJSON = "package_json"
	StepBuildConfig = "build_config"
	StepEnv         = "env"
	StepGit         = "git"
)

// StepResult tracks the result of a single initialization step.
type StepResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Options describe the project to create.
type Options struct {
	Root   string
	Meta   project.Metadata
	Author string
	Force  bool // overwrite files that already have content
	DryRun bool
	Git    bool
}

// Scaffolder runs the initialization steps.
type Scaffolder struct {
	loader  *templates.Loader
	logger  *zap.Logger
	newUUID func() string
	gitInit func(ctx context.Context, dir string) error
	isRepo  func(ctx context.Context, dir string) bool
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scaffolder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUUIDs replaces the random UUID source.
func WithUUIDs(next func() string) Option {
	return func(s *Scaffolder) { s.newUUID = next }
}

// WithGit replaces the git calls used by the git step.
func WithGit(isRepo func(context.Context, string) bool, initRepo func(context.Context, string) error) Option {
	return func(s *Scaffolder) {
		s.isRepo = isRepo
		s.gitInit = initRepo
	}
}

// New returns a Scaffolder reading templates from loader.
func New(loader *templates.Loader, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		loader:  loader,
		logger:  zap.NewNop(),
		newUUID: func() string { return uuid.NewString() },
		gitInit: git.Init,
		isRepo:  git.IsRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes every step and returns their results in order. report, if
// non-nil, is called as each step finishes. Steps after project_dir are
// only attempted when the project directory is usable.
func (s *Scaffolder) Run(ctx context.Context, opts Options, report func(StepResult)) []StepResult {
	steps := []struct {
		name string
		fn   func(context.Context, Options) StepResult
	}{
		{StepProjectDir, s.projectDirStep},
		{StepStructure, s.structureStep},
		{StepMetadata, s.metadataStep},
		{StepManifests, s.manifestsStep},
		{StepPackageJSON, s.packageJSONStep},
		{StepBuildConfig, s.buildConfigStep},
		{StepEnv, s.envStep},
		{StepGit, s.gitStep},
	}

	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			results = append(results, StepResult{Name: step.name, Status: StatusFailed, Message: err.Error()})
			continue
		}
		result := step.fn(ctx, opts)
		result.Name = step.name
		s.logger.Debug("init step finished",
			zap.String("step", result.Name),
			zap.String("status", string(result.Status)),
			zap.String("message", result.Message))
		results = append(results, result)
		if report != nil {
			report(result)
		}
		if i == 0 && result.Status == StatusFailed {
			break
		}
	}
	return results
}

// Failed reports whether any step failed.
func Failed(results []StepResult) bool {
	for _, r := range results {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}

func failed(format string, args ...any) StepResult {
	return StepResult{Status: StatusFailed, Message: fmt.Sprintf(format, args...)}
}

func (s *Scaffolder) projectDirStep(_ context.Context, opts Options) StepResult {
	info, err := os.Stat(opts.Root)
	switch {
	case err == nil && info.IsDir():
		return StepResult{Status: StatusSkipped, Message: "already exists"}
	case err == nil:
		return failed("%s exists and is not a directory", opts.Root)
	case opts.DryRun:
		return StepResult{Status: StatusDryRun, Message: "would create " + opts.Root}
	}
	if err := os.MkdirAll(opts.Root, 0o755); err != nil { //nolint:gosec // project directories are shared with the game
		return failed("creating %s: %v", opts.Root, err)
	}
	return StepResult{Status: StatusOK, Message: "created " + opts.Root}
}

func (s *Scaffolder) structureStep(_ context.Context, opts Options) StepResult {
	tree := s.loader.Load(templates.FolderStructure)
	if tree.IsEmptyObject() {
		return failed("template %s is empty or missing", templates.FolderStructure)
	}
	vars := opts.Meta.Vars()

	if opts.DryRun {
		missing, err := project.ScanStructure(opts.Root, tree, vars)
		if err != nil {
			return failed("%v", err)
		}
		if len(missing) == 0 {
			return StepResult{Status: StatusSkipped, Message: "already complete"}
		}
		return StepResult{Status: StatusDryRun, Message: fmt.Sprintf("would create %d items", len(missing))}
	}

	created, err := project.CreateStructure(opts.Root, tree, vars)
	if err != nil {
		return failed("%v", err)
	}
	if len(created) == 0 {
		return StepResult{Status: StatusSkipped, Message: "already complete"}
	}
	return StepResult{Status: StatusOK, Message: fmt.Sprintf("created %d items", len(created))}
}

func (s *Scaffolder) metadataStep(_ context.Context, opts Options) StepResult {
	if err := opts.Meta.Validate(); err != nil {
		return failed("%v", err)
	}
	path := filepath.Join(opts.Root, project.MetadataFile)
	if !shouldWrite(path, opts.Force) {
		return StepResult{Status: StatusSkipped, Message: project.MetadataFile + " exists"}
	}
	if opts.DryRun {
		return StepResult{Status: StatusDryRun, Message: "would write " + project.MetadataFile}
	}
	if err := project.Save(opts.Root, opts.Meta); err != nil {
		return failed("%v", err)
	}
	return StepResult{Status: StatusOK, Message: "wrote " + project.MetadataFile}
}

func (s *Scaffolder) envStep(_ context.Context, opts Options) StepResult {
	current, err := project.EnvProjectName(opts.Root)
	if err != nil {
		return failed("%v", err)
	}
	if current != "" && !opts.Force {
		return StepResult{Status: StatusSkipped, Message: project.EnvProjectNameKey + " already set"}
	}
	if opts.DryRun {
		return StepResult{Status: StatusDryRun, Message: "would write " + project.EnvFile}
	}
	if err := project.WriteEnv(opts.Root, opts.Meta.ModName); err != nil {
		return failed("%v", err)
	}
	return StepResult{Status: StatusOK, Message: project.EnvProjectNameKey + "=" + opts.Meta.ModName}
}

func (s *Scaffolder) gitStep(ctx context.Context, opts Options) StepResult {
	switch {
	case !opts.Git:
		return StepResult{Status: StatusSkipped, Message: "disabled (use --git)"}
	case opts.DryRun:
		return StepResult{Status: StatusDryRun, Message: "would run git init"}
	case s.isRepo(ctx, opts.Root):
		return StepResult{Status: StatusSkipped, Message: "already a git repository"}
	}
	if err := s.gitInit(ctx, opts.Root); err != nil {
		return failed("%v", err)
	}
	return StepResult{Status: StatusOK, Message: "initialized repository"}
}

// shouldWrite reports whether a generated file may be written: it is
// missing, empty (a placeholder from the folder structure), or force is
// set.
func shouldWrite(path string, force bool) bool {
	if force {
		return true
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular() && info.Size() == 0
}
