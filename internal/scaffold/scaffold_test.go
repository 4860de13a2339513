package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gorewood/minecorg/internal/jsontree"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/templates"
)

func sequentialUUIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
	}
}

type fakeGit struct {
	repo  bool
	calls int
	err   error
}

func (f *fakeGit) isRepo(context.Context, string) bool { return f.repo }

func (f *fakeGit) init(context.Context, string) error {
	f.calls++
	return f.err
}

func newTestScaffolder(t *testing.T, g *fakeGit, opts ...templates.Option) *Scaffolder {
	t.Helper()
	loader := templates.New(append([]templates.Option{templates.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	return New(loader,
		WithLogger(zaptest.NewLogger(t)),
		WithUUIDs(sequentialUUIDs()),
		WithGit(g.isRepo, g.init))
}

func testOptions(root string) Options {
	return Options{
		Root: root,
		Meta: project.Metadata{
			ProjectName: "Wolf Pack",
			ModName:     "wolf_pack",
			Namespace:   "myns",
		},
		Author: "Steve",
	}
}

func statuses(results []StepResult) map[string]Status {
	out := make(map[string]Status, len(results))
	for _, r := range results {
		out[r.Name] = r.Status
	}
	return out
}

func TestRunCreatesProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "wolf_pack")
	g := &fakeGit{}
	s := newTestScaffolder(t, g)

	var reported []string
	results := s.Run(context.Background(), testOptions(root), func(r StepResult) {
		reported = append(reported, r.Name)
	})

	require.False(t, Failed(results), "%+v", results)
	assert.Equal(t, []string{
		StepProjectDir, StepStructure, StepMetadata, StepManifests,
		StepPackageJSON, StepBuildConfig, StepEnv, StepGit,
	}, reported)
	assert.Equal(t, map[string]Status{
		StepProjectDir:  StatusOK,
		StepStructure:   StatusOK,
		StepMetadata:    StatusOK,
		StepManifests:   StatusOK,
		StepPackageJSON: StatusOK,
		StepBuildConfig: StatusOK,
		StepEnv:         StatusOK,
		StepGit:         StatusSkipped,
	}, statuses(results))
	assert.Zero(t, g.calls)

	p, err := project.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "myns", p.Meta.Namespace)

	tree := templates.New().Load(templates.FolderStructure)
	missing, err := project.ScanStructure(root, tree, p.Meta.Vars())
	require.NoError(t, err)
	assert.Empty(t, missing)

	for _, name := range []string{"package.json", "tsconfig.json", "just.config.ts", "eslint.config.mjs", ".gitignore", filepath.Join("scripts", "main.ts")} {
		info, err := os.Stat(filepath.Join(root, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}

	envName, err := project.EnvProjectName(root)
	require.NoError(t, err)
	assert.Equal(t, "wolf_pack", envName)

	pkg, err := jsontree.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	pkgObj, _ := pkg.AsObject()
	name, _ := pkgObj.Get("name")
	got, _ := name.AsString()
	assert.Equal(t, "wolf-pack", got)
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t, &fakeGit{})
	opts := testOptions(root)

	first := s.Run(context.Background(), opts, nil)
	require.False(t, Failed(first))

	manifest, _ := project.New(root, opts.Meta).ManifestFiles()
	before, err := os.ReadFile(manifest)
	require.NoError(t, err)

	second := s.Run(context.Background(), opts, nil)
	require.False(t, Failed(second))
	for _, r := range second {
		assert.Equal(t, StatusSkipped, r.Status, r.Name)
	}

	after, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRunForceRewrites(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t, &fakeGit{})
	opts := testOptions(root)
	require.False(t, Failed(s.Run(context.Background(), opts, nil)))

	tsconfig := filepath.Join(root, "tsconfig.json")
	require.NoError(t, os.WriteFile(tsconfig, []byte("{}"), 0o600))

	opts.Force = true
	results := s.Run(context.Background(), opts, nil)
	assert.Equal(t, StatusOK, statuses(results)[StepBuildConfig])

	data, err := os.ReadFile(tsconfig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compilerOptions")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "new")
	opts := testOptions(root)
	opts.DryRun = true
	opts.Git = true

	results := newTestScaffolder(t, &fakeGit{}).Run(context.Background(), opts, nil)
	require.False(t, Failed(results))
	for _, r := range results {
		assert.Equal(t, StatusDryRun, r.Status, r.Name)
	}
	assert.NoDirExists(t, root)
}

func TestRunProjectDirFailureStops(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o600))

	results := newTestScaffolder(t, &fakeGit{}).Run(context.Background(), testOptions(root), nil)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.True(t, Failed(results))
}

func TestRunInvalidMetadataFailsButContinues(t *testing.T) {
	root := t.TempDir()
	opts := testOptions(root)
	opts.Meta.Namespace = "minecraft"

	results := newTestScaffolder(t, &fakeGit{}).Run(context.Background(), opts, nil)
	st := statuses(results)
	assert.Equal(t, StatusFailed, st[StepMetadata])
	assert.Equal(t, StatusOK, st[StepBuildConfig])
	assert.True(t, Failed(results))
	assert.NoFileExists(t, filepath.Join(root, project.MetadataFile))
}

func TestRunMissingStructureTemplate(t *testing.T) {
	override := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(override, templates.FolderStructure), []byte("{"), 0o600))

	results := newTestScaffolder(t, &fakeGit{}, templates.WithOverrideDir(override)).
		Run(context.Background(), testOptions(t.TempDir()), nil)
	assert.Equal(t, StatusFailed, statuses(results)[StepStructure])
}

func TestGitStep(t *testing.T) {
	tests := []struct {
		name      string
		git       *fakeGit
		want      Status
		wantCalls int
	}{
		{name: "init", git: &fakeGit{}, want: StatusOK, wantCalls: 1},
		{name: "already repo", git: &fakeGit{repo: true}, want: StatusSkipped},
		{name: "init fails", git: &fakeGit{err: errors.New("boom")}, want: StatusFailed, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t.TempDir())
			opts.Git = true
			results := newTestScaffolder(t, tt.git).Run(context.Background(), opts, nil)
			assert.Equal(t, tt.want, statuses(results)[StepGit])
			assert.Equal(t, tt.wantCalls, tt.git.calls)
		})
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := newTestScaffolder(t, &fakeGit{}).Run(ctx, testOptions(t.TempDir()), nil)
	require.Len(t, results, 8)
	assert.True(t, Failed(results))
}

func TestNPMName(t *testing.T) {
	tests := map[string]string{
		"Wolf Pack":      "wolf-pack",
		"  my_mod ":      "my_mod",
		"Dragons & Orcs": "dragons-orcs",
		"!!!":            "minecraft-addon",
		"v1.2 addon":     "v1.2-addon",
	}
	for in, want := range tests {
		assert.Equal(t, want, NPMName(in), in)
	}
}
