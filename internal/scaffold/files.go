package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/minecorg/internal/jsontree"
	"github.com/gorewood/minecorg/internal/rewrite"
	"github.com/gorewood/minecorg/internal/templates"
)

// buildFiles maps project-relative paths to the text templates copied
// verbatim by the build_config step.
var buildFiles = []struct {
	path     string
	template string
}{
	{"tsconfig.json", templates.TSConfig},
	{"just.config.ts", templates.JustConfig},
	{"eslint.config.mjs", templates.ESLintConfig},
	{filepath.Join("scripts", "main.ts"), templates.MainScript},
	{".gitignore", templates.GitIgnore},
}

// NPMName turns a project name into a valid npm package name.
func NPMName(projectName string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(projectName)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	name := strings.Trim(b.String(), "-._")
	if name == "" {
		return "minecraft-addon"
	}
	return name
}

func (s *Scaffolder) packageJSONStep(_ context.Context, opts Options) StepResult {
	path := filepath.Join(opts.Root, "package.json")
	if !shouldWrite(path, opts.Force) {
		return StepResult{Status: StatusSkipped, Message: "package.json exists"}
	}
	if opts.DryRun {
		return StepResult{Status: StatusDryRun, Message: "would write package.json"}
	}

	tmpl := s.loader.Load(templates.PackageJSON)
	if tmpl.IsEmptyObject() {
		return failed("template %s is empty or missing", templates.PackageJSON)
	}
	tree, err := rewrite.SubstituteValues(tmpl,
		[]string{"project_name", "mod_name", "project_description"},
		[]string{NPMName(opts.Meta.ProjectName), opts.Meta.ModName, opts.Meta.Description})
	if err != nil {
		return failed("%v", err)
	}
	if err := writeJSON(path, tree); err != nil {
		return failed("%v", err)
	}
	return StepResult{Status: StatusOK, Message: "wrote package.json"}
}

func (s *Scaffolder) buildConfigStep(_ context.Context, opts Options) StepResult {
	var pending []string
	for _, f := range buildFiles {
		if shouldWrite(filepath.Join(opts.Root, f.path), opts.Force) {
			pending = append(pending, f.path)
		}
	}
	if len(pending) == 0 {
		return StepResult{Status: StatusSkipped, Message: "build files exist"}
	}
	if opts.DryRun {
		return StepResult{Status: StatusDryRun, Message: "would write " + strings.Join(pending, ", ")}
	}

	var problems []string
	written := 0
	for _, f := range buildFiles {
		path := filepath.Join(opts.Root, f.path)
		if !shouldWrite(path, opts.Force) {
			continue
		}
		data, err := s.loader.Raw(f.template)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if err := writeFile(path, data); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		written++
	}
	if len(problems) > 0 {
		return failed("%s", strings.Join(problems, "; "))
	}
	return StepResult{Status: StatusOK, Message: fmt.Sprintf("wrote %d files", written)}
}

func writeJSON(path string, tree jsontree.Value) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // pack directories are shared with the game
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return jsontree.WriteFile(path, tree)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // see writeJSON
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // project files are meant to be readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
