package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/minecorg/internal/output"
)

func TestInitCommand(t *testing.T) {
	setupTestEnv(t)
	parent := t.TempDir()

	out, _, err := executeCmd(t, "init", "--json", "--yes",
		"--project", parent,
		"--project-name", "Wolf Pack",
		"--namespace", "myns",
		"--description", "Wolves and more wolves")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, out)
	}

	result := decodeJSON(t, out)
	if result["status"] != "ok" {
		t.Errorf("status = %v, want ok", result["status"])
	}
	root := filepath.Join(parent, "wolf_pack")
	if result["root"] != root {
		t.Errorf("root = %v, want %s", result["root"], root)
	}
	meta, ok := result["project"].(map[string]any)
	if !ok {
		t.Fatalf("project missing from output: %v", result)
	}
	if meta["mod_name"] != "wolf_pack" || meta["namespace"] != "myns" {
		t.Errorf("unexpected project metadata: %v", meta)
	}

	for _, rel := range []string{
		"minecorg.json",
		"package.json",
		".env",
		filepath.Join("behavior_packs", "wolf_pack", "manifest.json"),
		filepath.Join("resource_packs", "wolf_pack", "manifest.json"),
		filepath.Join("behavior_packs", "wolf_pack", "entities"),
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	env, err := os.ReadFile(filepath.Join(root, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(env), `PROJECT_NAME="wolf_pack"`) {
		t.Errorf(".env = %q, want PROJECT_NAME=wolf_pack", env)
	}
}

func TestInitCommandExplicitDir(t *testing.T) {
	setupTestEnv(t)
	dir := filepath.Join(t.TempDir(), "packs", "wolves")

	out, _, err := executeCmd(t, "init", dir, "--json", "--yes",
		"--project-name", "Wolf Pack",
		"--mod-name", "wolves",
		"--namespace", "myns")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "behavior_packs", "wolves", "manifest.json")); err != nil {
		t.Errorf("expected BP manifest under %s: %v", dir, err)
	}
}

func TestInitCommandDryRun(t *testing.T) {
	setupTestEnv(t)
	parent := t.TempDir()

	out, _, err := executeCmd(t, "init", "--json", "--yes", "--dry-run",
		"--project", parent,
		"--project-name", "Wolf Pack",
		"--namespace", "myns")
	if err != nil {
		t.Fatalf("init --dry-run failed: %v\nOutput: %s", err, out)
	}
	if result := decodeJSON(t, out); result["status"] != "dry_run" {
		t.Errorf("status = %v, want dry_run", result["status"])
	}
	if _, err := os.Stat(filepath.Join(parent, "wolf_pack")); !os.IsNotExist(err) {
		t.Errorf("dry run created the project directory (err=%v)", err)
	}
}

func TestInitCommandMissingValues(t *testing.T) {
	setupTestEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "no project name",
			args:    []string{"init", "--json", "--namespace", "myns"},
			wantMsg: "--project-name",
		},
		{
			name:    "no namespace and no setting",
			args:    []string{"init", "--json", "--yes", "--project-name", "Wolf Pack"},
			wantMsg: "--namespace",
		},
		{
			name:    "bad engine version",
			args:    []string{"init", "--json", "--yes", "--project-name", "Wolf Pack", "--namespace", "myns", "--min-engine-version", "one.two"},
			wantMsg: "one.two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--project", t.TempDir())
			out, _, err := executeCmd(t, args...)
			if err == nil {
				t.Fatalf("expected error\nOutput: %s", out)
			}
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output missing %q\nOutput: %s", tt.wantMsg, out)
			}
		})
	}
}

func TestInitCommandUsesNamespaceSetting(t *testing.T) {
	setupTestEnv(t)
	if _, _, err := executeCmd(t, "config", "set", "namespace", "wolfpack"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	parent := t.TempDir()
	out, _, err := executeCmd(t, "init", "--json", "--yes", "--project", parent, "--project-name", "Wolf Pack")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, out)
	}
	meta, _ := decodeJSON(t, out)["project"].(map[string]any)
	if meta["namespace"] != "wolfpack" {
		t.Errorf("namespace = %v, want wolfpack", meta["namespace"])
	}
}

func TestInitCommandHumanOutput(t *testing.T) {
	setupTestEnv(t)
	parent := t.TempDir()

	out, _, err := executeCmd(t, "init", "--yes", "--color", "never",
		"--project", parent,
		"--project-name", "Wolf Pack",
		"--namespace", "myns")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, out)
	}
	for _, want := range []string{"Creating Wolf Pack", "✓", "npm install"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nOutput: %s", want, out)
		}
	}
}

func TestDefaultModName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wolf Pack", "wolf_pack"},
		{"  Wolf   Pack!! ", "wolf_pack"},
		{"Mobs-2", "mobs_2"},
		{"wolves", "wolves"},
	}
	for _, tt := range tests {
		if got := defaultModName(tt.in); got != tt.want {
			t.Errorf("defaultModName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
