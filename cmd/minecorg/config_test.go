package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/minecorg/internal/output"
)

func TestConfigCommand(t *testing.T) {
	setupTestEnv(t)

	out, _, err := executeCmd(t, "config", "set", "namespace", "myns", "--json")
	if err != nil {
		t.Fatalf("config set failed: %v\nOutput: %s", err, out)
	}
	result := decodeJSON(t, out)
	if result["value"] != "myns" {
		t.Errorf("value = %v, want myns", result["value"])
	}
	if path, _ := result["path"].(string); filepath.Base(path) != "config.yaml" {
		t.Errorf("path = %v, want .../config.yaml", result["path"])
	}

	out, _, err = executeCmd(t, "config", "get", "namespace")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "myns" {
		t.Errorf("config get = %q, want myns", out)
	}

	out, _, err = executeCmd(t, "config", "set", "min_engine_version", "1.20", "--json")
	if err != nil {
		t.Fatalf("config set min_engine_version failed: %v", err)
	}
	if result := decodeJSON(t, out); result["value"] != "1.20.0" {
		t.Errorf("min_engine_version = %v, want 1.20.0", result["value"])
	}

	out, stderr, err := executeCmd(t, "config", "show", "--color", "never")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"namespace: myns", "min_engine_version: 1.20.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q\nOutput: %s", want, out)
		}
	}
	if !strings.Contains(stderr, "config.yaml") {
		t.Errorf("expected settings path on stderr, got %q", stderr)
	}
}

func TestConfigCommandErrors(t *testing.T) {
	setupTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key on get", []string{"config", "get", "colour"}},
		{"unknown key on set", []string{"config", "set", "colour", "red"}},
		{"invalid engine version", []string{"config", "set", "min_engine_version", "latest"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, append(tt.args, "--json")...)
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
			}
		})
	}
}

func TestConfigCommandBrokenFile(t *testing.T) {
	setupTestEnv(t)
	dir := os.Getenv("MINECORG_CONFIG_HOME")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("namespace: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := executeCmd(t, "config", "show")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "config.yaml") {
		t.Errorf("expected hint naming config.yaml, got %q", stderr)
	}
}

func TestTemplatesCommand(t *testing.T) {
	setupTestEnv(t)

	out, _, err := executeCmd(t, "templates", "--json")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	list, _ := decodeJSON(t, out)["templates"].([]any)
	names := map[string]bool{}
	for _, item := range list {
		info, _ := item.(map[string]any)
		name, _ := info["name"].(string)
		names[name] = true
	}
	for _, want := range []string{"entity.json", "entity.geo.json", "folder_structure.json", "bp_manifest.json"} {
		if !names[want] {
			t.Errorf("templates list missing %s", want)
		}
	}

	override := t.TempDir()
	if err := os.WriteFile(filepath.Join(override, "entity.json"), []byte(`{"custom": true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err = executeCmd(t, "templates", "entity.json", "--templates-dir", override)
	if err != nil {
		t.Fatalf("templates entity.json failed: %v", err)
	}
	if !strings.Contains(out, `"custom": true`) {
		t.Errorf("expected override content, got %q", out)
	}

	_, _, err = executeCmd(t, "templates", "nope.json")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("unknown template exit code = %d, want %d", code, output.ExitUserError)
	}
}
