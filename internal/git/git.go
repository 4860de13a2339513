package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/minecorg/internal/output"
)

// ErrNotFound is the cause of errors returned when git is not on PATH.
var ErrNotFound = errors.New("git not found")

// run executes git in dir ("" for the working directory) and returns its
// trimmed stdout. Failures are *output.ExitError system errors carrying
// git's stderr.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", ErrNotFound).
				WithHint("install git or run init without --git")
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git "+args[0]+" failed: "+msg, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Available reports whether a git executable is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Version returns the installed version, e.g. "2.43.0" from
// "git version 2.43.0".
func Version(ctx context.Context) (string, error) {
	out, err := run(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	fields := strings.Fields(strings.TrimPrefix(out, "git version"))
	if len(fields) == 0 {
		return out, nil
	}
	return fields[0], nil
}

// IsRepo checks if dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	out, err := run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Init creates a repository in dir.
func Init(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, "init", "--quiet")
	return err
}
