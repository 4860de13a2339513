package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitErrorConstructors(t *testing.T) {
	cause := errors.New("model structure not recognized")

	tests := []struct {
		name      string
		err       *ExitError
		wantCode  int
		wantMsg   string
		wantCause bool
	}{
		{"user", NewUserError(`invalid entity name "Wolf!"`), ExitUserError, `invalid entity name "Wolf!"`, false},
		{"user with cause", NewUserErrorWithCause("cannot use model wolf.geo.json", cause), ExitUserError, "cannot use model wolf.geo.json", true},
		{"system", NewSystemError("writing manifest.json failed"), ExitSystemError, "writing manifest.json failed", false},
		{"system with cause", NewSystemErrorWithCause("git init failed", cause), ExitSystemError, "git init failed", true},
		{"conflict", NewConflictError("entity myns:wolf already exists"), ExitConflict, "entity myns:wolf already exists", false},
		{"conflict with cause", NewConflictErrorWithCause("minecorg.json exists", cause), ExitConflict, "minecorg.json exists", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if got := errors.Is(tt.err, cause); got != tt.wantCause {
				t.Errorf("errors.Is(cause) = %v, want %v", got, tt.wantCause)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user", NewUserError("no minecorg project found"), ExitUserError},
		{"system", NewSystemError("disk full"), ExitSystemError},
		{"conflict", NewConflictError("entity exists"), ExitConflict},
		{"wrapped exit error", fmt.Errorf("new entity: %w", NewConflictError("entity exists")), ExitConflict},
		{"plain error", errors.New("unknown flag --modle"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorWithHint(t *testing.T) {
	err := NewUserError("no minecorg project found").WithHint("run 'minecorg init'")
	if err.Hint != "run 'minecorg init'" {
		t.Errorf("Hint = %q", err.Hint)
	}
	if err.Error() != "no minecorg project found" {
		t.Errorf("Error() must not include the hint, got %q", err.Error())
	}
	if GetExitCode(err) != ExitUserError {
		t.Errorf("WithHint changed the exit code to %d", GetExitCode(err))
	}
}
