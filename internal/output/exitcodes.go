package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (bad args, invalid names, no project, unparseable model)
// 2 = System error (I/O failure, git failed)
// 3 = Conflict (entity already exists)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Hint    string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// WithHint attaches a follow-up suggestion shown under the error.
func (e *ExitError) WithHint(hint string) *ExitError {
	e.Hint = hint
	return e
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// NewSystemError creates an error for system failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewConflictError creates an error for conflict situations (exit code 3),
// such as generating an entity whose files already exist.
func NewConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// NewConflictErrorWithCause creates a conflict error wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
