package cli

import (
	"errors"

	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown column ids or item ids.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown view dimensions, removing a non-bucket column,
	// out of range moves or empty titles.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code err should terminate the process with
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// CodeFor classifies domain errors into exit codes and machine-readable error codes
func CodeFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrColumnNotFound):
		return ExitNotFound, "COLUMN_NOT_FOUND"
	case errors.Is(err, database.ErrItemNotFound):
		return ExitNotFound, "ITEM_NOT_FOUND"
	case errors.Is(err, models.ErrUnknownViewDimension):
		return ExitValidation, "INVALID_VIEW"
	case errors.Is(err, models.ErrNotABucket):
		return ExitValidation, "NOT_A_BUCKET"
	case errors.Is(err, models.ErrInvalidMove):
		return ExitValidation, "INVALID_MOVE"
	case errors.Is(err, database.ErrEmptyTitle), errors.Is(err, database.ErrTitleTooLong):
		return ExitValidation, "INVALID_TITLE"
	case errors.Is(err, database.ErrEmptyStatus):
		return ExitValidation, "INVALID_STATUS"
	case errors.Is(err, database.ErrInvalidItemID):
		return ExitValidation, "INVALID_ITEM_ID"
	default:
		return ExitError, "INTERNAL_ERROR"
	}
}
