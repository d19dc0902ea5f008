package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode represents daemon-related error types.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DaemonError explains why live updates are unavailable.
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
}

func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// ClassifyDaemonError maps dial errors to a DaemonError with a hint.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		return &DaemonError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start the daemon: paso-daemon",
		}
	case errors.Is(err, os.ErrPermission):
		return &DaemonError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check ~/.paso/ permissions: chmod 700 ~/.paso/",
		}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &DaemonError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "The daemon may have crashed. Remove ~/.paso/paso.sock and restart paso-daemon",
		}
	}

	return &DaemonError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    "Start the daemon: paso-daemon",
	}
}
