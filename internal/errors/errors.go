package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the dialog backends
var (
	// ErrUnavailable means a backend cannot run in this process (no display,
	// no terminal, built without cgo, tool missing). Callers try the next one.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrNoBackend means every configured backend was unavailable.
	ErrNoBackend = errors.New("no dialog backend available")

	// ErrClosed is returned for work submitted after the dispatcher stopped.
	ErrClosed = errors.New("dispatcher closed")
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeToolkit ErrorType = iota
	ErrorTypeDisplay
	ErrorTypeConfig
	ErrorTypeDispatch
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeToolkit:
		return "toolkit"
	case ErrorTypeDisplay:
		return "display"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// AppError represents a structured error raised while showing a dialog
type AppError struct {
	Type      ErrorType
	Operation string
	Backend   string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Backend, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewToolkitError creates an error for a toolkit that failed to initialize
func NewToolkitError(operation, backend, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeToolkit,
		Operation: operation,
		Backend:   backend,
		Message:   message,
		Err:       err,
	}
}

// NewDisplayError creates an error for a dialog that could not be shown
func NewDisplayError(operation, backend, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeDisplay,
		Operation: operation,
		Backend:   backend,
		Message:   message,
		Err:       err,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewDispatchError creates an error for work the UI thread did not run
func NewDispatchError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeDispatch,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsUnavailable reports whether err means "try the next backend".
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
