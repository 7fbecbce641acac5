package errors

import (
	"errors"
	"strings"
)

// Error codes. Each maps to a distinct process exit status.
const (
	ErrConfig = "CONFIG"
	ErrSensor = "SENSOR"
	ErrUI     = "UI"
)

// Exit statuses returned by ExitCode.
const (
	ExitFailure = 1
	ExitConfig  = 2
	ExitSensor  = 3
	ExitUI      = 4
)

// Error is a user-facing failure. It prints as:
//
//	✗ <what failed>
//
//	  <cause>
//
//	  <what to do about it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an error with no underlying cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches a message to err under ErrSensor, the code for anything
// that went wrong while reading hardware.
func Wrap(err error, message string) *Error {
	return &Error{Code: ErrSensor, Message: message, Cause: err}
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	parts := []string{"✗ " + e.Message}
	if e.Cause != nil {
		parts = append(parts, "  "+e.Cause.Error())
	}
	if e.Suggestion != "" {
		parts = append(parts, "  "+e.Suggestion)
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Unwrap returns the cause so errors.Is and errors.As see through Error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first structured Error in err's chain,
// or "" when there is none.
func CodeOf(err error) string {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Code
	}
	return ""
}

// IsCode reports whether err's chain holds a structured Error with code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// ExitCode maps err to a process exit status. Nil is 0 and errors without
// a known code are ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch CodeOf(err) {
	case ErrConfig:
		return ExitConfig
	case ErrSensor:
		return ExitSensor
	case ErrUI:
		return ExitUI
	default:
		return ExitFailure
	}
}
