// Package errors provides the error kinds of the harness and their exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes for runs that did not get as far as counting failed tests.
// A completed run exits with the number of failed tests instead.
const (
	ExitSuccess     = 0
	ExitConfigError = -1 // Required settings missing, nothing was run
	ExitAssertion   = -2 // An external tool behaved outside its contract
	ExitRuntime     = -3 // Anything else (I/O, bad flags)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindAssertion
)

// HarnessError is the base error type of the harness.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Test    string // Test file if applicable
	Cause   error
}

func (e *HarnessError) Error() string {
	msg := e.Message
	if e.Test != "" {
		msg = fmt.Sprintf("[%s] %s", e.Test, msg)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindAssertion:
		return ExitAssertion
	default:
		return ExitRuntime
	}
}

// Configf creates a configuration error.
func Configf(format string, args ...interface{}) *HarnessError {
	return &HarnessError{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// Assertionf creates an error for an external tool that broke its contract.
// These are never turned into test failures.
func Assertionf(test, format string, args ...interface{}) *HarnessError {
	return &HarnessError{Kind: KindAssertion, Test: test, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{Kind: KindRuntime, Message: message, Cause: err}
}

// IsAssertion reports whether err is, or wraps, an assertion error.
func IsAssertion(err error) bool {
	return kindOf(err) == KindAssertion
}

// IsConfig reports whether err is, or wraps, a configuration error.
func IsConfig(err error) bool {
	return kindOf(err) == KindConfig
}

func kindOf(err error) ErrorKind {
	var he *HarnessError
	if stderrors.As(err, &he) {
		return he.Kind
	}
	return KindRuntime
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var he *HarnessError
	if stderrors.As(err, &he) {
		return he.ExitCode()
	}
	return ExitRuntime
}
