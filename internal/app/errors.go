package app

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions the command layer handles specially.
var (
	ErrNoTarget      = errors.New("no file specified")
	ErrHelpRequested = errors.New("help requested")
)

// UsageError reports a malformed invocation.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// EncodingError reports a value that cannot be handed to the OS because it
// contains a NUL byte. What is "filename" or "arguments".
type EncodingError struct {
	What string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid %s (contains NUL)", e.What)
}

// LaunchError reports a failed dispatch. Status is the raw value returned by
// the shell; Err is set when the adapter failed before producing one.
type LaunchError struct {
	Status Status
	Err    error
}

func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("launch failed: %v", e.Err)
	}
	return e.Status.Message()
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
