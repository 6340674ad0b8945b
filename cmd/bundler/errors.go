package main

import (
	"errors"
	"io/fs"
)

// errorKind is a user-facing failure category of the bundle command.
type errorKind int

const (
	errUnknown errorKind = iota
	errMissingOutput
	errDirectoryNotFound
	errPermissionDenied
)

// bundleError carries a failure together with the category used to pick the
// message shown to the user.
type bundleError struct {
	Kind errorKind
	Err  error
}

func (e *bundleError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return e.Err.Error()
}

func (e *bundleError) Unwrap() error {
	return e.Err
}

// Message is the single line printed for this error.
func (e *bundleError) Message() string {
	switch e.Kind {
	case errMissingOutput:
		return "ERROR: Output file path is required."
	case errDirectoryNotFound:
		return "ERROR: Invalid directory path."
	case errPermissionDenied:
		return "ERROR: No permission to write to this location."
	default:
		if e.Err == nil {
			return "ERROR: unknown failure"
		}
		return "ERROR: " + e.Err.Error()
	}
}

var errOutputRequired = &bundleError{Kind: errMissingOutput}

// classifyError maps err onto a bundleError, keeping an existing kind.
func classifyError(err error) *bundleError {
	if err == nil {
		return nil
	}
	var be *bundleError
	if errors.As(err, &be) {
		return be
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &bundleError{Kind: errDirectoryNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &bundleError{Kind: errPermissionDenied, Err: err}
	default:
		return &bundleError{Kind: errUnknown, Err: err}
	}
}
