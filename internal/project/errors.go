package project

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies project creation failures.
type Kind string

const (
	KindDirectoryExists  Kind = "directory_exists"
	KindPermissionDenied Kind = "permission_denied"
	KindInvalidName      Kind = "invalid_name"
)

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrDirectoryExists  = &Error{Kind: KindDirectoryExists}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrInvalidName      = &Error{Kind: KindInvalidName}
)

// Error is returned for the failure kinds callers are expected to handle.
type Error struct {
	Kind  Kind
	Path  string // file or directory involved, if any
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func invalidName(format string, args ...any) error {
	return &Error{Kind: KindInvalidName, Msg: fmt.Sprintf(format, args...)}
}

// classifyFSError maps filesystem failures onto DirectoryExists and
// PermissionDenied. Other errors are wrapped with action as context.
func classifyFSError(action, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return &Error{
			Kind:  KindDirectoryExists,
			Path:  path,
			Msg:   fmt.Sprintf("directory %s already exists", path),
			Cause: err,
		}
	case errors.Is(err, fs.ErrPermission):
		return &Error{
			Kind:  KindPermissionDenied,
			Path:  path,
			Msg:   fmt.Sprintf("%s %s: permission denied", action, path),
			Cause: err,
		}
	default:
		return fmt.Errorf("%s %s: %w", action, path, err)
	}
}
