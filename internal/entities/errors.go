// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict signals a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrEditorNotFound is returned when an editor record does not exist.
	ErrEditorNotFound = errors.New("editor not found")
	// ErrInvalidToken signals an identity token that failed verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPublish signals a failed write to the version control host.
	ErrPublish = errors.New("publish failed")
	// ErrRemoteStore signals a failed read from a remote store.
	ErrRemoteStore = errors.New("remote store failure")
)

// Error pairs an error kind with the message reported to the caller.
// It matches both its Kind and its cause with errors.Is.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind while keeping err's message as the caller-facing text.
func Wrap(kind error, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}
