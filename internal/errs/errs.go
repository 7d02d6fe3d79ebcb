// Package errs defines the error taxonomy shared by the bot layers.
//
// Every failure that crosses a package boundary is tagged with a Kind so the
// dialogue controller can decide between re-prompting the user (validation)
// and aborting the transition with a generic message (everything else).
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies failures.
type Kind string

const (
	// Transport covers unreachable collaborators and non-2xx answers.
	Transport Kind = "transport"
	// Parse covers malformed upstream payloads.
	Parse Kind = "parse"
	// Validation covers user input outside the accepted domain.
	Validation Kind = "validation"
	// Storage covers session or suggestion persistence failures.
	Storage Kind = "storage"
	// Internal marks invariant violations.
	Internal Kind = "internal"
)

// Error is a classified failure. Op names the operation that failed, MsgID
// is the translator id shown to the user for validation failures.
type Error struct {
	Kind  Kind
	Op    string
	MsgID string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	} else if e.MsgID != "" {
		b.WriteString(": ")
		b.WriteString(e.MsgID)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Code is picked up by the router to fill the err_code log field.
func (e *Error) Code() string {
	return strings.ToUpper(string(e.Kind)) + "_ERROR"
}

// E builds a classified error. A nil err still yields a non-nil *Error.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Ef builds a classified error from a format string.
func Ef(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Invalid reports a validation failure that maps to a user facing message.
func Invalid(op, msgID string) error {
	return &Error{Kind: Validation, Op: op, MsgID: msgID}
}

// KindOf returns the Kind of the first classified error in the chain.
// Unclassified errors are reported as Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageID returns the translator id carried by a validation error.
func MessageID(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.MsgID
	}
	return ""
}
