package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for callers that need to branch on the failure
// class rather than the message.
type Kind uint8

const (
	Other    Kind = iota // Unclassified error
	Invalid              // Invalid input or request
	NotFound             // Entity does not exist
	Conflict             // Action cannot be performed in current state
	Internal             // Internal error or inconsistency
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case Internal:
		return "internal"
	}
	return "other"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// E builds an *Error from a kind, a message and an optional wrapped cause.
func E(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err (or anything it wraps) carries the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ValidationErrors collects per-field validation failures so a caller sees
// everything wrong with its input at once.
type ValidationErrors struct {
	fields []string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a validation failure for the named field.
func (v *ValidationErrors) Add(field, message string) {
	v.fields = append(v.fields, fmt.Sprintf("%s: %s", field, message))
}

// Err returns nil when no failures were recorded, otherwise a single error
// describing all of them.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return E(Invalid, "validation failed", errors.New(strings.Join(v.fields, "; ")))
}
