package commands

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotACommand      = errors.New("not a command")
	ErrAliasNotFound    = errors.New("alias not found")
	ErrInstanceNotFound = errors.New("owner instance not found")
)

// MismatchKind tells why a token list could not be coerced to a shape.
type MismatchKind int

const (
	ArityMismatch MismatchKind = iota
	TypeMismatch
	ClampViolation
)

func (k MismatchKind) String() string {
	switch k {
	case ArityMismatch:
		return "arity mismatch"
	case TypeMismatch:
		return "type mismatch"
	case ClampViolation:
		return "clamp violation"
	}
	return "unknown mismatch"
}

// CoercionError is the failure side of Coerce.
type CoercionError struct {
	Kind  MismatchKind
	Shape Shape

	// Received holds every supplied token for ArityMismatch, or the
	// offending token alone otherwise.
	Received []Token
	// Position is the index of the offending param; -1 for ArityMismatch.
	Position int
	Err      error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Payload())
}

func (e *CoercionError) Unwrap() error { return e.Err }

// Payload renders what was received, in the form shown to the user.
func (e *CoercionError) Payload() string {
	switch e.Kind {
	case ArityMismatch:
		parts := make([]string, len(e.Received))
		for i, tok := range e.Received {
			parts[i] = fmt.Sprintf("(%s, %s)", tok.Text, classifyToken(tok))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeMismatch:
		tok := e.Received[0]
		msg := fmt.Sprintf("%s [%s], expected %s", tok.Text, classifyToken(tok), e.Shape[e.Position])
		if e.Err != nil {
			msg += " (" + e.Err.Error() + ")"
		}
		return msg
	default:
		return e.Err.Error()
	}
}
