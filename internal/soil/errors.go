package soil

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure returned by the
// classifiers.
var ErrInvalidInput = errors.New("soil: invalid input")

// InputError describes a missing property or a violated invariant.
// Property is empty when the failure concerns several properties at once
// (for example the grain fraction sum).
type InputError struct {
	Property Property
	Reason   string
}

func (e *InputError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Property, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(p Property, reason string) error {
	return &InputError{Property: p, Reason: reason}
}

func invalidf(p Property, format string, args ...any) error {
	return &InputError{Property: p, Reason: fmt.Sprintf(format, args...)}
}
