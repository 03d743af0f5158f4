package config

import (
	"errors"
	"strings"
)

// Model errors.
var (
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrDuplicateBlock = errors.New("duplicate block")
	ErrAmbiguousLayer = errors.New("layer has both a command and bindings")
	ErrEmptyLayer     = errors.New("layer has neither a command nor bindings")
	ErrEmptyCommand   = errors.New("empty command")
	ErrEmptyRemap     = errors.New("remap has no keys")

	// ErrUnreachableBinding marks a binding on the hyper key or on its own
	// sublayer's trigger; an earlier manipulator always claims that key.
	ErrUnreachableBinding = errors.New("binding can never fire")
)

// ValidationError collects every problem found in a model so they can be
// fixed in one pass. It unwraps to each problem for errors.Is.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return "layout validation failed:\n- " + strings.Join(msgs, "\n- ")
}

// Unwrap exposes the individual problems.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}
