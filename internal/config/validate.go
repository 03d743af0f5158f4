package config

import (
	"fmt"

	"github.com/vk/hyperlayers/internal/keycode"
)

// Validate checks the structural rules the compiler relies on: known key
// codes, unique keys per mapping, and exactly one non-empty target per layer.
// It returns a *ValidationError listing every problem, or nil.
func Validate(m *Model) error {
	var errs []error

	if err := keycode.ValidateKey(m.Hyper.From); err != nil {
		errs = append(errs, fmt.Errorf("hyper from: %w", err))
	}
	if err := keycode.ValidateKey(m.Hyper.Alone); err != nil {
		errs = append(errs, fmt.Errorf("hyper alone: %w", err))
	}

	seen := make(map[string]string)
	for _, l := range m.Layers {
		where := describe("layer", l.Key, l.Source)
		if err := keycode.ValidateKey(l.Key); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
		if prev, dup := seen[l.Key]; dup {
			errs = append(errs, fmt.Errorf("%s: %w (first declared at %s)", where, ErrDuplicateKey, prev))
		} else {
			seen[l.Key] = where
		}
		if l.Key == m.Hyper.From {
			errs = append(errs, fmt.Errorf("%s: key is the hyper key itself", where))
		}

		switch t := l.Target.(type) {
		case *Leaf:
			if t.Command.IsZero() {
				errs = append(errs, fmt.Errorf("%s: %w", where, ErrEmptyCommand))
			}
		case *Sublayer:
			for _, err := range t.validate() {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
			for _, b := range t.Bindings {
				switch b.Key {
				case m.Hyper.From:
					errs = append(errs, fmt.Errorf("%s: bind %q: %w", where, b.Key, ErrUnreachableBinding))
				case l.Key:
					errs = append(errs, fmt.Errorf("%s: bind %q: %w", where, b.Key, ErrUnreachableBinding))
				}
			}
		default:
			errs = append(errs, fmt.Errorf("%s: %w", where, ErrEmptyLayer))
		}
	}

	for _, r := range m.Remaps {
		where := describe("remap", r.Description, r.Source)
		if len(r.Mappings) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", where, ErrEmptyRemap))
		}
		from := make(map[string]struct{})
		for _, mp := range r.Mappings {
			if err := keycode.ValidateKey(mp.From); err != nil {
				errs = append(errs, fmt.Errorf("%s: from: %w", where, err))
			}
			if err := keycode.ValidateModifiers(mp.FromModifiers...); err != nil {
				errs = append(errs, fmt.Errorf("%s: key %q: %w", where, mp.From, err))
			}
			if err := keycode.ValidateKey(mp.To); err != nil {
				errs = append(errs, fmt.Errorf("%s: to: %w", where, err))
			}
			if err := keycode.ValidateModifiers(mp.ToModifiers...); err != nil {
				errs = append(errs, fmt.Errorf("%s: key %q: %w", where, mp.From, err))
			}
			if _, dup := from[mp.From]; dup {
				errs = append(errs, fmt.Errorf("%s: key %q: %w", where, mp.From, ErrDuplicateKey))
			}
			from[mp.From] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func (s *Sublayer) validate() []error {
	var errs []error
	if len(s.Bindings) == 0 {
		errs = append(errs, ErrEmptyLayer)
	}
	seen := make(map[string]struct{}, len(s.Bindings))
	for _, b := range s.Bindings {
		if err := keycode.ValidateKey(b.Key); err != nil {
			errs = append(errs, fmt.Errorf("bind %q: %w", b.Key, err))
		}
		if _, dup := seen[b.Key]; dup {
			errs = append(errs, fmt.Errorf("bind %q: %w", b.Key, ErrDuplicateKey))
		}
		seen[b.Key] = struct{}{}
		if b.Command.IsZero() {
			errs = append(errs, fmt.Errorf("bind %q: %w", b.Key, ErrEmptyCommand))
		}
	}
	return errs
}

func describe(kind, name, source string) string {
	if source == "" {
		return fmt.Sprintf("%s %q", kind, name)
	}
	return fmt.Sprintf("%s %q (%s)", kind, name, source)
}
