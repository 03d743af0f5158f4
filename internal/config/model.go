package config

import (
	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/keycode"
)

// Model is the unified, format-agnostic description of a Hyper key setup.
type Model struct {
	Hyper  Hyper
	Layers []*Layer
	Remaps []*Remap
}

// NewModel returns an empty model with default Hyper key settings.
func NewModel() *Model {
	return &Model{Hyper: DefaultHyper()}
}

// Hyper configures the physical key that is turned into the Hyper modifier.
type Hyper struct {
	From        string // key held to engage Hyper
	Alone       string // key sent when From is tapped on its own
	Description string
}

// DefaultHyper maps caps lock to Hyper and to escape when tapped.
func DefaultHyper() Hyper {
	return Hyper{
		From:        keycode.CapsLock,
		Alone:       keycode.Escape,
		Description: "Hyper Key (⌃⌥⇧⌘)",
	}
}

// Layer is one top-level entry reachable as Hyper + Key.
type Layer struct {
	Key         string
	Description string // overrides the generated rule description when set
	Priority    int
	Target      Target
	Source      string // where the layer was declared, for error messages
}

// Target is what a top-level layer does. It is exactly one of *Leaf or
// *Sublayer.
type Target interface {
	isTarget()
}

// Leaf is a top-level layer that runs a command directly.
type Leaf struct {
	Command command.Command
}

// Sublayer is a top-level layer that, while held, turns its bindings on.
type Sublayer struct {
	Bindings []Binding
}

func (*Leaf) isTarget()     {}
func (*Sublayer) isTarget() {}

// Binding maps one key of a sublayer to a command.
type Binding struct {
	Key     string
	Command command.Command
}

// NewSublayer builds a sublayer, rejecting duplicate keys.
func NewSublayer(bindings ...Binding) (*Sublayer, error) {
	s := &Sublayer{Bindings: append([]Binding(nil), bindings...)}
	if errs := s.validate(); len(errs) > 0 {
		return nil, &ValidationError{Problems: errs}
	}
	return s, nil
}

// Remap is a flat rule of one-to-one key substitutions.
type Remap struct {
	Description  string
	RequireHyper bool
	Priority     int
	Mappings     []Mapping
	Source       string
}

// Mapping substitutes From (with FromModifiers held) by To (with ToModifiers).
type Mapping struct {
	From          string
	FromModifiers []string
	To            string
	ToModifiers   []string
}

// SublayerKeys returns the trigger keys of every sublayer, in declaration order.
func (m *Model) SublayerKeys() []string {
	var keys []string
	for _, l := range m.Layers {
		if _, ok := l.Target.(*Sublayer); ok {
			keys = append(keys, l.Key)
		}
	}
	return keys
}
