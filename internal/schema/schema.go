// Package schema holds the gohcl decoding targets for layer description
// files. Attributes holding commands are kept as raw expressions so the
// loader can evaluate them with the registered functions and report errors
// at the right source range.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a layer description file.
type File struct {
	Hyper  []*Hyper `hcl:"hyper,block"`
	Layers []*Layer `hcl:"layer,block"`
	Remaps []*Remap `hcl:"remap,block"`
}

// Hyper represents the optional `hyper` block configuring the Hyper key.
type Hyper struct {
	From        string `hcl:"from,optional"`
	Alone       string `hcl:"alone,optional"`
	Description string `hcl:"description,optional"`
}

// Layer represents a `layer` block: either a direct command or a set of
// `bind` blocks forming a sublayer.
type Layer struct {
	Key         string         `hcl:"key,label"`
	Description string         `hcl:"description,optional"`
	Priority    int            `hcl:"priority,optional"`
	Command     hcl.Expression `hcl:"command,optional"`
	Bindings    []*Bind        `hcl:"bind,block"`
}

// Bind represents a `bind` block inside a sublayer.
type Bind struct {
	Key         string         `hcl:"key,label"`
	Description string         `hcl:"description,optional"`
	Command     hcl.Expression `hcl:"command"`
}

// Remap represents a `remap` block of flat key substitutions.
type Remap struct {
	Description string      `hcl:"description,label"`
	Hyper       *bool       `hcl:"hyper,optional"`
	Priority    int         `hcl:"priority,optional"`
	Keys        []*RemapKey `hcl:"key,block"`
}

// RemapKey represents one `key` substitution inside a remap.
type RemapKey struct {
	From          string   `hcl:"from,label"`
	FromModifiers []string `hcl:"from_modifiers,optional"`
	To            string   `hcl:"to"`
	Modifiers     []string `hcl:"modifiers,optional"`
}
