// Package text exposes a handful of cty standard library string functions so
// layer files can build URLs and names from parts.
package text

import (
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/hyperlayers/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the functions with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("format", stdlib.FormatFunc)
	r.RegisterFunction("join", stdlib.JoinFunc)
	r.RegisterFunction("upper", stdlib.UpperFunc)
	r.RegisterFunction("lower", stdlib.LowerFunc)
	r.RegisterFunction("concat", stdlib.ConcatFunc)
}
