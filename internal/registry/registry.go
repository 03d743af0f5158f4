package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/zclconf/go-cty/cty/function"
)

// Module is the interface that all function modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the functions available to layer description files.
type Registry struct {
	functions map[string]function.Function
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{functions: make(map[string]function.Function)}
}

// NewWithModules creates a Registry and registers every module in order.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterFunction makes fn callable as name. Registering the same name twice
// is a programming error and panics.
func (r *Registry) RegisterFunction(name string, fn function.Function) {
	if _, exists := r.functions[name]; exists {
		panic(fmt.Sprintf("function with name '%s' already registered", name))
	}
	slog.Debug("Registering function.", "name", name)
	r.functions[name] = fn
}

// Functions returns a copy of the registered functions, keyed by name, in
// the shape hcl.EvalContext expects.
func (r *Registry) Functions() map[string]function.Function {
	out := make(map[string]function.Function, len(r.functions))
	for k, v := range r.functions {
		out[k] = v
	}
	return out
}

// Names returns the registered function names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for k := range r.functions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
