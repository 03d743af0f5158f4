// Package keystroke provides the `key` function, which sends a key code with
// optional modifiers, e.g. key("tab", "right_control", "right_shift").
package keystroke

import (
	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("key", registry.CommandFunction([]string{"code"}, "modifiers", func(args []string) (command.Command, error) {
		return command.Key(args[0], args[1:]...)
	}))
}
