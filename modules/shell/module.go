// Package shell provides the `shell` function. Every non-blank line of its
// arguments becomes a separate shell_command action.
package shell

import (
	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("shell", registry.CommandFunction(nil, "lines", func(args []string) (command.Command, error) {
		return command.Shell(args...)
	}))
}
