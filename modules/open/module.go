// Package open provides the `open` and `app` functions, which launch URLs,
// files and applications through macOS's open(1).
package open

import (
	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the functions with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("open", registry.CommandFunction(nil, "targets", func(args []string) (command.Command, error) {
		return command.Open(args...)
	}))
	r.RegisterFunction("app", registry.CommandFunction([]string{"name"}, "", func(args []string) (command.Command, error) {
		return command.App(args[0])
	}))
}
