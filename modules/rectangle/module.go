// Package rectangle provides the `rectangle` function, which triggers a
// window action of the Rectangle app by name (e.g. "left-half").
package rectangle

import (
	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("rectangle", registry.CommandFunction([]string{"action"}, "", func(args []string) (command.Command, error) {
		return command.Rectangle(args[0])
	}))
}
