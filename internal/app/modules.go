package app

import (
	"github.com/vk/hyperlayers/internal/registry"
	"github.com/vk/hyperlayers/modules/keystroke"
	"github.com/vk/hyperlayers/modules/open"
	"github.com/vk/hyperlayers/modules/rectangle"
	"github.com/vk/hyperlayers/modules/shell"
	"github.com/vk/hyperlayers/modules/text"
)

// coreModules is the definitive list of all modules that are compiled into
// the hyperlayers binary.
var coreModules = []registry.Module{
	&open.Module{},
	&rectangle.Module{},
	&shell.Module{},
	&keystroke.Module{},
	&text.Module{},
}
