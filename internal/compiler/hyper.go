package compiler

import (
	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/karabiner"
	"github.com/vk/hyperlayers/internal/keycode"
)

// anyModifier lets a trigger fire regardless of which modifiers are held.
func anyModifier() *karabiner.FromModifiers {
	return &karabiner.FromModifiers{Optional: []string{keycode.Any}}
}

// HyperRule turns h.From into the Hyper modifier: holding it sets the hyper
// variable, releasing it clears the variable, and tapping it alone sends
// h.Alone instead.
func HyperRule(h config.Hyper) karabiner.Rule {
	return karabiner.Rule{
		Description: h.Description,
		Manipulators: []karabiner.Manipulator{{
			Description:  h.From + " -> Hyper Key",
			Type:         karabiner.TypeBasic,
			From:         karabiner.From{KeyCode: h.From, Modifiers: anyModifier()},
			To:           []karabiner.To{karabiner.SetVar(HyperVariable, 1)},
			ToAfterKeyUp: []karabiner.To{karabiner.SetVar(HyperVariable, 0)},
			ToIfAlone:    []karabiner.To{karabiner.KeyPress(h.Alone)},
		}},
	}
}
