package compiler

import (
	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/karabiner"
)

// RemapRule turns each mapping of r into a plain key substitution, guarded
// by the hyper variable unless r opts out.
func RemapRule(r *config.Remap) karabiner.Rule {
	rule := karabiner.Rule{
		Description:  r.Description,
		Manipulators: make([]karabiner.Manipulator, 0, len(r.Mappings)),
	}
	for _, mp := range r.Mappings {
		m := karabiner.Manipulator{
			Type: karabiner.TypeBasic,
			From: karabiner.From{KeyCode: mp.From},
			To:   []karabiner.To{karabiner.KeyPress(mp.To, append([]string(nil), mp.ToModifiers...)...)},
		}
		if len(mp.FromModifiers) > 0 {
			m.From.Modifiers = &karabiner.FromModifiers{Mandatory: append([]string(nil), mp.FromModifiers...)}
		}
		if r.RequireHyper {
			m.Conditions = []karabiner.Condition{karabiner.VariableIf(HyperVariable, 1)}
		}
		rule.Manipulators = append(rule.Manipulators, m)
	}
	return rule
}
