package compiler

import (
	"fmt"

	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/karabiner"
)

// ExpandSublayer returns the manipulators of the sublayer on key: first the
// toggle that activates it, then one manipulator per binding in declaration
// order.
func ExpandSublayer(key string, sub *config.Sublayer, scope Scope) ([]karabiner.Manipulator, error) {
	if !scope.Contains(key) {
		return nil, fmt.Errorf("sublayer %q is not part of the activation scope", key)
	}

	out := make([]karabiner.Manipulator, 0, len(sub.Bindings)+1)
	out = append(out, karabiner.Manipulator{
		Description:  "Toggle Hyper sublayer " + key,
		Type:         karabiner.TypeBasic,
		From:         karabiner.From{KeyCode: key, Modifiers: anyModifier()},
		To:           scope.Enter(key),
		ToAfterKeyUp: scope.Leave(key),
		Conditions:   scope.CanEnter(key),
	})

	seen := make(map[string]struct{}, len(sub.Bindings))
	for _, b := range sub.Bindings {
		if _, dup := seen[b.Key]; dup {
			return nil, fmt.Errorf("sublayer %q: bind %q: %w", key, b.Key, config.ErrDuplicateKey)
		}
		seen[b.Key] = struct{}{}
		if b.Command.IsZero() {
			return nil, fmt.Errorf("sublayer %q: bind %q: %w", key, b.Key, config.ErrEmptyCommand)
		}

		out = append(out, karabiner.Manipulator{
			Description: b.Command.Description(),
			Type:        karabiner.TypeBasic,
			From:        karabiner.From{KeyCode: b.Key, Modifiers: anyModifier()},
			To:          b.Command.To(),
			Conditions:  scope.Active(key),
		})
	}
	return out, nil
}
