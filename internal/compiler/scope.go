package compiler

import "github.com/vk/hyperlayers/internal/karabiner"

// HyperVariable is set to 1 while the Hyper key is held.
const HyperVariable = "hyper"

// SublayerVariable names the flag that is 1 while the sublayer on key is held.
func SublayerVariable(key string) string {
	return "hyper_sublayer_" + key
}

// Scope is the set of sublayers sharing one Hyper key. Its states are "idle"
// and "sublayer k active"; the methods below lower transitions and state
// tests into engine conditions and variable assignments.
type Scope struct {
	keys []string
}

// NewScope returns a scope over the given sublayer keys, in order.
func NewScope(keys ...string) Scope {
	return Scope{keys: append([]string(nil), keys...)}
}

// Keys returns the sublayer keys in declaration order.
func (s Scope) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Contains reports whether key is one of the scope's sublayers.
func (s Scope) Contains(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Idle guards a manipulator on Hyper being held with no sublayer active.
func (s Scope) Idle() []karabiner.Condition {
	conds := make([]karabiner.Condition, 0, len(s.keys)+1)
	conds = append(conds, karabiner.VariableIf(HyperVariable, 1))
	for _, k := range s.keys {
		conds = append(conds, karabiner.VariableIf(SublayerVariable(k), 0))
	}
	return conds
}

// CanEnter guards the transition into key's sublayer: Hyper is held and no
// other sublayer is active.
func (s Scope) CanEnter(key string) []karabiner.Condition {
	conds := make([]karabiner.Condition, 0, len(s.keys))
	for _, k := range s.keys {
		if k == key {
			continue
		}
		conds = append(conds, karabiner.VariableIf(SublayerVariable(k), 0))
	}
	return append(conds, karabiner.VariableIf(HyperVariable, 1))
}

// Active guards a manipulator on key's sublayer being the active one.
func (s Scope) Active(key string) []karabiner.Condition {
	return []karabiner.Condition{karabiner.VariableIf(SublayerVariable(key), 1)}
}

// Enter is the assignment performed when key's sublayer is pressed.
func (s Scope) Enter(key string) []karabiner.To {
	return []karabiner.To{karabiner.SetVar(SublayerVariable(key), 1)}
}

// Leave is the assignment performed when key's sublayer is released.
func (s Scope) Leave(key string) []karabiner.To {
	return []karabiner.To{karabiner.SetVar(SublayerVariable(key), 0)}
}
