package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/hyperlayers/internal/karabiner"
)

// ManipulatorsFrom returns every manipulator across rules triggered by key.
func ManipulatorsFrom(rules []karabiner.Rule, key string) []karabiner.Manipulator {
	var out []karabiner.Manipulator
	for _, r := range rules {
		for _, m := range r.Manipulators {
			if m.From.KeyCode == key {
				out = append(out, m)
			}
		}
	}
	return out
}

// HasCondition reports whether m is guarded by name == value.
func HasCondition(m karabiner.Manipulator, name string, value int) bool {
	for _, c := range m.Conditions {
		if c.Type == karabiner.TypeVariableIf && c.Name == name && c.Value == value {
			return true
		}
	}
	return false
}

// RequireCondition fails the test unless m is guarded by name == value.
func RequireCondition(t *testing.T, m karabiner.Manipulator, name string, value int) {
	t.Helper()
	require.True(t, HasCondition(m, name, value),
		"manipulator on %q is missing condition %s == %d; has %+v", m.From.KeyCode, name, value, m.Conditions)
}

// RuleByDescription returns the rule with the given description.
func RuleByDescription(t *testing.T, rules []karabiner.Rule, description string) karabiner.Rule {
	t.Helper()
	for _, r := range rules {
		if r.Description == description {
			return r
		}
	}
	require.Failf(t, "rule not found", "no rule described as %q", description)
	return karabiner.Rule{}
}
