package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/karabiner"
)

func TestExpandSublayer_Order(t *testing.T) {
	// --- Arrange ---
	must := mustCmd(t)
	sub := &config.Sublayer{Bindings: []config.Binding{
		{Key: "u", Command: must(command.Key("volume_increment"))},
		{Key: "l", Command: must(command.Key("q", "right_control", "right_command"))},
		{Key: "t", Command: must(command.Open("raycast://extensions/raycast/system/toggle-system-appearance"))},
	}}
	scope := NewScope("s", "v")

	// --- Act ---
	got, err := ExpandSublayer("s", sub, scope)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Toggle Hyper sublayer s", got[0].Description)
	assert.Equal(t, []string{"s", "u", "l", "t"}, []string{
		got[0].From.KeyCode, got[1].From.KeyCode, got[2].From.KeyCode, got[3].From.KeyCode,
	})
	assert.Equal(t, []karabiner.To{{KeyCode: "q", Modifiers: []string{"right_control", "right_command"}}}, got[2].To)
	assert.Empty(t, got[1].Description, "key commands carry no description")
	for _, m := range got {
		assert.Equal(t, karabiner.TypeBasic, m.Type)
		require.NotNil(t, m.From.Modifiers)
		assert.Equal(t, []string{"any"}, m.From.Modifiers.Optional)
	}
}

func TestExpandSublayer_Errors(t *testing.T) {
	must := mustCmd(t)

	_, err := ExpandSublayer("x", &config.Sublayer{Bindings: []config.Binding{
		{Key: "a", Command: must(command.App("Notes"))},
	}}, NewScope("o"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the activation scope")

	_, err = ExpandSublayer("o", &config.Sublayer{Bindings: []config.Binding{
		{Key: "a", Command: must(command.App("Notes"))},
		{Key: "a", Command: must(command.App("Finder"))},
	}}, NewScope("o"))
	require.ErrorIs(t, err, config.ErrDuplicateKey)

	_, err = ExpandSublayer("o", &config.Sublayer{Bindings: []config.Binding{{Key: "a"}}}, NewScope("o"))
	require.ErrorIs(t, err, config.ErrEmptyCommand)
}

func TestScope(t *testing.T) {
	s := NewScope("b", "o")

	assert.True(t, s.Contains("o"))
	assert.False(t, s.Contains("w"))
	assert.Equal(t, []string{"b", "o"}, s.Keys())
	assert.Equal(t, []karabiner.Condition{
		{Type: "variable_if", Name: "hyper", Value: 1},
		{Type: "variable_if", Name: "hyper_sublayer_b", Value: 0},
		{Type: "variable_if", Name: "hyper_sublayer_o", Value: 0},
	}, s.Idle())
	assert.Equal(t, []karabiner.Condition{
		{Type: "variable_if", Name: "hyper_sublayer_o", Value: 0},
		{Type: "variable_if", Name: "hyper", Value: 1},
	}, s.CanEnter("b"))
	assert.Equal(t, []karabiner.Condition{
		{Type: "variable_if", Name: "hyper_sublayer_b", Value: 1},
	}, s.Active("b"))

	keys := s.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "o"}, s.Keys())
}

func TestRemapRule(t *testing.T) {
	rule := RemapRule(&config.Remap{
		Description:  "Change hyper to hjkl arrows",
		RequireHyper: true,
		Mappings: []config.Mapping{
			{From: "h", To: "left_arrow"},
			{From: "u", To: "home"},
		},
	})

	assert.Equal(t, "Change hyper to hjkl arrows", rule.Description)
	require.Len(t, rule.Manipulators, 2)
	h := rule.Manipulators[0]
	assert.Equal(t, karabiner.From{KeyCode: "h"}, h.From)
	assert.Equal(t, []karabiner.To{{KeyCode: "left_arrow"}}, h.To)
	assert.Equal(t, []karabiner.Condition{karabiner.VariableIf("hyper", 1)}, h.Conditions)
	assert.Equal(t, "home", rule.Manipulators[1].To[0].KeyCode)
}

func TestRemapRule_WithoutHyper(t *testing.T) {
	rule := RemapRule(&config.Remap{
		Description: "Disable CMD + Tab to force Hyper Key usage",
		Mappings: []config.Mapping{
			{From: "tab", FromModifiers: []string{"left_command"}, To: "tab"},
		},
	})

	require.Len(t, rule.Manipulators, 1)
	m := rule.Manipulators[0]
	assert.Empty(t, m.Conditions)
	require.NotNil(t, m.From.Modifiers)
	assert.Equal(t, []string{"left_command"}, m.From.Modifiers.Mandatory)
	assert.Empty(t, m.From.Modifiers.Optional)
}

func TestHyperRule_Custom(t *testing.T) {
	rule := HyperRule(config.Hyper{From: "right_option", Alone: "return_or_enter", Description: "Hyper"})

	require.Len(t, rule.Manipulators, 1)
	m := rule.Manipulators[0]
	assert.Equal(t, "Hyper", rule.Description)
	assert.Equal(t, "right_option", m.From.KeyCode)
	assert.Equal(t, []karabiner.To{{KeyCode: "return_or_enter"}}, m.ToIfAlone)
	assert.Empty(t, m.Conditions)
}
