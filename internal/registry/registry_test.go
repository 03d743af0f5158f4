package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/keycode"
)

type keyModule struct{}

func (keyModule) Register(r *Registry) {
	r.RegisterFunction("key", CommandFunction([]string{"code"}, "modifiers", func(args []string) (command.Command, error) {
		return command.Key(args[0], args[1:]...)
	}))
}

func TestRegistry_RegisterAndList(t *testing.T) {
	r := NewWithModules(keyModule{})
	r.RegisterFunction("app", CommandFunction([]string{"name"}, "", func(args []string) (command.Command, error) {
		return command.App(args[0])
	}))

	assert.Equal(t, []string{"app", "key"}, r.Names())
	fns := r.Functions()
	assert.Len(t, fns, 2)

	delete(fns, "app")
	assert.Len(t, r.Functions(), 2, "Functions must return a copy")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewWithModules(keyModule{})

	assert.PanicsWithValue(t, "function with name 'key' already registered", func() {
		keyModule{}.Register(r)
	})
}

func TestCommandFunction_Call(t *testing.T) {
	// --- Arrange ---
	fn := CommandFunction([]string{"code"}, "modifiers", func(args []string) (command.Command, error) {
		return command.Key(args[0], args[1:]...)
	})

	// --- Act ---
	val, err := fn.Call([]cty.Value{cty.StringVal("tab"), cty.StringVal("right_control"), cty.StringVal("right_shift")})

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, val.Type().Equals(CommandType))

	cmd, err := CommandFromValue(val)
	require.NoError(t, err)
	actions := cmd.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, "tab", actions[0].KeyCode())
	assert.Equal(t, []string{"right_control", "right_shift"}, actions[0].Modifiers())
}

func TestCommandFunction_BuilderError(t *testing.T) {
	fn := CommandFunction([]string{"code"}, "", func(args []string) (command.Command, error) {
		return command.Key(args[0])
	})

	_, err := fn.Call([]cty.Value{cty.StringVal("nope")})

	require.ErrorIs(t, err, keycode.ErrUnknownKey)
}

func TestCommandFunction_Arity(t *testing.T) {
	fn := CommandFunction([]string{"name"}, "", func(args []string) (command.Command, error) {
		return command.App(args[0])
	})

	_, err := fn.Call(nil)
	require.Error(t, err)
}

func TestCommandValue_RoundTrip(t *testing.T) {
	original, err := command.Open("https://a.example", "https://b.example")
	require.NoError(t, err)

	val, err := CommandToValue(original)
	require.NoError(t, err)
	back, err := CommandFromValue(val)
	require.NoError(t, err)

	assert.Equal(t, original.Description(), back.Description())
	assert.Equal(t, original.To(), back.To())
}

func TestCommandFromValue_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		val  cty.Value
	}{
		{name: "not an object", val: cty.StringVal("open https://example.com")},
		{
			name: "no actions",
			val: cty.ObjectVal(map[string]cty.Value{
				"description": cty.StringVal("nothing"),
				"actions":     cty.ListValEmpty(ActionType),
			}),
		},
		{
			name: "shell and key at once",
			val: cty.ObjectVal(map[string]cty.Value{
				"description": cty.StringVal(""),
				"actions": cty.ListVal([]cty.Value{cty.ObjectVal(map[string]cty.Value{
					"shell":     cty.StringVal("say hi"),
					"key":       cty.StringVal("a"),
					"modifiers": cty.ListValEmpty(cty.String),
				})}),
			}),
		},
		{
			name: "unknown key",
			val: cty.ObjectVal(map[string]cty.Value{
				"description": cty.StringVal(""),
				"actions": cty.ListVal([]cty.Value{cty.ObjectVal(map[string]cty.Value{
					"shell":     cty.StringVal(""),
					"key":       cty.StringVal("hyper"),
					"modifiers": cty.ListValEmpty(cty.String),
				})}),
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CommandFromValue(tc.val)
			require.Error(t, err)
		})
	}
}
