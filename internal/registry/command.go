package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/hyperlayers/internal/command"
)

// ActionType is the cty shape of a single command action. Exactly one of
// shell and key is non-empty.
var ActionType = cty.Object(map[string]cty.Type{
	"shell":     cty.String,
	"key":       cty.String,
	"modifiers": cty.List(cty.String),
})

// CommandType is the cty shape every command function returns.
var CommandType = cty.Object(map[string]cty.Type{
	"description": cty.String,
	"actions":     cty.List(ActionType),
})

type ctyAction struct {
	Shell     string   `cty:"shell"`
	Key       string   `cty:"key"`
	Modifiers []string `cty:"modifiers"`
}

type ctyCommand struct {
	Description string      `cty:"description"`
	Actions     []ctyAction `cty:"actions"`
}

// CommandToValue converts cmd into a CommandType value.
func CommandToValue(cmd command.Command) (cty.Value, error) {
	raw := ctyCommand{Description: cmd.Description(), Actions: []ctyAction{}}
	for _, a := range cmd.Actions() {
		raw.Actions = append(raw.Actions, ctyAction{
			Shell:     a.Shell(),
			Key:       a.KeyCode(),
			Modifiers: append([]string{}, a.Modifiers()...),
		})
	}
	return gocty.ToCtyValue(raw, CommandType)
}

// CommandFromValue converts a value produced by a command function (or an
// object literal of the same shape) back into a validated command.
func CommandFromValue(val cty.Value) (command.Command, error) {
	converted, err := convert.Convert(val, CommandType)
	if err != nil {
		return command.Command{}, fmt.Errorf("value is not a command: %w", err)
	}
	var raw ctyCommand
	if err := gocty.FromCtyValue(converted, &raw); err != nil {
		return command.Command{}, fmt.Errorf("value is not a command: %w", err)
	}

	actions := make([]command.Action, 0, len(raw.Actions))
	for i, a := range raw.Actions {
		var (
			action command.Action
			err    error
		)
		switch {
		case a.Shell != "" && a.Key != "":
			err = command.ErrZeroAction
		case a.Shell != "":
			action, err = command.ShellAction(a.Shell)
		default:
			action, err = command.KeyAction(a.Key, a.Modifiers...)
		}
		if err != nil {
			return command.Command{}, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, action)
	}
	return command.New(raw.Description, actions...)
}

// Builder builds a command from a function's string arguments.
type Builder func(args []string) (command.Command, error)

// CommandFunction wraps build as an HCL function taking the named string
// parameters, followed by any number of strings when variadic is non-empty.
func CommandFunction(params []string, variadic string, build Builder) function.Function {
	spec := &function.Spec{
		Type: function.StaticReturnType(CommandType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			strs := make([]string, len(args))
			for i, arg := range args {
				if err := gocty.FromCtyValue(arg, &strs[i]); err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
			}
			cmd, err := build(strs)
			if err != nil {
				return cty.NilVal, err
			}
			return CommandToValue(cmd)
		},
	}
	for _, p := range params {
		spec.Params = append(spec.Params, function.Parameter{Name: p, Type: cty.String})
	}
	if variadic != "" {
		spec.VarParam = &function.Parameter{Name: variadic, Type: cty.String}
	}
	return function.New(spec)
}
