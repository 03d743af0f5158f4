package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/hyperlayers/internal/karabiner"
	"github.com/vk/hyperlayers/internal/keycode"
)

// Construction errors.
var (
	ErrNoActions  = errors.New("command has no actions")
	ErrEmptyShell = errors.New("shell command is empty")
	ErrZeroAction = errors.New("action is neither a shell command nor a key press")
)

// Action is a single output event: either a shell command or a key press.
type Action struct {
	shell     string
	key       string
	modifiers []string
}

// ShellAction returns an action that runs line through the engine's shell.
func ShellAction(line string) (Action, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Action{}, ErrEmptyShell
	}
	return Action{shell: line}, nil
}

// KeyAction returns an action that sends code while holding modifiers.
func KeyAction(code string, modifiers ...string) (Action, error) {
	if err := keycode.ValidateKey(code); err != nil {
		return Action{}, err
	}
	if err := keycode.ValidateModifiers(modifiers...); err != nil {
		return Action{}, err
	}
	a := Action{key: code}
	if len(modifiers) > 0 {
		a.modifiers = append([]string(nil), modifiers...)
	}
	return a, nil
}

// IsShell reports whether the action runs a shell command.
func (a Action) IsShell() bool { return a.shell != "" }

// Shell returns the shell command line, or "" for key actions.
func (a Action) Shell() string { return a.shell }

// KeyCode returns the emitted key code, or "" for shell actions.
func (a Action) KeyCode() string { return a.key }

// Modifiers returns a copy of the modifiers held with the key code.
func (a Action) Modifiers() []string {
	if len(a.modifiers) == 0 {
		return nil
	}
	return append([]string(nil), a.modifiers...)
}

// To lowers the action into the engine's output event.
func (a Action) To() karabiner.To {
	if a.IsShell() {
		return karabiner.Shell(a.shell)
	}
	return karabiner.KeyPress(a.key, a.Modifiers()...)
}

// Command is an ordered, non-empty list of actions with an optional
// human-readable description.
type Command struct {
	description string
	actions     []Action
}

// New assembles a command from already-built actions.
func New(description string, actions ...Action) (Command, error) {
	if len(actions) == 0 {
		return Command{}, ErrNoActions
	}
	for i, a := range actions {
		if a.shell == "" && a.key == "" {
			return Command{}, fmt.Errorf("action %d: %w", i, ErrZeroAction)
		}
	}
	return Command{
		description: description,
		actions:     append([]Action(nil), actions...),
	}, nil
}

// Description returns the human-readable description, possibly empty.
func (c Command) Description() string { return c.description }

// Actions returns a copy of the command's actions.
func (c Command) Actions() []Action { return append([]Action(nil), c.actions...) }

// IsZero reports whether c is the zero Command, i.e. was never constructed.
func (c Command) IsZero() bool { return len(c.actions) == 0 }

// WithDescription returns a copy of c with its description replaced.
func (c Command) WithDescription(description string) Command {
	c.description = description
	return c
}

// To lowers every action into the engine's output events, in order.
func (c Command) To() []karabiner.To {
	out := make([]karabiner.To, 0, len(c.actions))
	for _, a := range c.actions {
		out = append(out, a.To())
	}
	return out
}
