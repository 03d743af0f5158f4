package command

import (
	"fmt"
	"strings"
)

// Open runs `open <target>` for each target, e.g. URLs or `-a 'App.app'`.
func Open(targets ...string) (Command, error) {
	if len(targets) == 0 {
		return Command{}, fmt.Errorf("open: %w", ErrNoActions)
	}
	actions := make([]Action, 0, len(targets))
	for _, t := range targets {
		if strings.TrimSpace(t) == "" {
			return Command{}, fmt.Errorf("open: empty target: %w", ErrEmptyShell)
		}
		a, err := ShellAction("open " + t)
		if err != nil {
			return Command{}, fmt.Errorf("open: %w", err)
		}
		actions = append(actions, a)
	}
	return New("Open "+strings.Join(targets, " & "), actions...)
}

// App opens a macOS application bundle by name.
func App(name string) (Command, error) {
	if strings.TrimSpace(name) == "" {
		return Command{}, fmt.Errorf("app: empty application name: %w", ErrEmptyShell)
	}
	return Open("-a " + singleQuote(name+".app"))
}

// singleQuote wraps s in single quotes for sh, closing and reopening the
// quotes around each embedded quote.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Rectangle triggers a window-management action of the Rectangle app through
// its URL scheme, in the background.
func Rectangle(name string) (Command, error) {
	if strings.TrimSpace(name) == "" {
		return Command{}, fmt.Errorf("rectangle: empty action name: %w", ErrEmptyShell)
	}
	a, err := ShellAction("open -g rectangle://execute-action?name=" + name)
	if err != nil {
		return Command{}, err
	}
	return New("Window: "+name, a)
}

// Shell runs each non-blank line of script as its own shell command. Lines
// may be passed separately or as one multi-line string.
func Shell(script ...string) (Command, error) {
	var lines []string
	for _, chunk := range script {
		for _, line := range strings.Split(chunk, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) == 0 {
		return Command{}, fmt.Errorf("shell: %w", ErrNoActions)
	}
	actions := make([]Action, 0, len(lines))
	for _, line := range lines {
		a, err := ShellAction(line)
		if err != nil {
			return Command{}, err
		}
		actions = append(actions, a)
	}
	return New(strings.Join(lines, " && "), actions...)
}

// Key sends code with modifiers held. It carries no description.
func Key(code string, modifiers ...string) (Command, error) {
	a, err := KeyAction(code, modifiers...)
	if err != nil {
		return Command{}, fmt.Errorf("key: %w", err)
	}
	return New("", a)
}
