package keycode

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Validation errors.
var (
	ErrUnknownKey      = errors.New("unknown key code")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// Key codes referenced directly by the compiler.
const (
	CapsLock = "caps_lock"
	Escape   = "escape"
)

// Any is the wildcard accepted in a manipulator's optional `from` modifiers.
// It is not a valid modifier anywhere else.
const Any = "any"

var keys = map[string]struct{}{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		add(string(c))
	}
	for d := 0; d <= 9; d++ {
		add(strconv.Itoa(d))
		add("keypad_" + strconv.Itoa(d))
	}
	for f := 1; f <= 24; f++ {
		add("f" + strconv.Itoa(f))
	}
	for i := 1; i <= 9; i++ {
		add("lang" + strconv.Itoa(i))
		add("international" + strconv.Itoa(i))
	}
	add(
		// controls and symbols
		"return_or_enter", "escape", "delete_or_backspace", "delete_forward",
		"tab", "spacebar", "hyphen", "equal_sign", "open_bracket",
		"close_bracket", "backslash", "non_us_pound", "semicolon", "quote",
		"grave_accent_and_tilde", "comma", "period", "slash",
		"non_us_backslash", "caps_lock",

		// navigation
		"print_screen", "scroll_lock", "pause", "insert", "home", "page_up",
		"end", "page_down", "right_arrow", "left_arrow", "down_arrow",
		"up_arrow",

		// keypad
		"keypad_num_lock", "keypad_slash", "keypad_asterisk", "keypad_hyphen",
		"keypad_plus", "keypad_enter", "keypad_period", "keypad_equal_sign",
		"keypad_comma",

		// media and system
		"application", "power", "execute", "help", "menu", "select", "stop",
		"again", "undo", "cut", "copy", "paste", "find", "mute",
		"volume_decrement", "volume_increment", "display_brightness_decrement",
		"display_brightness_increment", "mission_control", "launchpad",
		"dashboard", "illumination_decrement", "illumination_increment",
		"rewind", "play_or_pause", "fastforward", "eject",
		"apple_display_brightness_decrement", "apple_display_brightness_increment",
		"apple_top_case_display_brightness_decrement",
		"apple_top_case_display_brightness_increment",
		"japanese_eisuu", "japanese_kana",

		// modifier keys as plain key codes
		"fn", "left_control", "left_shift", "left_option", "left_command",
		"right_control", "right_shift", "right_option", "right_command",

		"vk_none",
	)
}

func add(names ...string) {
	for _, n := range names {
		keys[n] = struct{}{}
	}
}

var modifiers = map[string]struct{}{
	"caps_lock":     {},
	"command":       {},
	"control":       {},
	"option":        {},
	"shift":         {},
	"fn":            {},
	"left_command":  {},
	"left_control":  {},
	"left_option":   {},
	"left_shift":    {},
	"left_alt":      {},
	"left_gui":      {},
	"right_command": {},
	"right_control": {},
	"right_option":  {},
	"right_shift":   {},
	"right_alt":     {},
	"right_gui":     {},
}

// IsKey reports whether name is a known key code.
func IsKey(name string) bool {
	_, ok := keys[name]
	return ok
}

// IsModifier reports whether name is a known modifier.
func IsModifier(name string) bool {
	_, ok := modifiers[name]
	return ok
}

// ValidateKey returns ErrUnknownKey, wrapped with the offending name, when
// name is not in the catalog.
func ValidateKey(name string) error {
	if !IsKey(name) {
		return fmt.Errorf("%w %q", ErrUnknownKey, name)
	}
	return nil
}

// ValidateModifiers checks every name and reports the first unknown one.
func ValidateModifiers(names ...string) error {
	for _, n := range names {
		if !IsModifier(n) {
			return fmt.Errorf("%w %q", ErrUnknownModifier, n)
		}
	}
	return nil
}

// Keys returns every known key code in lexical order.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
