// Package keycode holds the catalog of key code and modifier names understood
// by Karabiner-Elements, and validates user-supplied names against it.
//
// Names are the engine's own spelling (e.g. `caps_lock`, `left_arrow`,
// `right_command`). Matching is exact and case-sensitive.
package keycode
