// Package karabiner defines the subset of the Karabiner-Elements
// configuration schema this project emits: the document envelope, complex
// modification rules, and basic manipulators.
//
// Field names and JSON tags mirror the engine's schema exactly. Field order
// in the structs is the order keys appear in the encoded document, which
// keeps output byte-stable across runs.
package karabiner
