// Package command builds the reusable "what happens when a key is pressed"
// values that layers bind to keys: shell invocations and key emissions.
//
// A Command is immutable. Constructors validate eagerly, so a Command that
// exists is always well-formed: it has at least one action, every shell line
// is non-empty and every key code and modifier is known to the engine.
package command
