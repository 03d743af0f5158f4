// Package compiler lowers a config.Model into the ordered list of
// Karabiner-Elements rules that implement it.
//
// The output always starts with the Hyper capture rule. Every other rule
// comes from a layer or a remap and is ordered by descending priority, with
// ties kept in declaration order (layers first, then remaps). The engine
// evaluates rules top to bottom and the first matching manipulator wins, so
// this order is part of the contract.
//
// Sublayer activation is a small state machine: either no sublayer is
// active, or exactly one is. Scope owns that machine and is the only place
// that lowers it to the engine's 0/1 variables, so every guard that keeps
// sublayers mutually exclusive is produced by the same code.
package compiler
