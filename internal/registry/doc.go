// Package registry provides the central "glue" between the layer description
// language and the Go command builders.
//
// Modules register named HCL functions (`open`, `app`, `key`, ...) with a
// Registry. The HCL loader exposes every registered function to the files it
// evaluates. Command-producing functions return a cty object of type
// CommandType, which CommandFromValue turns back into a command.Command.
package registry
