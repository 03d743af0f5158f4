// Package app contains the core application logic. It wires the function
// registry, the layer loader, the compiler and the karabiner writer into one
// load → compile → write lifecycle, decoupled from any specific entrypoint
// like a CLI.
package app
