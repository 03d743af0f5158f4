// Package config defines the format-agnostic layer model the compiler
// consumes, the Loader interface that produces it from a concrete input
// format, and the structural validation every loaded model goes through.
//
// The `config.Model` is the single source of truth for the `compiler`
// package. Concrete loaders, such as the HCL one, live in separate packages.
package config
