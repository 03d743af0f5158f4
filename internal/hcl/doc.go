// Package hcl provides the concrete HCL implementation of config.Loader. It
// is responsible for file discovery and parsing, evaluating command
// expressions with the functions held by a registry.Registry, and
// translating the decoded blocks into the format-agnostic config.Model.
package hcl
