package config

import "context"

// Loader is the interface for a format-specific layer description loader.
type Loader interface {
	// Load reads every description found under paths and merges them, in
	// order, into a single model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
