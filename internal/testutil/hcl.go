package testutil

import (
	"path/filepath"
	"testing"
)

// WriteHCL writes a single layers file and returns its path.
func WriteHCL(t *testing.T, src string) string {
	t.Helper()
	root := WriteFiles(t, map[string]string{"layers.hcl": src})
	return filepath.Join(root, "layers.hcl")
}
