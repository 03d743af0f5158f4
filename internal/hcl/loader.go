package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/fsutil"
	"github.com/vk/hyperlayers/internal/registry"
	"github.com/vk/hyperlayers/internal/schema"
)

// ErrNoFiles is returned when none of the given paths holds an .hcl file.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	registry *registry.Registry
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader that evaluates files with the functions of reg.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{registry: reg}
}

// Load parses every .hcl file under paths, in order, and merges their blocks
// into one model. Syntax and decoding errors stop the load immediately;
// structural problems (ambiguous or empty layers, duplicate hyper blocks) are
// collected and returned together as a *config.ValidationError.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	evalCtx := &hcl.EvalContext{Functions: l.registry.Functions()}
	parser := hclparse.NewParser()
	model := config.NewModel()

	var (
		problems  []error
		hyperSeen string
	)
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, h := range root.Hyper {
			if hyperSeen != "" {
				problems = append(problems, fmt.Errorf("hyper block in %s: %w (first declared in %s)", file, config.ErrDuplicateBlock, hyperSeen))
				continue
			}
			hyperSeen = file
			model.Hyper = translateHyper(h)
		}

		for _, layer := range root.Layers {
			translated, err := l.translateLayer(layer, evalCtx)
			if err != nil {
				var diags hcl.Diagnostics
				if errors.As(err, &diags) {
					return nil, fmt.Errorf("failed to evaluate HCL file %s: %w", file, err)
				}
				problems = append(problems, err)
				continue
			}
			model.Layers = append(model.Layers, translated)
		}

		for _, remap := range root.Remaps {
			model.Remaps = append(model.Remaps, translateRemap(remap, file))
		}

		logger.Debug("Loaded layer definitions from HCL file.", "file", file, "layers", len(root.Layers), "remaps", len(root.Remaps))
	}

	if len(problems) > 0 {
		return nil, &config.ValidationError{Problems: problems}
	}

	logger.Debug("HCL loading complete.", "layers", len(model.Layers), "remaps", len(model.Remaps))
	return model, nil
}

// findAllHCLFiles expands directories into the .hcl files they contain and
// keeps explicit files as given, dropping duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
