package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/hyperlayers/internal/command"
	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/registry"
	"github.com/vk/hyperlayers/internal/schema"
)

// translateHyper overlays the attributes set in the block onto the defaults.
func translateHyper(s *schema.Hyper) config.Hyper {
	h := config.DefaultHyper()
	if s.From != "" {
		h.From = s.From
	}
	if s.Alone != "" {
		h.Alone = s.Alone
	}
	if s.Description != "" {
		h.Description = s.Description
	}
	return h
}

// translateLayer converts a layer block into the tagged Leaf | Sublayer
// model. HCL evaluation failures are returned as hcl.Diagnostics; structural
// problems are returned as plain errors wrapping config sentinels.
func (l *Loader) translateLayer(s *schema.Layer, evalCtx *hcl.EvalContext) (*config.Layer, error) {
	source := s.Command.Range().String()
	where := fmt.Sprintf("layer %q (%s)", s.Key, source)

	cmd, hasCommand, diags := evalCommand(s.Command, evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}

	layer := &config.Layer{
		Key:         s.Key,
		Description: s.Description,
		Priority:    s.Priority,
		Source:      source,
	}

	switch {
	case hasCommand && len(s.Bindings) > 0:
		return nil, fmt.Errorf("%s: %w", where, config.ErrAmbiguousLayer)
	case hasCommand:
		layer.Target = &config.Leaf{Command: cmd}
	case len(s.Bindings) > 0:
		bindings := make([]config.Binding, 0, len(s.Bindings))
		for _, b := range s.Bindings {
			bcmd, ok, diags := evalCommand(b.Command, evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			if !ok {
				return nil, fmt.Errorf("%s: bind %q: %w", where, b.Key, config.ErrEmptyCommand)
			}
			if b.Description != "" {
				bcmd = bcmd.WithDescription(b.Description)
			}
			bindings = append(bindings, config.Binding{Key: b.Key, Command: bcmd})
		}
		// Key checks are left to config.Validate so that every problem of
		// the layout is reported in one pass.
		layer.Target = &config.Sublayer{Bindings: bindings}
	default:
		return nil, fmt.Errorf("%s: %w", where, config.ErrEmptyLayer)
	}

	return layer, nil
}

// evalCommand evaluates expr and decodes the result as a command. A null
// result (an omitted optional attribute) reports ok == false.
func evalCommand(expr hcl.Expression, evalCtx *hcl.EvalContext) (command.Command, bool, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return command.Command{}, false, diags
	}
	if val.IsNull() {
		return command.Command{}, false, nil
	}
	if !val.IsWhollyKnown() {
		return command.Command{}, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid command",
			Detail:   "The command value must be known when the layers are compiled.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	cmd, err := registry.CommandFromValue(val)
	if err != nil {
		return command.Command{}, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid command",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return cmd, true, nil
}

// translateRemap converts a remap block. hyper defaults to true.
func translateRemap(s *schema.Remap, file string) *config.Remap {
	r := &config.Remap{
		Description:  s.Description,
		RequireHyper: true,
		Priority:     s.Priority,
		Source:       file,
	}
	if s.Hyper != nil {
		r.RequireHyper = *s.Hyper
	}
	for _, k := range s.Keys {
		r.Mappings = append(r.Mappings, config.Mapping{
			From:          k.From,
			FromModifiers: k.FromModifiers,
			To:            k.To,
			ToModifiers:   k.Modifiers,
		})
	}
	return r
}
