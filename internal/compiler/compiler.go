package compiler

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/karabiner"
)

type rankedRule struct {
	priority int
	rule     karabiner.Rule
}

// Compile validates m and returns its rules in engine evaluation order.
func Compile(ctx context.Context, m *config.Model) ([]karabiner.Rule, error) {
	logger := ctxlog.FromContext(ctx)

	if err := config.Validate(m); err != nil {
		return nil, err
	}

	scope := NewScope(m.SublayerKeys()...)
	logger.Debug("Activation scope built.", "sublayers", scope.Keys())

	ranked := make([]rankedRule, 0, len(m.Layers)+len(m.Remaps))
	for _, l := range m.Layers {
		rule, err := LayerRule(l, scope)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, rankedRule{priority: l.Priority, rule: rule})
	}
	for _, r := range m.Remaps {
		ranked = append(ranked, rankedRule{priority: r.Priority, rule: RemapRule(r)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})

	rules := make([]karabiner.Rule, 0, len(ranked)+1)
	rules = append(rules, HyperRule(m.Hyper))
	for _, r := range ranked {
		logger.Debug("Rule compiled.", "description", r.rule.Description, "priority", r.priority, "manipulators", len(r.rule.Manipulators))
		rules = append(rules, r.rule)
	}

	logger.Info("Layers compiled.", "rules", len(rules), "sublayers", len(scope.Keys()))
	return rules, nil
}

// LayerRule compiles one top-level layer. A leaf becomes a single
// manipulator that only fires while no sublayer is active; a sublayer is
// expanded by ExpandSublayer.
func LayerRule(l *config.Layer, scope Scope) (karabiner.Rule, error) {
	switch t := l.Target.(type) {
	case *config.Leaf:
		if t.Command.IsZero() {
			return karabiner.Rule{}, fmt.Errorf("layer %q: %w", l.Key, config.ErrEmptyCommand)
		}
		return karabiner.Rule{
			Description: ruleDescription(l, "Hyper Key + "+l.Key),
			Manipulators: []karabiner.Manipulator{{
				Description: t.Command.Description(),
				Type:        karabiner.TypeBasic,
				From:        karabiner.From{KeyCode: l.Key, Modifiers: anyModifier()},
				To:          t.Command.To(),
				Conditions:  scope.Idle(),
			}},
		}, nil

	case *config.Sublayer:
		manipulators, err := ExpandSublayer(l.Key, t, scope)
		if err != nil {
			return karabiner.Rule{}, err
		}
		return karabiner.Rule{
			Description:  ruleDescription(l, fmt.Sprintf("Hyper Key sublayer %q", l.Key)),
			Manipulators: manipulators,
		}, nil

	default:
		return karabiner.Rule{}, fmt.Errorf("layer %q: %w", l.Key, config.ErrEmptyLayer)
	}
}

func ruleDescription(l *config.Layer, fallback string) string {
	if l.Description != "" {
		return l.Description
	}
	return fallback
}
