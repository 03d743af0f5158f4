package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/hyperlayers/internal/compiler"
	"github.com/vk/hyperlayers/internal/config"
	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/hcl"
	"github.com/vk/hyperlayers/internal/karabiner"
	"github.com/vk/hyperlayers/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	config   *Config
}

// NewApp is the constructor for the main application. Logs go to logW and a
// dry-run document goes to outW. When no modules are given the core modules
// are registered. It panics if two modules register the same function.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.NewWithModules(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "functions", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   hcl.NewLoader(reg),
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run loads the layer files, compiles them and writes the document, or
// prints it when the app is configured for a dry run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "layers", a.config.LayersPath)

	model, err := a.loader.Load(ctx, a.config.LayersPath)
	if err != nil {
		return fmt.Errorf("failed to load layers: %w", err)
	}
	a.logger.Debug("Layers loaded.", "layers", len(model.Layers), "remaps", len(model.Remaps))

	rules, err := compiler.Compile(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to compile layers: %w", err)
	}

	env := karabiner.DefaultEnvelope()
	if a.config.ProfileName != "" {
		env.ProfileName = a.config.ProfileName
	}

	if a.config.DryRun {
		a.logger.Debug("Dry run, printing document instead of writing it.", "merge", a.config.Merge)
		return a.print(env, rules)
	}

	if a.config.Merge {
		err = karabiner.MergeFile(ctx, a.config.OutputPath, env, rules)
	} else {
		err = karabiner.WriteFile(ctx, a.config.OutputPath, env, rules)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// print writes the document that a real run would produce to outW.
func (a *App) print(env karabiner.Envelope, rules []karabiner.Rule) error {
	if !a.config.Merge {
		return karabiner.Encode(a.outW, env.Document(rules))
	}
	existing, err := karabiner.ReadExisting(a.config.OutputPath)
	if err != nil {
		return err
	}
	data, err := karabiner.Merge(existing, env, rules)
	if err != nil {
		return fmt.Errorf("failed to merge into %s: %w", a.config.OutputPath, err)
	}
	_, err = a.outW.Write(data)
	return err
}
