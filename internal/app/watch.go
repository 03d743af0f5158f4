package app

import (
	"context"
	"fmt"

	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/watch"
)

// Watch runs once and then again after every change to the layer files,
// until ctx is cancelled. Failed runs are logged and the previous output is
// left in place; only a failure to start watching is returned.
func (a *App) Watch(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	w, err := watch.New(a.config.LayersPath, watch.DefaultDelay)
	if err != nil {
		return fmt.Errorf("failed to watch layers: %w", err)
	}
	defer w.Close()

	a.runLogged(ctx)
	a.logger.Info("👀 Watching layers for changes.", "path", a.config.LayersPath)

	if err := w.Run(ctx, a.runLogged); err != nil {
		return err
	}
	a.logger.Info("Stopped watching layers.")
	return nil
}

func (a *App) runLogged(ctx context.Context) {
	if err := a.Run(ctx); err != nil {
		a.logger.Error("Compilation failed, keeping previous output.", "error", err)
	}
}
