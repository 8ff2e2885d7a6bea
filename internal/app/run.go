package app

import (
	"context"
	"fmt"

	"github.com/vk/cubeplan/internal/ctxlog"
	"github.com/vk/cubeplan/internal/planner"
	"github.com/vk/cubeplan/internal/rollup"
	"github.com/vk/cubeplan/internal/segment"
	"github.com/vk/cubeplan/internal/spantree"
)

// Run executes the main application logic: build the spanning forest from
// the loaded catalog, run the layer planner over it, and render the plan.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building spanning forest from catalog model...")
	forest, err := spantree.Build(ctx, a.model.Cube, rollup.New())
	if err != nil {
		return fmt.Errorf("failed to build spanning forest: %w", err)
	}
	a.logger.Info("Spanning forest built.",
		"cube", a.model.Cube.Name,
		"cuboids", forest.CuboidCount(),
		"roots", len(forest.RootViews()),
	)

	seg, cleanup, err := a.openSegment(appConfig.SegmentPath)
	if err != nil {
		return err
	}
	defer cleanup()

	a.logger.Info("Starting build planning...", "workers", appConfig.WorkerCount)
	plan, err := planner.New(forest, seg, appConfig.WorkerCount).Run(ctx)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}
	a.logger.Info("Planning finished.", "layers", len(plan.Layers))

	a.renderPlan(plan)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// openSegment picks the segment backend: a DuckDB store when a path is
// configured, an in-memory segment otherwise.
func (a *App) openSegment(path string) (planner.Segment, func(), error) {
	if path == "" {
		a.logger.Debug("Using in-memory segment.")
		return segment.NewMemory(), func() {}, nil
	}

	a.logger.Debug("Opening segment store.", "path", path)
	store, err := segment.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open segment store: %w", err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("Failed to close segment store.", "error", err)
		}
	}, nil
}
