package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp constructs the application: it configures an isolated logger and
// loads the catalog through the injected loader. A failure to load the
// catalog is a fatal startup error and panics; main recovers and turns it
// into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.CatalogPath)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}
	logger.Debug("Catalog loaded and translated into unified model.",
		"cube", model.Cube.Name, "views", len(model.Cube.Views))

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded catalog model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
