package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/chemlite/internal/config"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	loader   config.Loader
	registry *registry.Registry
}

// NewApp is the constructor for the main application. Reports are written
// to outW and log records to logW. Each App owns an isolated logger and
// registry.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		loader:   loader,
		registry: registry.New(registry.WithLogger(logger)),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the configuration the App was created with.
func (a *App) Config() *Config {
	return a.cfg
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
