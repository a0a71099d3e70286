package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/hclspec/internal/config"
	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/loader"
)

// goUnit is a unit written in Go, registered before loading.
type goUnit struct {
	name string
	fn   declare.UnitFunc
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	root   string
	config config.Config
	loader *loader.Loader
	units  []goUnit
}

// NewApp is the constructor for the main application. root anchors relative
// paths; logs go to logW.
func NewApp(logW io.Writer, root string, cfg config.Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger: logger,
		root:   root,
		config: cfg,
		loader: loader.New(loader.Options{FocusTag: cfg.FocusTag}),
	}
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config {
	return a.config
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Register adds a Go unit to every subsequent Load.
func (a *App) Register(name string, fn declare.UnitFunc) {
	a.units = append(a.units, goUnit{name: name, fn: fn})
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
