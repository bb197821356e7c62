package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/specialistvlad/gridkata/internal/ctxlog"
	"github.com/specialistvlad/gridkata/internal/hcl"
	"github.com/specialistvlad/gridkata/internal/inmemorystore"
	"github.com/specialistvlad/gridkata/internal/nodestore"
	"github.com/specialistvlad/gridkata/internal/puzzle"
	"github.com/specialistvlad/gridkata/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loader     puzzle.Loader
	store      nodestore.Store
	renderer   *report.Renderer
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports go to outW
// and logs to logW. A nil loader selects the HCL loader.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader puzzle.Loader) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = hcl.NewLoader()
	}
	renderer, err := report.New(cfg.OutputFormat, hcl.NewConverter())
	if err != nil {
		return nil, err
	}

	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		store:    inmemorystore.New(),
		renderer: renderer,
	}, nil
}

// Store returns the application's result store. This is primarily for testing.
func (a *App) Store() nodestore.Store {
	return a.store
}
