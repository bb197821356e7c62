package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gridkata/internal/ctxlog"
	"github.com/specialistvlad/gridkata/internal/solver"
)

// Run loads the configured puzzles, solves them and writes the report. The
// report is written even when some puzzles fail; their failures are then
// also returned.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	a.healthCheckServer()
	defer func() {
		err = errors.Join(err, a.closeHealthCheckServer())
	}()

	set, err := a.loader.Load(ctx, a.config.PuzzlePath)
	if err != nil {
		return fmt.Errorf("failed to load puzzles: %w", err)
	}
	a.logger.Info("Puzzles loaded.", "trees", len(set.Trees), "grids", len(set.Grids), "stairs", len(set.Stairs))

	solveErr := solver.New(a.store, a.config.WorkerCount).Run(ctx, set)

	if err := a.renderer.Render(a.outW, a.store.Outcomes(ctx)); err != nil {
		return errors.Join(solveErr, fmt.Errorf("failed to write report: %w", err))
	}

	if solveErr != nil {
		return solveErr
	}
	a.logger.Info("All puzzles solved.", "count", set.Len())
	return nil
}
