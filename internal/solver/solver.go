package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/specialistvlad/gridkata/internal/ctxlog"
	"github.com/specialistvlad/gridkata/internal/node"
	"github.com/specialistvlad/gridkata/internal/nodestore"
	"github.com/specialistvlad/gridkata/internal/puzzle"
	"golang.org/x/sync/errgroup"
)

// Solver solves puzzles concurrently.
type Solver struct {
	store   nodestore.Store
	workers int
	solve   func(puzzle.Puzzle) (any, error)
}

// New creates a Solver that records into store and runs at most workers
// puzzles at a time. A non-positive worker count is treated as one.
func New(store nodestore.Store, workers int) *Solver {
	return &Solver{store: store, workers: max(workers, 1), solve: Solve}
}

// Run solves every puzzle in set. It returns nil when all puzzles complete,
// otherwise an error joining each puzzle failure and, if the context ended
// early, the context error.
func (s *Solver) Run(ctx context.Context, set *puzzle.Set) error {
	logger := ctxlog.FromContext(ctx)
	puzzles := set.All()
	logger.Debug("Solver starting.", "puzzles", len(puzzles), "workers", s.workers)

	for _, p := range puzzles {
		if err := s.store.SetStatus(ctx, p.Address(), node.StatusPending); err != nil {
			return fmt.Errorf("failed to initialise %s: %w", p.Address(), err)
		}
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, err)
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, p := range puzzles {
		g.Go(func() error {
			if err := s.runOne(ctx, p); err != nil {
				fail(err)
			}
			return nil
		})
	}
	// Workers never return errors; failures are collected above.
	_ = g.Wait()

	var cancelErr error
	if ctx.Err() != nil {
		cancelErr = fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	switch {
	case len(failures) > 0:
		logger.Warn("Solver finished with failures.", "failed", len(failures), "puzzles", len(puzzles), "cancelled", cancelErr != nil)
		return fmt.Errorf("%d of %d puzzles failed: %w", len(failures), len(puzzles), errors.Join(append(failures, cancelErr)...))
	case cancelErr != nil:
		logger.Warn("Solver cancelled.", "puzzles", len(puzzles))
		return cancelErr
	}
	logger.Debug("Solver finished.", "puzzles", len(puzzles))
	return nil
}

// runOne drives a single puzzle through its status transitions. Only puzzle
// failures are returned; store errors are logged.
func (s *Solver) runOne(ctx context.Context, p puzzle.Puzzle) error {
	addr := p.Address()
	logger := ctxlog.FromContext(ctx).With("puzzle", addr.String())

	if ctx.Err() != nil {
		logger.Debug("Skipping puzzle, run cancelled.")
		logStoreError(logger, s.store.SetStatus(ctx, addr, node.StatusSkipped))
		return nil
	}

	logStoreError(logger, s.store.SetStatus(ctx, addr, node.StatusRunning))
	logger.Debug("Solving puzzle.")

	out, err := s.solve(p)
	if err != nil {
		logger.Error("Puzzle failed.", "error", err)
		logStoreError(logger, s.store.SetError(ctx, addr, err))
		logStoreError(logger, s.store.SetStatus(ctx, addr, node.StatusFailed))
		return fmt.Errorf("%s: %w", addr, err)
	}

	logStoreError(logger, s.store.SetOutput(ctx, addr, out))
	logStoreError(logger, s.store.SetStatus(ctx, addr, node.StatusCompleted))
	logger.Debug("Puzzle solved.")
	return nil
}

func logStoreError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("Failed to record puzzle state.", "error", err)
	}
}
