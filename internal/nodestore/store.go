// Package nodestore defines the interface for recording the mutable state of
// puzzles while a solver run is in progress.
//
// Puzzles move through Pending → Running → Completed (with output) or
// Failed (with error). Puzzles that never start because the run was
// cancelled end as Skipped.
//
// Implementations must be safe for concurrent use; see internal/inmemorystore.
package nodestore

import (
	"context"

	"github.com/specialistvlad/gridkata/internal/node"
	"github.com/specialistvlad/gridkata/internal/nodeid"
)

// Store records status, output and error per puzzle address.
type Store interface {
	// SetStatus updates the status of a puzzle.
	SetStatus(ctx context.Context, id nodeid.Address, status node.Status) error
	// GetStatus returns the status of a puzzle, StatusPending if never set.
	GetStatus(ctx context.Context, id nodeid.Address) (node.Status, error)

	// SetOutput records the result of a solved puzzle.
	SetOutput(ctx context.Context, id nodeid.Address, output any) error
	// GetOutput returns the recorded result, or nil.
	GetOutput(ctx context.Context, id nodeid.Address) (any, error)

	// SetError records why a puzzle failed. A nil error clears it.
	SetError(ctx context.Context, id nodeid.Address, nodeErr error) error
	// GetError returns the recorded failure, or nil.
	GetError(ctx context.Context, id nodeid.Address) (error, error)

	// Outcomes returns a snapshot of every puzzle the store has seen, sorted
	// by address.
	Outcomes(ctx context.Context) []node.Outcome
}
