// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the nodestore.Store interface.
//
// State lives in sync.Maps keyed by the canonical address string. Every
// puzzle's state is written by the one worker solving it and read by the
// reporter afterwards, which is the disjoint-key pattern sync.Map is built
// for.
package inmemorystore

import (
	"context"
	"slices"
	"sync"

	"github.com/specialistvlad/gridkata/internal/node"
	"github.com/specialistvlad/gridkata/internal/nodeid"
	"github.com/specialistvlad/gridkata/internal/nodestore"
)

// Store is an in-memory nodestore.Store.
type Store struct {
	addrs   sync.Map // Key: address string, Value: nodeid.Address
	states  sync.Map // Key: address string, Value: node.Status
	outputs sync.Map // Key: address string, Value: any
	errors  sync.Map // Key: address string, Value: error
}

// New creates a new, empty in-memory store.
func New() nodestore.Store {
	return &Store{}
}

func (s *Store) remember(id nodeid.Address) string {
	key := id.String()
	s.addrs.LoadOrStore(key, id)
	return key
}

// SetStatus updates the status of a specific puzzle.
func (s *Store) SetStatus(ctx context.Context, id nodeid.Address, status node.Status) error {
	s.states.Store(s.remember(id), status)
	return nil
}

// GetStatus retrieves the status of a specific puzzle. If a status has not
// been set, it returns StatusPending.
func (s *Store) GetStatus(ctx context.Context, id nodeid.Address) (node.Status, error) {
	status, ok := s.states.Load(id.String())
	if !ok {
		return node.StatusPending, nil
	}
	return status.(node.Status), nil
}

// SetOutput records the result of a puzzle.
func (s *Store) SetOutput(ctx context.Context, id nodeid.Address, output any) error {
	s.outputs.Store(s.remember(id), output)
	return nil
}

// GetOutput retrieves the recorded result of a puzzle.
func (s *Store) GetOutput(ctx context.Context, id nodeid.Address) (any, error) {
	output, ok := s.outputs.Load(id.String())
	if !ok {
		return nil, nil
	}
	return output, nil
}

// SetError records the failure of a puzzle. A nil error clears any
// previously recorded failure.
func (s *Store) SetError(ctx context.Context, id nodeid.Address, nodeErr error) error {
	key := s.remember(id)
	if nodeErr == nil {
		s.errors.Delete(key)
		return nil
	}
	s.errors.Store(key, nodeErr)
	return nil
}

// GetError retrieves the recorded failure of a puzzle.
func (s *Store) GetError(ctx context.Context, id nodeid.Address) (error, error) {
	v, ok := s.errors.Load(id.String())
	if !ok {
		return nil, nil
	}
	nodeErr, _ := v.(error)
	return nodeErr, nil
}

// Outcomes returns every known puzzle's state, sorted by address.
func (s *Store) Outcomes(ctx context.Context) []node.Outcome {
	var out []node.Outcome
	s.addrs.Range(func(_, v any) bool {
		id := v.(nodeid.Address)
		o := node.Outcome{Address: id}
		o.Status, _ = s.GetStatus(ctx, id)
		o.Output, _ = s.GetOutput(ctx, id)
		o.Err, _ = s.GetError(ctx, id)
		out = append(out, o)
		return true
	})
	slices.SortFunc(out, func(a, b node.Outcome) int {
		return nodeid.Compare(a.Address, b.Address)
	})
	return out
}
