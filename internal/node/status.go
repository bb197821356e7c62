// Package node defines the execution status of a single puzzle and the
// outcome record the solver leaves behind for it.
package node

import "github.com/specialistvlad/gridkata/internal/nodeid"

// Status is the execution state of a puzzle.
type Status int32

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSkipped
}

// Outcome is a snapshot of one puzzle's state.
type Outcome struct {
	Address nodeid.Address
	Status  Status
	Output  any
	Err     error
}
