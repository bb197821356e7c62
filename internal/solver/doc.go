// Package solver runs every puzzle of a puzzle.Set on a bounded pool of
// goroutines and records each outcome in a nodestore.Store.
//
// Puzzles are independent: one failing does not stop the others. Cancelling
// the context stops new puzzles from starting; those are recorded as
// skipped.
package solver
