// Package recursion holds small recursion and memoization puzzles: counting
// the ways to climb a staircase in hops of one to three steps, and finding a
// right/down path for a robot across a grid with blocked cells.
package recursion
