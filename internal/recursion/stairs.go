package recursion

import (
	"errors"
	"math"
)

var (
	// ErrNegativeSteps is returned for a staircase with fewer than zero steps.
	ErrNegativeSteps = errors.New("step count must not be negative")
	// ErrTooManySteps is returned by the brute-force counter above MaxBruteSteps.
	ErrTooManySteps = errors.New("step count too large for brute-force counting")
	// ErrOverflow is returned when the number of combinations does not fit in an int.
	ErrOverflow = errors.New("combination count overflows int")
)

// MaxBruteSteps bounds StairCombinationsBrute, whose cost grows roughly as 1.84^n.
const MaxBruteSteps = 25

// baseStairs holds the closed-form answers for staircases of 0..3 steps.
var baseStairs = [4]int{0, 1, 2, 4}

// maxStairSteps is the tallest staircase whose combination count fits in an int.
var maxStairSteps = func() int {
	a, b, c := baseStairs[1], baseStairs[2], baseStairs[3]
	n := 3
	for a <= math.MaxInt-b && a+b <= math.MaxInt-c {
		a, b, c = b, c, a+b+c
		n++
	}
	return n
}()

// StairCombinationsBrute counts the ways to climb n steps hopping 1, 2 or 3
// steps at a time by plain recursion. Zero steps counts as zero ways.
func StairCombinationsBrute(n int) (int, error) {
	switch {
	case n < 0:
		return 0, ErrNegativeSteps
	case n > MaxBruteSteps:
		return 0, ErrTooManySteps
	}
	return stairsBrute(n), nil
}

func stairsBrute(n int) int {
	if n < len(baseStairs) {
		return baseStairs[n]
	}
	return stairsBrute(n-3) + stairsBrute(n-2) + stairsBrute(n-1)
}

// StairCombinationsMemoized returns the same count as StairCombinationsBrute
// but remembers every intermediate answer, so each step count is solved once.
func StairCombinationsMemoized(n int) (int, error) {
	switch {
	case n < 0:
		return 0, ErrNegativeSteps
	case n > maxStairSteps:
		return 0, ErrOverflow
	}
	memo := make([]int, max(n+1, len(baseStairs)))
	copy(memo, baseStairs[:])
	return stairsMemoized(n, memo), nil
}

// stairsMemoized treats a zero memo entry as unsolved; only n == 0 has a
// genuine answer of zero and it is handled before the lookup.
func stairsMemoized(n int, memo []int) int {
	if n == 0 {
		return 0
	}
	if memo[n] == 0 {
		memo[n] = stairsMemoized(n-3, memo) + stairsMemoized(n-2, memo) + stairsMemoized(n-1, memo)
	}
	return memo[n]
}
