package recursion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestRobotPath(t *testing.T) {
	testCases := []struct {
		name string
		grid []string
		want []Point
	}{
		{
			// The upper-right corner is blocked, so the only way is down then right.
			name: "simple",
			grid: []string{
				".#",
				"..",
			},
			want: []Point{{0, 0}, {1, 0}, {1, 1}},
		},
		{
			name: "impassable",
			grid: []string{
				".#",
				"#.",
			},
			want: []Point{},
		},
		{
			name: "single cell",
			grid: []string{"."},
			want: []Point{{0, 0}},
		},
		{
			name: "blocked start",
			grid: []string{"#."},
			want: []Point{},
		},
		{
			name: "blocked end",
			grid: []string{"..#"},
			want: []Point{},
		},
		{
			// Dead ends along the top row and through the right column must be
			// abandoned in favour of the middle corridor.
			name: "traps",
			grid: []string{
				".....",
				".#.#.",
				".#.##",
				".#...",
			},
			want: []Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {3, 2}, {3, 3}, {3, 4}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RobotPath(mustGrid(t, tc.grid...))
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRobotPath_IsValidMonotonePath(t *testing.T) {
	g := mustGrid(t,
		"...#....",
		".#...#..",
		"...#...#",
		"#.#..#..",
		"........",
	)
	path, err := RobotPath(g)
	require.NoError(t, err)
	require.Len(t, path, g.Rows()+g.Columns()-1)

	assert.Equal(t, Point{}, path[0])
	assert.Equal(t, Point{Row: g.Rows() - 1, Column: g.Columns() - 1}, path[len(path)-1])
	for i, p := range path {
		assert.True(t, g.Passable(p), "step %d %v is blocked", i, p)
		if i > 0 {
			prev := path[i-1]
			assert.True(t, p == prev.Right() || p == prev.Down(), "step %d %v does not follow %v", i, p, prev)
		}
	}
}

func TestRobotPath_NilGrid(t *testing.T) {
	_, err := RobotPath(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestRobotPath_ZeroValueGrid(t *testing.T) {
	var err error
	assert.NotPanics(t, func() { _, err = RobotPath(&Grid{}) })
	assert.ErrorIs(t, err, ErrEmptyGrid)

	assert.NotPanics(t, func() { _, err = RobotPath(&Grid{cells: [][]bool{{}}}) })
	assert.ErrorIs(t, err, ErrEmptyGrid)
}
