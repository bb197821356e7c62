package recursion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{".#.", "..."})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.True(t, g.Passable(Point{0, 0}))
	assert.False(t, g.Passable(Point{0, 1}))
	assert.False(t, g.Passable(Point{2, 0}), "outside the grid is never passable")
	assert.False(t, g.Passable(Point{0, -1}))
	assert.Equal(t, ".#.\n...", g.String())
}

func TestParseGrid_Errors(t *testing.T) {
	_, err := ParseGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseGrid([]string{""})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseGrid([]string{"..", "."})
	assert.ErrorIs(t, err, ErrRaggedGrid)

	_, err = ParseGrid([]string{".x"})
	assert.ErrorIs(t, err, ErrBadCell)
}

func TestNewGrid_CopiesCells(t *testing.T) {
	cells := [][]bool{{true, true}}
	g, err := NewGrid(cells)
	require.NoError(t, err)

	cells[0][1] = false
	assert.True(t, g.Passable(Point{0, 1}))
}
