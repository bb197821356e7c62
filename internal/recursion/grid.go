package recursion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyGrid is returned for a grid with no cells.
	ErrEmptyGrid = errors.New("grid must be non-empty")
	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("grid rows must all have the same length")
	// ErrBadCell is returned by ParseGrid for characters other than CellOpen and CellBlocked.
	ErrBadCell = errors.New("unknown grid cell")
)

// Cell characters understood by ParseGrid.
const (
	CellOpen    = '.'
	CellBlocked = '#'
)

// Grid is a rectangular field of cells. A true cell is passable.
type Grid struct {
	cells [][]bool
}

// NewGrid validates cells and wraps them in a Grid. The slice is copied.
func NewGrid(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(cells[0])
	g := &Grid{cells: make([][]bool, len(cells))}
	for i, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), width)
		}
		g.cells[i] = append([]bool(nil), row...)
	}
	return g, nil
}

// ParseGrid builds a grid from one string per row using CellOpen and
// CellBlocked.
func ParseGrid(rows []string) (*Grid, error) {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, 0, len(row))
		for c, ch := range row {
			switch ch {
			case CellOpen:
				cells[r] = append(cells[r], true)
			case CellBlocked:
				cells[r] = append(cells[r], false)
			default:
				return nil, fmt.Errorf("%w %q at row %d column %d", ErrBadCell, ch, r, c)
			}
		}
	}
	return NewGrid(cells)
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return len(g.cells[0])
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Column >= 0 && p.Column < g.Columns()
}

// Passable reports whether p lies inside the grid and is open.
func (g *Grid) Passable(p Point) bool {
	return g.Contains(p) && g.cells[p.Row][p.Column]
}

// String renders the grid in ParseGrid notation, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, open := range row {
			if open {
				sb.WriteRune(CellOpen)
			} else {
				sb.WriteRune(CellBlocked)
			}
		}
	}
	return sb.String()
}
