package recursion

import "fmt"

// Point addresses a single grid cell.
type Point struct {
	Row    int
	Column int
}

// Right returns the neighbouring cell one column to the right.
func (p Point) Right() Point {
	return Point{Row: p.Row, Column: p.Column + 1}
}

// Down returns the neighbouring cell one row below.
func (p Point) Down() Point {
	return Point{Row: p.Row + 1, Column: p.Column}
}

// Distance is the number of horizontal and vertical moves between p and
// other (Manhattan distance).
func (p Point) Distance(other Point) int {
	return abs(p.Row-other.Row) + abs(p.Column-other.Column)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
