package recursion

import (
	"container/heap"
	"slices"
)

// RobotPath finds a way for a robot that can only move right or down from
// the upper-left to the lower-right cell of g. The frontier is explored
// closest-to-goal first (Manhattan distance).
//
// Every right/down path between the corners has the same length, so any path
// found is also a shortest one. When no path exists, including when either
// corner is blocked, an empty non-nil slice is returned.
func RobotPath(g *Grid) ([]Point, error) {
	if g == nil || len(g.cells) == 0 || len(g.cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	start := Point{}
	end := Point{Row: g.Rows() - 1, Column: g.Columns() - 1}
	if !g.Passable(start) || !g.Passable(end) {
		return []Point{}, nil
	}

	frontier := &pointQueue{goal: end}
	heap.Push(frontier, start)
	discovered := map[Point]bool{start: true}
	// cameFrom maps each discovered point to the point it was reached from.
	cameFrom := make(map[Point]Point)

	for frontier.Len() > 0 {
		p := heap.Pop(frontier).(Point)
		if p == end {
			return tracePath(cameFrom, start, end), nil
		}
		for _, next := range [...]Point{p.Right(), p.Down()} {
			if discovered[next] || !g.Passable(next) {
				continue
			}
			discovered[next] = true
			cameFrom[next] = p
			heap.Push(frontier, next)
		}
	}
	return []Point{}, nil
}

func tracePath(cameFrom map[Point]Point, start, end Point) []Point {
	path := []Point{end}
	for p := end; p != start; {
		p = cameFrom[p]
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}

type queuedPoint struct {
	point Point
	seq   int
}

// pointQueue is a min-heap keyed on distance to goal; ties pop in insertion
// order so results are deterministic.
type pointQueue struct {
	goal  Point
	items []queuedPoint
	seq   int
}

func (q *pointQueue) Len() int { return len(q.items) }

func (q *pointQueue) Less(i, j int) bool {
	di, dj := q.items[i].point.Distance(q.goal), q.items[j].point.Distance(q.goal)
	if di != dj {
		return di < dj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *pointQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pointQueue) Push(x any) {
	q.items = append(q.items, queuedPoint{point: x.(Point), seq: q.seq})
	q.seq++
}

func (q *pointQueue) Pop() any {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last.point
}
