package bintree

// BreadthFirstSearch returns the first value, visiting nodes level by level
// and left to right within a level, for which match returns true.
func (t *Tree[T]) BreadthFirstSearch(match func(T) bool) (T, bool) {
	level := []*Tree[T]{t}
	for len(level) > 0 {
		var next []*Tree[T]
		for _, n := range level {
			if match(n.value) {
				return n.value, true
			}
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	var zero T
	return zero, false
}

// DepthFirstSearch returns the first value in pre-order (node, left
// subtree, right subtree) for which match returns true.
func (t *Tree[T]) DepthFirstSearch(match func(T) bool) (T, bool) {
	if t == nil {
		var zero T
		return zero, false
	}
	if match(t.value) {
		return t.value, true
	}
	if v, ok := t.left.DepthFirstSearch(match); ok {
		return v, true
	}
	return t.right.DepthFirstSearch(match)
}
