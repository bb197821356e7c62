package bintree

// Height returns the number of nodes on the longest root-to-leaf path. A
// single node has height 1.
func (t *Tree[T]) Height() int {
	return height(t)
}

func height[T any](t *Tree[T]) int {
	if t == nil {
		return 0
	}
	return 1 + max(height(t.left), height(t.right))
}

// IsBalanced reports whether, at every node, the heights of the left and
// right subtrees differ by at most one.
func (t *Tree[T]) IsBalanced() bool {
	_, ok := balancedHeight(t)
	return ok
}

// balancedHeight computes the height and the balance flag in one walk.
func balancedHeight[T any](t *Tree[T]) (int, bool) {
	if t == nil {
		return 0, true
	}
	lh, lok := balancedHeight(t.left)
	rh, rok := balancedHeight(t.right)
	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}
	return 1 + max(lh, rh), lok && rok && diff <= 1
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Size() + t.right.Size()
}
