package bintree

// InOrder lists values left subtree first, then the node, then the right
// subtree.
//
//	    (1)
//	    / \
//	  (2) (3)
//	  / \
//	(4) (5)
//
// yields [4 2 5 1 3].
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.Size())
	t.walk(func(n *Tree[T]) { out = append(out, n.value) }, inOrder)
	return out
}

// PreOrder lists the node first, then its left and right subtrees. For the
// tree shown on InOrder it yields [1 2 4 5 3].
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.Size())
	t.walk(func(n *Tree[T]) { out = append(out, n.value) }, preOrder)
	return out
}

// PostOrder lists both subtrees before the node: [4 5 2 3 1] for the tree
// shown on InOrder.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.Size())
	t.walk(func(n *Tree[T]) { out = append(out, n.value) }, postOrder)
	return out
}

// LevelOrder lists values level by level: [1 2 3 4 5] for the tree shown on
// InOrder.
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.Size())
	queue := []*Tree[T]{t}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return out
}

type order int

const (
	preOrder order = iota
	inOrder
	postOrder
)

func (t *Tree[T]) walk(visit func(*Tree[T]), o order) {
	if t == nil {
		return
	}
	if o == preOrder {
		visit(t)
	}
	t.left.walk(visit, o)
	if o == inOrder {
		visit(t)
	}
	t.right.walk(visit, o)
	if o == postOrder {
		visit(t)
	}
}
