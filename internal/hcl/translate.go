package hcl

import (
	"github.com/specialistvlad/gridkata/internal/puzzle"
)

// translateTree converts the HCL tree block into the agnostic model.
func (l *Loader) translateTree(b *treeBlock) (*puzzle.TreeSpec, error) {
	spec := &puzzle.TreeSpec{
		Name: b.Name,
		Root: translateNode(b.Root),
		Path: b.Path,
	}
	if hasExpression(b.Match) {
		pred, err := Predicate(b.Match)
		if err != nil {
			return nil, err
		}
		spec.Match = pred
	}
	return spec, nil
}

func translateNode(b *nodeBlock) *puzzle.TreeNode {
	if b == nil {
		return nil
	}
	return &puzzle.TreeNode{
		Value: b.Value,
		Left:  translateNode(b.Left),
		Right: translateNode(b.Right),
	}
}

// translateGrid converts the HCL grid block into the agnostic model.
func (l *Loader) translateGrid(b *gridBlock) *puzzle.GridSpec {
	return &puzzle.GridSpec{Name: b.Name, Rows: b.Rows}
}

// translateStairs converts the HCL stairs block into the agnostic model.
func (l *Loader) translateStairs(b *stairsBlock) *puzzle.StairsSpec {
	method := b.Method
	if method == "" {
		method = puzzle.MethodMemoized
	}
	return &puzzle.StairsSpec{Name: b.Name, Steps: b.Steps, Method: method}
}
