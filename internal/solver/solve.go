package solver

import (
	"fmt"

	"github.com/specialistvlad/gridkata/internal/nodeid"
	"github.com/specialistvlad/gridkata/internal/puzzle"
	"github.com/specialistvlad/gridkata/internal/recursion"
)

// Solve computes the result of a single puzzle.
func Solve(p puzzle.Puzzle) (any, error) {
	switch spec := p.(type) {
	case *puzzle.TreeSpec:
		return solveTree(spec)
	case *puzzle.GridSpec:
		return solveGrid(spec)
	case *puzzle.StairsSpec:
		return solveStairs(spec)
	default:
		return nil, fmt.Errorf("unsupported puzzle type %T", p)
	}
}

func solveTree(spec *puzzle.TreeSpec) (TreeResult, error) {
	tree := spec.Root.Build()
	if tree == nil {
		return TreeResult{}, fmt.Errorf("tree has no root")
	}
	if spec.Path != "" {
		path, err := nodeid.Parse(spec.Path)
		if err != nil {
			return TreeResult{}, err
		}
		if tree, err = tree.At(path); err != nil {
			return TreeResult{}, err
		}
	}

	res := TreeResult{
		Path:       spec.Path,
		Size:       tree.Size(),
		Height:     tree.Height(),
		Balanced:   tree.IsBalanced(),
		InOrder:    tree.InOrder(),
		PreOrder:   tree.PreOrder(),
		PostOrder:  tree.PostOrder(),
		LevelOrder: tree.LevelOrder(),
	}
	if spec.Match == nil {
		return res, nil
	}

	res.Searched = true
	var err error
	res.BreadthFirstMatch, res.BreadthFirstFound, err = search(tree.BreadthFirstSearch, spec.Match)
	if err != nil {
		return TreeResult{}, fmt.Errorf("breadth-first search: %w", err)
	}
	res.DepthFirstMatch, res.DepthFirstFound, err = search(tree.DepthFirstSearch, spec.Match)
	if err != nil {
		return TreeResult{}, fmt.Errorf("depth-first search: %w", err)
	}
	return res, nil
}

// search adapts a fallible predicate to a bintree search. The first
// predicate error stops the walk and is returned.
func search(walk func(func(int) bool) (int, bool), match puzzle.Predicate) (int, bool, error) {
	var matchErr error
	v, found := walk(func(v int) bool {
		ok, err := match(v)
		if err != nil {
			matchErr = err
			return true
		}
		return ok
	})
	if matchErr != nil {
		return 0, false, matchErr
	}
	return v, found, nil
}

func solveGrid(spec *puzzle.GridSpec) (GridResult, error) {
	g, err := recursion.ParseGrid(spec.Rows)
	if err != nil {
		return GridResult{}, err
	}
	path, err := recursion.RobotPath(g)
	if err != nil {
		return GridResult{}, err
	}

	res := GridResult{
		Rows:    g.Rows(),
		Columns: g.Columns(),
		Found:   len(path) > 0,
		Path:    make([]string, 0, len(path)),
	}
	for _, p := range path {
		res.Path = append(res.Path, p.String())
	}
	return res, nil
}

func solveStairs(spec *puzzle.StairsSpec) (StairsResult, error) {
	count := recursion.StairCombinationsMemoized
	if spec.Method == puzzle.MethodBrute {
		count = recursion.StairCombinationsBrute
	}
	n, err := count(spec.Steps)
	if err != nil {
		return StairsResult{}, err
	}
	return StairsResult{Steps: spec.Steps, Method: spec.Method, Combinations: n}, nil
}
