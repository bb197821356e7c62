package puzzle

import (
	"fmt"

	"github.com/specialistvlad/gridkata/internal/bintree"
	"github.com/specialistvlad/gridkata/internal/nodeid"
)

// Kind names a family of puzzles. It is also the first segment of every
// puzzle address.
type Kind string

const (
	KindTree   Kind = "tree"
	KindGrid   Kind = "grid"
	KindStairs Kind = "stairs"
)

// Stair counting methods.
const (
	MethodMemoized = "memoized"
	MethodBrute    = "brute"
)

// Puzzle is implemented by every spec type in a Set.
type Puzzle interface {
	Kind() Kind
	Address() nodeid.Address
}

// Predicate reports whether a tree value matches a search. It may fail, for
// example when a configured expression does not evaluate to a bool.
type Predicate func(value int) (bool, error)

// TreeNode is one node of a declared tree.
type TreeNode struct {
	Value int
	Left  *TreeNode
	Right *TreeNode
}

// Build converts the declared nodes into a bintree.Tree.
func (n *TreeNode) Build() *bintree.Tree[int] {
	if n == nil {
		return nil
	}
	return bintree.NewWithChildren(n.Left.Build(), n.Value, n.Right.Build())
}

// TreeSpec declares a binary tree to analyse.
type TreeSpec struct {
	Name string
	Root *TreeNode
	// Match, when set, drives breadth- and depth-first searches.
	Match Predicate
	// Path selects a subtree (e.g. "left.right") to analyse instead of the root.
	Path string
}

func (s *TreeSpec) Kind() Kind              { return KindTree }
func (s *TreeSpec) Address() nodeid.Address { return nodeid.New(string(KindTree), s.Name) }

// GridSpec declares a robot-in-a-grid puzzle in '.'/'#' row notation.
type GridSpec struct {
	Name string
	Rows []string
}

func (s *GridSpec) Kind() Kind              { return KindGrid }
func (s *GridSpec) Address() nodeid.Address { return nodeid.New(string(KindGrid), s.Name) }

// StairsSpec declares a staircase to count hop combinations for.
type StairsSpec struct {
	Name   string
	Steps  int
	Method string
}

func (s *StairsSpec) Kind() Kind              { return KindStairs }
func (s *StairsSpec) Address() nodeid.Address { return nodeid.New(string(KindStairs), s.Name) }

// Set is every puzzle found by a Loader.
type Set struct {
	Trees  []*TreeSpec
	Grids  []*GridSpec
	Stairs []*StairsSpec
}

// All returns every puzzle in the set, trees first, then grids, then stairs,
// each in declaration order.
func (s *Set) All() []Puzzle {
	out := make([]Puzzle, 0, s.Len())
	for _, p := range s.Trees {
		out = append(out, p)
	}
	for _, p := range s.Grids {
		out = append(out, p)
	}
	for _, p := range s.Stairs {
		out = append(out, p)
	}
	return out
}

// Len returns the number of puzzles in the set.
func (s *Set) Len() int {
	return len(s.Trees) + len(s.Grids) + len(s.Stairs)
}

// validateName rejects names that would not read back as the single second
// segment of the puzzle address, such as "a.b" or "x[1]".
func validateName(addr nodeid.Address) error {
	seg, _ := addr.Last()
	parsed, err := nodeid.Parse(seg.Name)
	if err != nil {
		return fmt.Errorf("puzzle %q: invalid name: %w", addr, err)
	}
	if parsed.Len() != 1 || parsed.Path[0].HasIndex() {
		return fmt.Errorf("puzzle %q: invalid name %q: must be a single segment without an index", addr, seg.Name)
	}
	return nil
}

// Validate checks that addresses are unique and that every field holds a
// usable value.
func (s *Set) Validate() error {
	seen := make(map[string]struct{}, s.Len())
	for _, p := range s.All() {
		addr := p.Address()
		key := addr.String()
		if err := validateName(addr); err != nil {
			return err
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate puzzle %q", key)
		}
		seen[key] = struct{}{}
	}
	for _, t := range s.Trees {
		if t.Root == nil {
			return fmt.Errorf("puzzle %q: a root node is required", t.Address())
		}
		if t.Path != "" {
			if _, err := nodeid.Parse(t.Path); err != nil {
				return fmt.Errorf("puzzle %q: invalid path: %w", t.Address(), err)
			}
		}
	}
	for _, st := range s.Stairs {
		switch st.Method {
		case MethodMemoized, MethodBrute:
		default:
			return fmt.Errorf("puzzle %q: unknown method %q, want %q or %q", st.Address(), st.Method, MethodMemoized, MethodBrute)
		}
	}
	return nil
}
