package solver

// TreeResult is the output of a tree puzzle.
type TreeResult struct {
	Path       string `cty:"path"`
	Size       int    `cty:"size"`
	Height     int    `cty:"height"`
	Balanced   bool   `cty:"balanced"`
	InOrder    []int  `cty:"in_order"`
	PreOrder   []int  `cty:"pre_order"`
	PostOrder  []int  `cty:"post_order"`
	LevelOrder []int  `cty:"level_order"`

	// Searched is false when the puzzle declared no match predicate, in
	// which case the search fields below are unset.
	Searched          bool `cty:"searched"`
	BreadthFirstFound bool `cty:"breadth_first_found"`
	BreadthFirstMatch int  `cty:"breadth_first_match"`
	DepthFirstFound   bool `cty:"depth_first_found"`
	DepthFirstMatch   int  `cty:"depth_first_match"`
}

// GridResult is the output of a robot-in-a-grid puzzle.
type GridResult struct {
	Rows    int      `cty:"rows"`
	Columns int      `cty:"columns"`
	Found   bool     `cty:"found"`
	Path    []string `cty:"path"`
}

// StairsResult is the output of a staircase puzzle.
type StairsResult struct {
	Steps        int    `cty:"steps"`
	Method       string `cty:"method"`
	Combinations int    `cty:"combinations"`
}
