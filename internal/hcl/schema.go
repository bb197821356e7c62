package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a puzzle file may contain.
type fileRoot struct {
	Trees  []*treeBlock   `hcl:"tree,block"`
	Grids  []*gridBlock   `hcl:"grid,block"`
	Stairs []*stairsBlock `hcl:"stairs,block"`
}

// treeBlock is a `tree "name" { ... }` block.
type treeBlock struct {
	Name  string         `hcl:"name,label"`
	Match hcl.Expression `hcl:"match,optional"`
	Path  string         `hcl:"path,optional"`
	Root  *nodeBlock     `hcl:"root,block"`
}

// nodeBlock is a `root`, `left` or `right` block; children nest recursively.
type nodeBlock struct {
	Value int        `hcl:"value"`
	Left  *nodeBlock `hcl:"left,block"`
	Right *nodeBlock `hcl:"right,block"`
}

// gridBlock is a `grid "name" { rows = [...] }` block.
type gridBlock struct {
	Name string   `hcl:"name,label"`
	Rows []string `hcl:"rows"`
}

// stairsBlock is a `stairs "name" { steps = N }` block.
type stairsBlock struct {
	Name   string `hcl:"name,label"`
	Steps  int    `hcl:"steps"`
	Method string `hcl:"method,optional"`
}
