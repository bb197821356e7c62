/*
Package nodeid provides structured, dot-separated identifiers for the nodes
gridkata deals with: puzzles in a loaded set (`grid.maze`, `stairs.ten`) and
subtrees inside a binary tree (`left.right.left`).

A segment may carry an index, e.g. `tree.sample[2]`; indexes are parsed and
preserved but no component currently assigns meaning to them beyond
identity.
*/
package nodeid
