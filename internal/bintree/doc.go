// Package bintree implements a generic binary tree whose nodes always hold a
// non-nil value.
//
// A *Tree is both a node and the subtree rooted at it; there is no separate
// container type. Children are optional and may be replaced at any time, so
// the package makes no ordering promises (it is not a search tree). Queries
// such as Height, IsBalanced and the traversals walk the structure as it is
// at the time of the call.
//
// Trees are not safe for concurrent mutation.
package bintree
