package bintree

import (
	"errors"
	"reflect"
)

// ErrNilValue is returned (or panicked with, from constructors) when a nil
// value is offered to a tree node.
var ErrNilValue = errors.New("bintree: node value must not be nil")

// Tree is a binary tree node together with the subtree rooted at it.
type Tree[T any] struct {
	value T
	left  *Tree[T]
	right *Tree[T]
}

// New creates a single-node tree. It panics with ErrNilValue if value is nil.
func New[T any](value T) *Tree[T] {
	return NewWithChildren(nil, value, nil)
}

// NewWithChildren creates a node with the given children, either of which may
// be nil. It panics with ErrNilValue if value is nil.
func NewWithChildren[T any](left *Tree[T], value T, right *Tree[T]) *Tree[T] {
	if isNil(value) {
		panic(ErrNilValue)
	}
	return &Tree[T]{left: left, value: value, right: right}
}

// Value returns the value held by this node.
func (t *Tree[T]) Value() T {
	return t.value
}

// SetValue replaces the node value. A nil value is rejected and the node is
// left unchanged.
func (t *Tree[T]) SetValue(value T) error {
	if isNil(value) {
		return ErrNilValue
	}
	t.value = value
	return nil
}

// Left returns the left child, or nil.
func (t *Tree[T]) Left() *Tree[T] {
	return t.left
}

// Right returns the right child, or nil.
func (t *Tree[T]) Right() *Tree[T] {
	return t.right
}

// SetLeft replaces the left subtree. Passing nil detaches it.
func (t *Tree[T]) SetLeft(left *Tree[T]) {
	t.left = left
}

// SetRight replaces the right subtree. Passing nil detaches it.
func (t *Tree[T]) SetRight(right *Tree[T]) {
	t.right = right
}

// SetLeftValue replaces the left subtree with a new leaf holding value and
// returns that leaf.
func (t *Tree[T]) SetLeftValue(value T) *Tree[T] {
	t.left = New(value)
	return t.left
}

// SetRightValue replaces the right subtree with a new leaf holding value and
// returns that leaf.
func (t *Tree[T]) SetRightValue(value T) *Tree[T] {
	t.right = New(value)
	return t.right
}

// IsLeaf reports whether the node has no children.
func (t *Tree[T]) IsLeaf() bool {
	return t.left == nil && t.right == nil
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
