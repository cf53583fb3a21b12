// Package tree holds the node type shared by the tree implementations
// in this module, along with the local restructuring operations on it.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single element of a height-balanced binary tree.
// There is no parent pointer: a Node is owned by exactly one parent,
// or by whatever holds the root.
//
// Height is the height of the subtree rooted at this Node, counting
// the Node itself, so a leaf has Height 1. An absent child has height 0.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
	Height      int
}

// NodeOf returns a new leaf holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key:    k,
		Height: 1,
	}
}

// HeightOf returns the cached height of n, or 0 if n is nil.
func HeightOf[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// Fix recomputes the cached height of n from its children.
// The children's heights must already be correct.
func (n *Node[T]) Fix() {
	l, r := HeightOf(n.Left), HeightOf(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

// Balance returns the balance factor of n: the height of the left
// subtree minus the height of the right subtree. A nil n has balance 0.
func (n *Node[T]) Balance() int {
	if n == nil {
		return 0
	}
	return HeightOf(n.Left) - HeightOf(n.Right)
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
