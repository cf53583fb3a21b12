package avl

import (
	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/constraints"
)

// View is a read-only handle on one node of an AVL tree, for
// callers that need the tree's shape (printers, graph exporters).
// A View is only valid until the tree is next modified.
type View[T constraints.Ordered] struct {
	n *tree.Node[T]
}

// Root returns a View of the root node.
// If the tree is empty, ok is false.
func (t *AVL[T]) Root() (v View[T], ok bool) {
	return viewOf(t.root)
}

func viewOf[T constraints.Ordered](n *tree.Node[T]) (View[T], bool) {
	if n == nil {
		return View[T]{}, false
	}
	return View[T]{n: n}, true
}

// Key returns the key held by the node.
func (v View[T]) Key() T {
	return v.n.Key
}

// Height returns the cached height of the subtree rooted at the node.
func (v View[T]) Height() int {
	return v.n.Height
}

// Balance returns the height of the left subtree minus
// the height of the right subtree.
func (v View[T]) Balance() int {
	return v.n.Balance()
}

// Left returns a View of the left child, if there is one.
func (v View[T]) Left() (View[T], bool) {
	return viewOf(v.n.Left)
}

// Right returns a View of the right child, if there is one.
func (v View[T]) Right() (View[T], bool) {
	return viewOf(v.n.Right)
}

// Walk calls f on every node of the tree in pre-order (node, left, right),
// passing the depth of the node with the root at depth 0.
// If f returns false, its children are skipped.
func (t *AVL[T]) Walk(f func(v View[T], depth int) bool) {
	walk(t.root, 0, f)
}

func walk[T constraints.Ordered](n *tree.Node[T], depth int, f func(View[T], int) bool) {
	if n == nil {
		return
	}
	if !f(View[T]{n: n}, depth) {
		return
	}
	walk(n.Left, depth+1, f)
	walk(n.Right, depth+1, f)
}
