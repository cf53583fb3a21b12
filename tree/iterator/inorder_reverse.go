package iterator

import (
	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T constraints.Ordered](root *tree.Node[T]) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, tree.HeightOf(root)),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushRight(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushRight(pop.Left)

	return len(i.stack) > 0
}

func (i *InOrderReverse[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.stack[len(i.stack)-1].Key
}
