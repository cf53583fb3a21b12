package avl

import (
	"context"

	"go.lepak.sg/avl/tree"
	"go.lepak.sg/avl/tree/iterator"
	"golang.org/x/exp/constraints"
)

// InOrder applies f to each key in the tree in ascending order.
// Equal keys are visited once each.
// If f returns false, the iteration is stopped early.
// f must not modify the tree.
func (t *AVL[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return visitInOrder(n.Left, f) && f(n.Key) && visitInOrder(n.Right, f)
}

// Keys returns every key in the tree in ascending order.
// The empty tree returns an empty, non-nil slice.
func (t *AVL[T]) Keys() []T {
	out := make([]T, 0, t.count)
	t.InOrder(func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *AVL[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *AVL[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	defer co.Stop()
//	for k := range co.Items() {
//		... do stuff with k ...
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when Stop
// is called, ctx is done, or the iteration is finished. The tree must
// not be modified until then.
func (t *AVL[T]) InOrderCoroutine(ctx context.Context) iterator.CoIterator[T] {
	return iterator.CoIterate[T](ctx, t.InOrderIterator())
}
