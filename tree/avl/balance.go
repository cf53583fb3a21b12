package avl

import (
	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/constraints"
)

// rebalance recomputes the height of n and restores the balance
// invariant at n with at most two rotations. Both subtrees of n must
// already be balanced with correct heights, and their heights may
// differ by at most 2. It returns the node that now roots the subtree.
func rebalance[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	n.Fix()

	switch bf := n.Balance(); {
	case bf > 1:
		// a balanced left child picks the single rotation
		if n.Left.Balance() < 0 {
			n.Left = n.Left.RotateLeft()
		}
		return n.RotateRight()
	case bf < -1:
		if n.Right.Balance() > 0 {
			n.Right = n.Right.RotateRight()
		}
		return n.RotateLeft()
	default:
		return n
	}
}
