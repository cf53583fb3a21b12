package avl

import (
	"fmt"

	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/constraints"
)

// Balanced reports whether every node's subtrees differ in height
// by at most one. It always holds for a tree built with Insert and
// Delete; it exists as a test oracle.
func (t *AVL[T]) Balanced() bool {
	return balanced(t.root)
}

func balanced[T constraints.Ordered](n *tree.Node[T]) bool {
	if n == nil {
		return true
	}
	bf := n.Balance()
	return bf >= -1 && bf <= 1 && balanced(n.Left) && balanced(n.Right)
}

// Check walks the whole tree and verifies search order, balance,
// cached heights and the key count. It returns an error describing
// the first violation found. A non-nil error is always a bug in this
// package.
func (t *AVL[T]) Check() error {
	var c checker[T]
	if _, err := c.visit(t.root); err != nil {
		return err
	}
	if c.count != t.count {
		return fmt.Errorf("tree holds %d keys but Len is %d", c.count, t.count)
	}
	return nil
}

type checker[T constraints.Ordered] struct {
	prev    T
	hasPrev bool
	count   int
}

// visit checks the subtree rooted at n in order and returns its real height.
func (c *checker[T]) visit(n *tree.Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}

	lh, err := c.visit(n.Left)
	if err != nil {
		return 0, err
	}

	if c.hasPrev && n.Key < c.prev {
		return 0, fmt.Errorf("key %v follows %v in order", n.Key, c.prev)
	}
	if n.Left != nil && n.Left.Key > n.Key {
		return 0, fmt.Errorf("left child %v of %v is greater", n.Left.Key, n.Key)
	}
	if n.Right != nil && n.Right.Key < n.Key {
		return 0, fmt.Errorf("right child %v of %v is smaller", n.Right.Key, n.Key)
	}
	c.prev, c.hasPrev = n.Key, true
	c.count++

	rh, err := c.visit(n.Right)
	if err != nil {
		return 0, err
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if n.Height != h {
		return 0, fmt.Errorf("node %v caches height %d, actual %d", n.Key, n.Height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node %v has balance factor %d", n.Key, bf)
	}

	return h, nil
}

// MinHeight returns the height of a perfectly balanced tree of n keys,
// the lowest height any binary tree holding n keys can have.
func MinHeight(n int) int {
	h := 0
	for full := 0; full < n; full = 2*full + 1 {
		h++
	}
	return h
}

// MaxHeight returns the greatest height an AVL tree of n keys can have.
// The sparsest AVL tree of height h has N(h) = N(h-1) + N(h-2) + 1 nodes.
func MaxHeight(n int) int {
	h := 0
	prev, curr := 0, 1 // N(h-1), N(h)
	for curr <= n {
		h++
		prev, curr = curr, curr+prev+1
	}
	return h
}
