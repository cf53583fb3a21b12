// Package avl implements a height-balanced binary search tree.
//
// Equal keys are allowed: an equal key is stored to the right of
// the keys already in the tree, so the tree behaves like a sorted
// multiset and duplicates come out of InOrder in insertion order.
//
// Invariants, after every Insert and Delete:
//   - At any node N, all keys in the subtree rooted at N.Left are less
//     than N.Key, and all keys in the subtree rooted at N.Right are
//     greater than or equal to N.Key. Rotations may move an equal key
//     into N.Left, so with duplicates the left side is only <= N.Key.
//     InOrder is still sorted and search still finds every key.
//   - At any node N, the heights of N.Left and N.Right differ by at most 1
//   - At any node N, N.Height is 1 + the larger of its children's heights,
//     where a missing child has height 0
package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/constraints"
)

// AVL is a self-balancing binary search tree. It is not safe for
// concurrent use if any goroutine is writing.
//
// The zero AVL may be used immediately.
type AVL[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate keys or children!
	root  *tree.Node[T]
	count int
}

// New returns a tree holding keys, inserted one at a time in order.
func New[T constraints.Ordered](keys ...T) *AVL[T] {
	t := &AVL[T]{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *AVL[T]) Len() int {
	return t.count
}

// Height returns the height of the tree. The empty tree has height 0.
func (t *AVL[T]) Height() int {
	return tree.HeightOf(t.root)
}

// Contains searches for k in the tree and returns true if it was found.
func (t *AVL[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *AVL[T]) Min() (k T, ok bool) {
	if t.root == nil {
		return
	}
	return minNode(t.root).Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *AVL[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Right != nil {
		n = n.Right
	}
	return n.Key, true
}

func minNode[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Insert inserts k into the tree. Equal keys are kept.
func (t *AVL[T]) Insert(k T) {
	t.root = insert(t.root, k)
	t.count++
}

func insert[T constraints.Ordered](n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return tree.NodeOf(k)
	}

	if k < n.Key {
		n.Left = insert(n.Left, k)
	} else {
		// ties go right
		n.Right = insert(n.Right, k)
	}

	return rebalance(n)
}

// Delete removes one occurrence of k from the tree.
// If k is not in the tree, the tree is unchanged and Delete returns false.
func (t *AVL[T]) Delete(k T) bool {
	var found bool
	t.root = remove(t.root, k, &found)
	if found {
		t.count--
	}
	return found
}

func remove[T constraints.Ordered](n *tree.Node[T], k T, found *bool) *tree.Node[T] {
	if n == nil {
		return nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left = remove(n.Left, k, found)
	case tree.Greater:
		n.Right = remove(n.Right, k, found)
	case tree.Equal:
		*found = true
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		// Two children: n keeps its place and takes the key of its
		// in-order successor, which is then removed from the right.
		n.Key = minNode(n.Right).Key
		n.Right = remove(n.Right, n.Key, new(bool))
	default:
		panic("unreachable")
	}

	return rebalance(n)
}

// String returns the keys of the tree in order, like AVL[1 2 3].
// Use the render package for a picture of the tree's shape.
func (t *AVL[T]) String() string {
	var sb strings.Builder
	sb.WriteString("AVL[")
	first := true
	t.InOrder(func(k T) bool {
		if !first {
			sb.WriteRune(' ')
		}
		first = false
		sb.WriteString(fmt.Sprint(k))
		return true
	})
	sb.WriteRune(']')
	return sb.String()
}
