// Package render draws the shape of an AVL tree for people to look at.
// It only reads the tree through avl.View and never modifies it.
package render

import (
	"fmt"
	"strings"

	"go.lepak.sg/avl/tree/avl"
	"golang.org/x/exp/constraints"
)

// Viewer is anything that can hand out a read-only view of its root.
// *avl.AVL satisfies it.
type Viewer[T constraints.Ordered] interface {
	Root() (avl.View[T], bool)
}

var _ Viewer[int] = (*avl.AVL[int])(nil)

// Text returns a string representation of the tree, one node per line,
// each labelled with its key and cached height.
// A complete tree with 7 keys would look like this:
//
//	4 (h=3)
//	├─L─2 (h=2)
//	│   ├─L─1 (h=1)
//	│   └─R─3 (h=1)
//	└─R─6 (h=2)
//	    ├─L─5 (h=1)
//	    └─R─7 (h=1)
//
// The empty tree is the empty string.
func Text[T constraints.Ordered](v Viewer[T]) string {
	var sb strings.Builder

	root, ok := v.Root()
	if !ok {
		return ""
	}

	printvisit(&sb, root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n avl.View[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	fmt.Fprintf(sb, "%v (h=%d)\n", n.Key(), n.Height())

	left, hasLeft := n.Left()
	right, hasRight := n.Right()

	if hasLeft {
		printvisit(sb, left, prefix, treeLeftBranch, false, hasRight)
	}

	if hasRight {
		printvisit(sb, right, prefix, treeRightBranch, false, false)
	}
}
