package render

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
	"go.lepak.sg/avl/tree/avl"
	"golang.org/x/exp/constraints"
)

// DOT returns the tree as a Graphviz digraph named name.
// Nodes are circles labelled with the key and cached height,
// and edges are labelled L or R.
// Node IDs are assigned in pre-order, so equal keys get distinct nodes.
func DOT[T constraints.Ordered](v Viewer[T], name string) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("label", name)

	root, ok := v.Root()
	if ok {
		next := 0
		addNodes(g, root, &next)
	}

	return g.String()
}

func addNodes[T constraints.Ordered](g *dot.Graph, n avl.View[T], next *int) dot.Node {
	id := "n" + strconv.Itoa(*next)
	*next++

	node := g.Node(id).
		Attr("shape", "circle").
		Label(fmt.Sprintf("%v\n(h=%d)", n.Key(), n.Height()))

	if left, ok := n.Left(); ok {
		g.Edge(node, addNodes(g, left, next), "L")
	}
	if right, ok := n.Right(); ok {
		g.Edge(node, addNodes(g, right, next), "R")
	}

	return node
}
