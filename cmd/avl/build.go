package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.lepak.sg/avl/tree/avl"
	"go.lepak.sg/avl/tree/render"
)

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, len(args))
	for i, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", arg, err)
		}
		keys[i] = k
	}
	return keys, nil
}

// report prints the keys, height and balance of a tree,
// plus its shape if asked.
func report(w io.Writer, tr *avl.AVL[int], shape bool) {
	fmt.Fprintln(w, "inorder:", tr.Keys())
	fmt.Fprintln(w, "height:", tr.Height(), "balanced:", tr.Balanced())
	if shape {
		fmt.Fprint(w, render.Text[int](tr))
	}
}

func writeDOT(path string, tr *avl.AVL[int]) error {
	if path == "" {
		return nil
	}
	err := os.WriteFile(path, []byte(render.DOT[int](tr, "AVL Tree")), 0o644)
	if err != nil {
		return fmt.Errorf("writing dot: %w", err)
	}
	return nil
}

func newBuildCmd() *cobra.Command {
	var (
		dotPath string
		shape   bool
	)

	cmd := &cobra.Command{
		Use:   "build KEY...",
		Short: "Insert keys in order and print the resulting tree",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}

			tr := avl.New(keys...)
			report(cmd.OutOrStdout(), tr, shape)

			return writeDOT(dotPath, tr)
		},
	}

	cmd.Flags().StringVar(&dotPath, "dot", "", "also write the tree as Graphviz DOT to this file")
	cmd.Flags().BoolVarP(&shape, "text", "t", true, "print the shape of the tree")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	var (
		keys    []int
		dotPath string
	)

	cmd := &cobra.Command{
		Use:   "delete KEY...",
		Short: "Build a tree from --keys, then delete each KEY",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dels, err := parseKeys(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tr := avl.New(keys...)
			for _, k := range dels {
				removed := tr.Delete(k)
				fmt.Fprintf(out, "delete %d: removed=%t contains=%t\n", k, removed, tr.Contains(k))
			}
			report(out, tr, true)

			return writeDOT(dotPath, tr)
		},
	}

	cmd.Flags().IntSliceVar(&keys, "keys", nil, "keys to build the tree from, in insert order")
	cmd.Flags().StringVar(&dotPath, "dot", "", "also write the final tree as Graphviz DOT to this file")

	return cmd
}
