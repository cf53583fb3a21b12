package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/avl/tree/avl"
)

func newRandomCmd() *cobra.Command {
	var (
		seed int64
		num  int
		dups int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from randomly ordered keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			var tr *avl.AVL[int]
			if dups > 0 {
				tr = avl.BuildRandomDuplicates(num, dups, seed)
			} else {
				tr = avl.BuildRandom(num, seed)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "seed:", seed)
			report(out, tr, true)
			fmt.Fprintln(out, "ideal:", avl.MinHeight(tr.Len()), "worst:", avl.MaxHeight(tr.Len()))

			return nil
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of keys in the tree")
	cmd.Flags().IntVar(&dups, "dups", 0, "if set, draw keys from [0, dups) so they may repeat")

	return cmd
}
