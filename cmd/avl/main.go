// Command avl builds AVL trees from the command line and prints them.
//
//	avl build 10 43 24 45 2
//	avl build --dot tree.dot 5 36 74 23 43 36 85 10
//	avl delete --keys 5,3,789 3
//	avl random -n 20 -s 1
//	avl check --rounds 64 --size 500 --workers 8
package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("avl: ")

	root := &cobra.Command{
		Use:          "avl",
		Short:        "Build, print and stress-test AVL trees",
		SilenceUsage: true,
	}

	root.AddCommand(
		newBuildCmd(),
		newDeleteCmd(),
		newRandomCmd(),
		newCheckCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
