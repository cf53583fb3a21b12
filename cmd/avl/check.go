package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/spf13/cobra"
	"go.lepak.sg/avl/tree/avl"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd() *cobra.Command {
	var (
		cfgPath string
		flags   = defaultCheckConfig()
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run random inserts and deletes, checking every invariant after each one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags
			if cfgPath != "" {
				var err error
				cfg, err = loadCheckConfig(cfgPath)
				if err != nil {
					return err
				}
				// flags given explicitly override the file
				f := cmd.Flags()
				if f.Changed("rounds") {
					cfg.Rounds = flags.Rounds
				}
				if f.Changed("size") {
					cfg.Size = flags.Size
				}
				if f.Changed("span") {
					cfg.Span = flags.Span
				}
				if f.Changed("workers") {
					cfg.Workers = flags.Workers
				}
				if f.Changed("seed") {
					cfg.Seed = flags.Seed
				}
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			if err := runCheck(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rounds of %d ops\n", cfg.Rounds, cfg.Size)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "YAML file with rounds, size, span, workers and seed")
	f.IntVar(&flags.Rounds, "rounds", flags.Rounds, "number of independent trees to test")
	f.IntVar(&flags.Size, "size", flags.Size, "operations per tree")
	f.IntVar(&flags.Span, "span", flags.Span, "keys are drawn from [0, span)")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "trees tested at once")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "seed of the first round; round i uses seed+i")

	return cmd
}

// runCheck runs cfg.Rounds rounds on cfg.Workers goroutines.
// Each round owns its own tree. The first failing round cancels the rest.
func runCheck(ctx context.Context, cfg checkConfig) error {
	g, ctx := errgroup.WithContext(ctx)
	rounds := make(chan int)

	g.Go(func() error {
		defer close(rounds)
		for i := 0; i < cfg.Rounds; i++ {
			select {
			case rounds <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for i := range rounds {
				seed := cfg.Seed + int64(i)
				if err := runRound(seed, cfg.Size, cfg.Span); err != nil {
					log.Printf("round %d failed (seed %d)", i, seed)
					return fmt.Errorf("round %d: %w", i, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// runRound applies size random inserts and deletes to an empty tree,
// comparing against a sorted slice after every operation.
func runRound(seed int64, size, span int) error {
	rd := rand.New(rand.NewSource(seed))
	tr := &avl.AVL[int]{}
	var want []int

	for op := 0; op < size; op++ {
		k := rd.Intn(span)
		i := sort.SearchInts(want, k)
		found := i < len(want) && want[i] == k

		if rd.Intn(3) == 0 {
			if tr.Delete(k) != found {
				return fmt.Errorf("op %d: delete %d reported %t", op, k, !found)
			}
			if found {
				want = slices.Delete(want, i, i+1)
			}
		} else {
			tr.Insert(k)
			want = slices.Insert(want, i, k)
		}

		if err := tr.Check(); err != nil {
			return fmt.Errorf("op %d: %w", op, err)
		}
		if tr.Contains(k) != slices.Contains(want, k) {
			return fmt.Errorf("op %d: contains %d disagrees", op, k)
		}
	}

	if got := tr.Keys(); !slices.Equal(got, want) {
		return fmt.Errorf("keys %v, want %v", got, want)
	}

	return nil
}
