// Command cheers decomposes the complete graph K_n into triangulated
// hexagonal patches and prints them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ranjeethmahankali/cheers/decompose"
)

var (
	numNodes int
	quiet    bool
)

func main() {
	root := &cobra.Command{
		Use:   "cheers",
		Short: "Decompose a complete graph into triangulated hex patches",
		Long: `Decompose the edge set of the complete graph K_n into disjoint patches,
each a connected fragment of a triangulated hexagonal lattice. Every edge
of K_n ends up in exactly one patch; the result is re-verified before the
command exits.

Examples:
  cheers -n 12
  cheers -n 50 --quiet`,
		RunE:         run,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
	}

	root.Flags().IntVarP(&numNodes, "nodes", "n", 7, "Order of the complete graph to decompose")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-patch lattice art")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	res, err := decompose.Decompose(numNodes)
	if err != nil {
		return err
	}

	for i, p := range res.Patches {
		if quiet {
			continue
		}
		fmt.Printf("patch %d (%d edges):\n%s", i, len(p.Edges()), p)
	}
	fmt.Printf("K_%d: %d patches, %d edges\n", numNodes, len(res.Patches), res.EdgeCount())

	if err := decompose.Verify(numNodes, res.Patches); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	fmt.Println("verification passed")

	return nil
}
