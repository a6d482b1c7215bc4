package decompose_test

import (
	"fmt"

	"github.com/ranjeethmahankali/cheers/decompose"
)

// ExampleDecompose splits K_4 and re-checks the cover. The greedy loop
// packs five of the six edges into one triangulated patch; the last edge
// becomes a patch of its own.
func ExampleDecompose() {
	res, err := decompose.Decompose(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("patches:", len(res.Patches))
	for i, p := range res.Patches {
		fmt.Printf("patch %d: %d edges\n", i, len(p.Edges()))
	}
	fmt.Println("covered:", res.EdgeCount(), "of 6")
	fmt.Println("verified:", decompose.Verify(4, res.Patches) == nil)

	// Output:
	// patches: 2
	// patch 0: 5 edges
	// patch 1: 1 edges
	// covered: 6 of 6
	// verified: true
}
