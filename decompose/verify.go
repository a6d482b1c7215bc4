package decompose

import (
	"fmt"

	"github.com/ranjeethmahankali/cheers/kgraph"
	"github.com/ranjeethmahankali/cheers/lattice"
)

// Verify is the correctness oracle for a decomposition: it rebuilds K_n,
// removes every edge reported by every patch, and confirms nothing is
// missing and nothing was covered twice. Returns nil iff the patches cover
// the complete graph's edge set exactly once each.
//
// Treat a failure as a post-condition violation of Decompose, not a
// recoverable state. Complexity: O(n²/word + total patch edges).
func Verify(n int, patches []*lattice.Mesh) error {
	g := kgraph.NewComplete(n)
	for pi, p := range patches {
		for _, e := range p.Edges() {
			if !g.HasEdge(e[0], e[1]) {
				return fmt.Errorf("%w: edge %d-%d in patch %d", ErrDuplicateEdge, e[0], e[1], pi)
			}
			g.RemoveEdge(e[0], e[1])
		}
	}
	if !g.IsEmpty() {
		return fmt.Errorf("%w: %d remaining", ErrUncoveredEdges, g.EdgeCount())
	}

	return nil
}
