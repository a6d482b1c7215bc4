// Package decompose defines options, results, and sentinel errors for the
// greedy complete-graph decomposition.
package decompose

import (
	"errors"

	"github.com/ranjeethmahankali/cheers/lattice"
)

// Sentinel errors for decomposition and verification.
var (
	// ErrNegativeOrder indicates Decompose was called with n < 0.
	ErrNegativeOrder = errors.New("decompose: graph order must be non-negative")

	// ErrDuplicateEdge indicates a patch reported an edge that is not
	// present in the remaining rebuilt graph: either covered twice or
	// outside the graph entirely.
	ErrDuplicateEdge = errors.New("decompose: patch edge not present in remaining graph")

	// ErrUncoveredEdges indicates edges of K_n remain after removing every
	// patch edge.
	ErrUncoveredEdges = errors.New("decompose: edges left uncovered after all patches")
)

// Options contains tunable parameters for a decomposition run.
type Options struct {
	// Validate runs the mesh invariant checker on the growing patch after
	// every insertion. Costly; meant for tests and debugging.
	Validate bool
}

// DefaultOptions returns the production configuration: no per-insertion
// validation.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options before a run starts.
type Option func(*Options)

// WithValidation toggles per-insertion mesh invariant checking.
func WithValidation(enabled bool) Option {
	return func(o *Options) { o.Validate = enabled }
}

// Result holds the outcome of one decomposition run.
type Result struct {
	// Order is the n the run was started with.
	Order int

	// Patches are completed mesh snapshots in emission order. Each is a
	// single connected triangulated patch detached from further mutation.
	Patches []*lattice.Mesh
}

// EdgeCount sums the edges over all emitted patches. For a correct run it
// equals n·(n-1)/2. Complexity: O(n) per patch.
func (r *Result) EdgeCount() int {
	total := 0
	for _, p := range r.Patches {
		total += len(p.Edges())
	}

	return total
}
