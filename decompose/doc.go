// Package decompose splits the edge set of a complete graph K_n into
// disjoint triangulated hex-lattice patches.
//
// What:
//
//   - Decompose(n) runs a deterministic greedy loop: seed a patch with the
//     two highest-valence remaining nodes, then repeatedly fill the
//     most-constrained open boundary slot with the highest-valence node
//     still connected to all of the slot's mesh neighbors. When no slot
//     can be filled the patch is sealed and emitted, and a new one is
//     seeded, until no edges remain.
//   - Verify(n, patches) is the correctness oracle: it rebuilds K_n,
//     removes every edge every patch reports, and fails on a duplicate or
//     a leftover edge.
//
// Why:
//
//   - The union of all patch edges equals the edge set of K_n exactly once
//     each; ranking slots by constrainedness tends to produce few, large,
//     densely packed patches.
//
// Determinism:
//
// All tie-breaks are fixed: slots with equal neighbor counts are ordered
// by (anchor id, direction), candidate nodes with equal valence by lowest
// id. Two runs with the same n produce identical patch sequences.
//
// Heuristic only: no optimality is guaranteed and there is no
// backtracking.
//
// Errors:
//
//   - ErrNegativeOrder: Decompose called with n < 0.
//   - ErrDuplicateEdge, ErrUncoveredEdges: Verify verdicts.
//
// n = 0 and n = 1 degenerate to an empty patch list without error.
package decompose
