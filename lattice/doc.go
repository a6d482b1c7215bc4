// Package lattice implements an incrementally maintained triangulated
// hexagonal mesh over a dense arena of node slots.
//
// What:
//
//   - Direction: the six cyclic neighbor directions of a hex lattice with
//     constant-time Opposite/RotateCW/RotateCCW arithmetic and fixed 2D
//     offsets in the squished-axis coordinate system.
//   - Mesh: capacity-fixed arena of node records, each holding up to six
//     directional neighbor links. Insert closes every face it touches, so
//     the structure stays a valid triangulation after every mutation.
//   - EmptySlots enumerates, once per position, every open boundary slot
//     where a new node could attach, together with the nodes it would link.
//   - Validate asserts the three structural invariants (link symmetry, no
//     self-loops, triangular closure) and panics with a diagnostic on the
//     first violation.
//
// Why:
//
//   - Growing planar patches node by node: Insert repairs the local
//     topology in O(1), bounded by the six-direction fan-out.
//   - Search heuristics: EmptySlots lets a caller predict how many links a
//     candidate placement would create before committing to it.
//
// Coordinates:
//
// The lattice is stored rectangularly; hex connectivity is inferred from
// the six offsets (1,0),(0,1),(-1,1),(-1,0),(0,-1),(1,-1). The axes are
// squished to 60 degrees, which makes a hex grid and a rectangular grid
// topologically identical.
//
// Complexity:
//
//   - Insert / Remove:  O(1) (at most six links touched per orbit walk).
//   - Neighbors/Edges:  O(n) worst case for Edges, O(1) for Neighbors.
//   - EmptySlots:       O(boundary length) per component, O(n) total.
//   - Validate:         O(n); intended for tests, not the hot path.
//
// Errors:
//
// The package has no recoverable error conditions. A broken invariant means
// the mesh contract was already violated by a bug, so Validate and the
// orbit walks panic with a node/direction diagnostic instead of returning.
package lattice
