// Package kgraph provides a complete graph K_n with removable edges,
// backed by one adjacency bit-vector per node.
//
// What:
//
//   - NewComplete(n) builds the graph where every unordered pair of
//     distinct nodes is connected.
//   - RemoveEdge consumes edges symmetrically and idempotently; the graph
//     only ever shrinks.
//   - FindCandidates intersects the adjacency rows of a required node set,
//     answering "which nodes are still connected to every one of these".
//
// Why:
//
//   - Greedy edge-consuming searches: valence and candidate intersection
//     are the two queries a placement heuristic needs, and both reduce to
//     word-parallel bitset operations.
//
// Complexity:
//
//   - NewComplete:     O(n²/word).
//   - HasEdge/Remove:  O(1).
//   - Valence:         O(n/word).
//   - EdgeCount/IsEmpty: O(n²/word).
//   - FindCandidates:  O(|required| · n/word).
//
// Errors:
//
// All operations are total: out-of-range or self pairs are ignored rather
// than rejected, so the package defines no error values.
package kgraph
