package kgraph

import (
	"github.com/bits-and-blooms/bitset"
)

// Graph is a complete graph on n nodes whose edges can only be removed.
// Each node owns a bit-vector of its remaining neighbors; the relation is
// kept symmetric by construction.
type Graph struct {
	n    int
	conn []*bitset.BitSet
}

// NewComplete returns the complete graph K_n: every unordered pair (i, j),
// i != j, is connected. n <= 0 yields an empty zero-node graph.
// Complexity: O(n²/word).
func NewComplete(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{n: n, conn: make([]*bitset.BitSet, n)}
	for i := 0; i < n; i++ {
		row := bitset.New(uint(n))
		row.FlipRange(0, uint(n))
		row.Clear(uint(i)) // no self-loop
		g.conn[i] = row
	}

	return g
}

// NumNodes reports the graph order n. Complexity: O(1).
func (g *Graph) NumNodes() int {
	return g.n
}

// HasEdge reports whether the edge (i, j) is still present. Out-of-range
// or self pairs are never present. Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	if !g.inRange(i) || !g.inRange(j) || i == j {
		return false
	}

	return g.conn[i].Test(uint(j))
}

// RemoveEdge deletes the edge (i, j) from both adjacency rows. Idempotent,
// symmetric, and a no-op for out-of-range or self pairs.
// Complexity: O(1).
func (g *Graph) RemoveEdge(i, j int) {
	if !g.inRange(i) || !g.inRange(j) || i == j {
		return
	}
	g.conn[i].Clear(uint(j))
	g.conn[j].Clear(uint(i))
}

// EdgeCount reports the number of remaining undirected edges.
// Complexity: O(n²/word).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, row := range g.conn {
		total += int(row.Count())
	}

	return total / 2
}

// IsEmpty reports whether no edges remain. Complexity: O(n²/word).
func (g *Graph) IsEmpty() bool {
	for _, row := range g.conn {
		if !row.None() {
			return false
		}
	}

	return true
}

// Valence reports the remaining degree of node. Out-of-range nodes have
// valence zero. Complexity: O(n/word).
func (g *Graph) Valence(node int) int {
	if !g.inRange(node) {
		return 0
	}

	return int(g.conn[node].Count())
}

// FindCandidates computes the set of nodes still connected to every node
// in required, as the intersection of their adjacency rows. An empty
// required set yields all n nodes. Duplicate or already-consumed ids in
// required are harmless; filtering ids the caller has placed elsewhere is
// the caller's job. out is reused when non-nil and large enough, otherwise
// a fresh bitset is allocated; the (possibly re-allocated) set is
// returned. Complexity: O(|required| · n/word).
func (g *Graph) FindCandidates(required []int, out *bitset.BitSet) *bitset.BitSet {
	if out == nil || out.Len() < uint(g.n) {
		out = bitset.New(uint(g.n))
	}
	out.ClearAll()
	if len(required) == 0 {
		out.FlipRange(0, uint(g.n))
		return out
	}
	// 1. Start from the first required node's neighbors.
	g.conn[required[0]].Copy(out)
	// 2. Intersect with each subsequent row.
	for _, node := range required[1:] {
		out.InPlaceIntersection(g.conn[node])
	}

	return out
}

// Clone returns a deep copy of the graph. Complexity: O(n²/word).
func (g *Graph) Clone() *Graph {
	c := &Graph{n: g.n, conn: make([]*bitset.BitSet, g.n)}
	for i, row := range g.conn {
		c.conn[i] = row.Clone()
	}

	return c
}

func (g *Graph) inRange(i int) bool {
	return i >= 0 && i < g.n
}
