package lattice

import (
	"fmt"
	"sort"
)

// noneID marks an empty neighbor slot. Any non-negative value is a node id.
const noneID int32 = -1

// Mesh is a triangulated hex lattice over a fixed-capacity arena of node
// records. Node ids are dense indexes 0..Len()-1 into the arena; a node is
// present iff it has at least one neighbor link. A Mesh may hold several
// disjoint connected patches at once.
//
// All "ownership" is by index: records never reference each other through
// pointers, so the structure is trivially copyable with Clone.
type Mesh struct {
	conn [][NumDirections]int32
}

// New returns an empty Mesh with the given number of node slots and no
// links. Negative capacity is treated as zero.
// Complexity: O(capacity).
func New(capacity int) *Mesh {
	if capacity < 0 {
		capacity = 0
	}
	m := &Mesh{conn: make([][NumDirections]int32, capacity)}
	m.Clear()

	return m
}

// Len reports the arena capacity (number of node slots, present or not).
// Complexity: O(1).
func (m *Mesh) Len() int {
	return len(m.conn)
}

// Clear drops every link but keeps the capacity, so a fresh patch can be
// grown without reallocating.
// Complexity: O(capacity).
func (m *Mesh) Clear() {
	for i := range m.conn {
		for d := range m.conn[i] {
			m.conn[i][d] = noneID
		}
	}
}

// Contains reports whether node id is present (has at least one link).
// Out-of-range ids are simply absent. Complexity: O(1).
func (m *Mesh) Contains(id int) bool {
	if id < 0 || id >= len(m.conn) {
		return false
	}
	for _, nb := range m.conn[id] {
		if nb != noneID {
			return true
		}
	}

	return false
}

// Neighbor returns the node linked to id in direction d, if any.
// Complexity: O(1).
func (m *Mesh) Neighbor(id int, d Direction) (int, bool) {
	if id < 0 || id >= len(m.conn) {
		return 0, false
	}
	if nb := m.conn[id][d]; nb != noneID {
		return int(nb), true
	}

	return 0, false
}

// Neighbors returns the currently linked neighbors of id in direction
// order (Right first). The slice is re-derived from the record on every
// call. Complexity: O(1) (bounded by the six slots).
func (m *Mesh) Neighbors(id int) []int {
	if id < 0 || id >= len(m.conn) {
		return nil
	}
	out := make([]int, 0, NumDirections)
	for _, nb := range m.conn[id] {
		if nb != noneID {
			out = append(out, int(nb))
		}
	}

	return out
}

// Edges returns every undirected link exactly once as a canonical
// (min, max) pair, ordered ascending. Redundant directional storage of the
// same pair collapses to one entry.
// Complexity: O(n log n) for the final ordering.
func (m *Mesh) Edges() [][2]int {
	var out [][2]int
	for a := range m.conn {
		for _, nb := range m.conn[a] {
			if nb == noneID {
				continue
			}
			b := int(nb)
			if a < b {
				out = append(out, [2]int{a, b})
			}
		}
	}
	// 1. Canonical order.
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	// 2. Collapse duplicates (a pair may be stored under several directions).
	dedup := out[:0]
	for i, e := range out {
		if i == 0 || e != out[i-1] {
			dedup = append(dedup, e)
		}
	}

	return dedup
}

// link records the symmetric connection from↔to along direction d.
func (m *Mesh) link(from int, d Direction, to int) {
	m.conn[from][d] = int32(to)
	m.conn[to][d.Opposite()] = int32(from)
}

// Remove severs every link touching id, both in id's record and in each
// partner's reciprocal slot. The node becomes absent; its former neighbors
// stay present. No-op if id was already absent.
// Complexity: O(1) (six slots).
func (m *Mesh) Remove(id int) {
	if id < 0 || id >= len(m.conn) {
		return
	}
	for d := Direction(0); d < NumDirections; d++ {
		nb := m.conn[id][d]
		if nb == noneID {
			continue
		}
		m.conn[nb][d.Opposite()] = noneID
		m.conn[id][d] = noneID
	}
}

// Insert attaches newID to anchor along direction d and re-triangulates
// the neighborhood:
//
//  1. A prior occupant of anchor's d slot, or of newID's opposite slot, is
//     evicted via Remove; Insert supersedes, it does not reject.
//  2. anchor↔newID are linked.
//  3. Two face-closing orbit walks (one rotating counter-clockwise from
//     anchor, one clockwise) follow existing links around newID's position
//     and link every present node that shares a face with the new edge, so
//     every closed face stays a triangle.
//
// Each walk stops at an open boundary, or as soon as it wraps around a
// fully enclosed position (the ring of six neighbors closes).
//
// No-op when anchor == newID. Both ids must be valid arena indexes.
// Complexity: O(1); each walk takes at most six steps (valence bound),
// and exceeding the bound panics, since it means the topology is corrupt.
func (m *Mesh) Insert(anchor int, d Direction, newID int) {
	if anchor == newID {
		return
	}
	// 1. Eviction semantics: clear both target slots completely.
	if prev := m.conn[anchor][d]; prev != noneID {
		m.Remove(int(prev))
	}
	if prev := m.conn[newID][d.Opposite()]; prev != noneID {
		m.Remove(int(prev))
	}
	// 2. The new edge itself.
	m.link(anchor, d, newID)
	// 3. Orbit counter-clockwise, linking co-face nodes to newID.
	id, wd := anchor, d.RotateCCW()
	for steps := 0; ; steps++ {
		next, ok := m.Neighbor(id, wd)
		if !ok || next == newID {
			break
		}
		if steps >= NumDirections {
			panic(fmt.Sprintf("lattice: orbit around node %d from %d/%s did not terminate", newID, anchor, d))
		}
		wd = wd.Opposite().RotateCCW() // direction from next back to newID's position
		if m.conn[next][wd] == int32(newID) {
			break // ring around newID closed: the walk has wrapped
		}
		m.link(next, wd, newID)
		wd = wd.RotateCCW()
		id = next
	}
	// 4. Orbit clockwise for the other side of the new edge.
	id, wd = anchor, d.RotateCW()
	for steps := 0; ; steps++ {
		next, ok := m.Neighbor(id, wd)
		if !ok || next == newID {
			break
		}
		if steps >= NumDirections {
			panic(fmt.Sprintf("lattice: orbit around node %d from %d/%s did not terminate", newID, anchor, d))
		}
		wd = wd.Opposite().RotateCW()
		if m.conn[next][wd] == int32(newID) {
			break
		}
		m.link(next, wd, newID)
		wd = wd.RotateCW()
		id = next
	}
}

// Clone returns a deep copy of the mesh, detached from further mutation of
// the receiver. Complexity: O(capacity).
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{conn: make([][NumDirections]int32, len(m.conn))}
	copy(c.conn, m.conn)

	return c
}
