package lattice

import "fmt"

// Validate checks the three structural invariants over every present node:
//
//   - symmetry: record[a][d] = b implies record[b][Opposite(d)] = a
//   - no self-loops: record[a][d] != a
//   - triangular closure: two neighbors of a in rotationally adjacent
//     directions must be linked to each other (no open wedge at an
//     interior corner)
//
// Validate panics with a node/direction diagnostic on the first violation
// found; a violation means Insert/Remove has a bug and the mesh contract
// is already void. Intended for tests and debugging, not the hot path.
// Complexity: O(n).
func (m *Mesh) Validate() {
	for id := range m.conn {
		for d := Direction(0); d < NumDirections; d++ {
			nb := m.conn[id][d]
			if nb == noneID {
				continue
			}
			if int(nb) == id {
				panic(fmt.Sprintf("lattice: node %d links to itself via %s", id, d))
			}
			if int(nb) < 0 || int(nb) >= len(m.conn) {
				panic(fmt.Sprintf("lattice: node %d links out of range via %s: %d", id, d, nb))
			}
			if back := m.conn[nb][d.Opposite()]; int(back) != id {
				panic(fmt.Sprintf(
					"lattice: asymmetric link: node %d %s->%d, but node %d %s->%d",
					id, d, nb, nb, d.Opposite(), back))
			}
			// Closure against the clockwise-adjacent neighbor: with
			// b = conn[id][d] and c = conn[id][d.RotateCW()], the face
			// {id, b, c} is a triangle iff c links b via d.RotateCCW().
			c := m.conn[id][d.RotateCW()]
			if c == noneID {
				continue
			}
			if m.conn[c][d.RotateCCW()] != nb {
				panic(fmt.Sprintf(
					"lattice: open wedge at node %d: neighbors %d (%s) and %d (%s) are not linked",
					id, nb, d, c, d.RotateCW()))
			}
		}
	}
}
