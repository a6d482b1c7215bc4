package lattice

import "sort"

// Slot describes one open boundary position of a mesh component: filling
// it with Insert(Anchor, Dir, newID) would link newID to exactly the nodes
// in Neighbors (Anchor first, then the co-face chain in orbit order).
type Slot struct {
	// Anchor is the present node the position was discovered from.
	Anchor int
	// Dir is the open direction on Anchor pointing at the position.
	Dir Direction
	// Neighbors lists the up-to-six present nodes an insertion here would
	// become linked to.
	Neighbors []int
}

// point is a squished-axis lattice coordinate, used to identify boundary
// positions independently of which anchor sees them.
type point struct{ x, y int }

// EmptySlots reports every open boundary position of every connected
// component exactly once, annotated with the present nodes a new node
// placed there would link to. Positions are discovered by an id-ascending
// sweep, so two calls on an unchanged mesh return identical slices.
//
// buf is caller-owned scratch: pass the previous result to reuse its
// backing array across iterations.
//
// Complexity: O(boundary length) per component, O(n) total.
func (m *Mesh) EmptySlots(buf []Slot) []Slot {
	slots := buf[:0]
	n := len(m.conn)
	visited := make([]bool, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		if !m.Contains(start) {
			continue
		}

		// 1. Flood-fill the component, assigning a coordinate per node.
		//    Same discovery rules as the renderer: follow the six offsets.
		coords := map[int]point{}
		comp := []int{}
		type frame struct {
			id   int
			x, y int
		}
		stack := []frame{{start, 0, 0}}
		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, done := coords[fr.id]; done {
				continue
			}
			coords[fr.id] = point{fr.x, fr.y}
			comp = append(comp, fr.id)
			for d := Direction(0); d < NumDirections; d++ {
				nb, ok := m.Neighbor(fr.id, d)
				if !ok || visited[nb] {
					continue
				}
				visited[nb] = true
				dx, dy := d.Offset()
				stack = append(stack, frame{nb, fr.x + dx, fr.y + dy})
			}
		}
		sort.Ints(comp)

		// 2. Sweep the component's nodes in ascending id order and report
		//    each distinct open position once, keyed by its coordinate.
		seen := make(map[point]bool, 2*len(comp))
		for _, id := range comp {
			at := coords[id]
			for d := Direction(0); d < NumDirections; d++ {
				if m.conn[id][d] != noneID {
					continue
				}
				dx, dy := d.Offset()
				pos := point{at.x + dx, at.y + dy}
				if seen[pos] {
					continue
				}
				seen[pos] = true
				slots = append(slots, Slot{
					Anchor:    id,
					Dir:       d,
					Neighbors: m.orbitNeighbors(id, d),
				})
			}
		}
	}

	return slots
}

// orbitNeighbors replays Insert's two face-closing walks read-only and
// collects the nodes an insertion at (anchor, d) would link: anchor first,
// then the counter-clockwise chain, then the clockwise chain. A walk stops
// at an open boundary, or as soon as it wraps onto an already collected
// node (the position is enclosed by a full ring). Each call returns a
// fresh slice, since every Slot owns its Neighbors independently.
// Complexity: O(1), at most six nodes collected.
func (m *Mesh) orbitNeighbors(anchor int, d Direction) []int {
	out := append(make([]int, 0, NumDirections), anchor)

	id, wd := anchor, d.RotateCCW()
	for len(out) < NumDirections {
		next, ok := m.Neighbor(id, wd)
		if !ok || containsID(out, next) {
			break
		}
		wd = wd.Opposite().RotateCCW()
		out = append(out, next)
		wd = wd.RotateCCW()
		id = next
	}

	id, wd = anchor, d.RotateCW()
	for len(out) < NumDirections {
		next, ok := m.Neighbor(id, wd)
		if !ok || containsID(out, next) {
			break
		}
		wd = wd.Opposite().RotateCW()
		out = append(out, next)
		wd = wd.RotateCW()
		id = next
	}

	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
