package lattice

import (
	"sort"
	"strconv"
	"strings"
)

// placed pairs a node id with its assigned lattice coordinate during
// rendering.
type placed struct {
	x, y int
	id   int
}

// byTopLeft orders nodes row by row from the top: higher y first, then by
// x+y ascending within a row, then by id for a total deterministic order.
func byTopLeft(nodes []placed) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.y != b.y {
			return a.y > b.y
		}
		if a.x+a.y != b.x+b.y {
			return a.x+a.y < b.x+b.y
		}
		return a.id < b.id
	}
}

// String renders the mesh as ASCII art, one block per connected component:
// node ids laid out on the hex grid, "-" for Right links and "/ \" for the
// two downward links. Returns "" for a mesh with no present nodes.
// Complexity: O(n log n).
func (m *Mesh) String() string {
	n := len(m.conn)
	coords := make([]point, n)
	hasCoord := make([]bool, n)
	visited := make([]bool, n)

	// 1. Assign coordinates to all present nodes via flood fill.
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		if !m.Contains(start) {
			continue
		}
		type frame struct {
			id   int
			x, y int
		}
		stack := []frame{{start, 0, 0}}
		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if hasCoord[fr.id] {
				continue
			}
			coords[fr.id] = point{fr.x, fr.y}
			hasCoord[fr.id] = true
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
	}

	// 2. Collect placed nodes in top-left order; components are then
	//    emitted in the order of their top-left node.
	all := make([]placed, 0, n)
	for id := 0; id < n; id++ {
		if hasCoord[id] {
			all = append(all, placed{coords[id].x, coords[id].y, id})
		}
	}
	sort.SliceStable(all, byTopLeft(all))

	for i := range visited {
		visited[i] = false
	}

	var sb strings.Builder
	for _, top := range all {
		if visited[top.id] {
			continue
		}
		visited[top.id] = true
		sb.WriteByte('\n')

		// 3. Flood-fill this component and collect its nodes by row.
		comp := []placed{}
		stack := []int{top.id}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, placed{coords[id].x, coords[id].y, id})
			for d := Direction(0); d < NumDirections; d++ {
				nb, ok := m.Neighbor(id, d)
				if !ok || visited[nb] {
					continue
				}
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
		sort.SliceStable(comp, byTopLeft(comp))

		// 4. Left margin: the smallest screen column any node occupies.
		xmin := comp[0].x*4 + 2*comp[0].y - 1
		for _, c := range comp[1:] {
			if v := c.x*4 + 2*c.y - 1; v < xmin {
				xmin = v
			}
		}

		// 5. Emit rows: a node line with Right links, then a down-link line.
		for i := 0; i < len(comp); {
			j := i
			for j < len(comp) && comp[j].y == comp[i].y {
				j++
			}
			row := comp[i:j]

			xoff := 0
			for _, c := range row {
				x := c.x*4 + 2*c.y - xmin
				for ; xoff < x; xoff++ {
					sb.WriteByte(' ')
				}
				sb.WriteString(center3(strconv.Itoa(c.id)))
				if _, ok := m.Neighbor(c.id, Right); ok {
					sb.WriteByte('-')
				} else {
					sb.WriteByte(' ')
				}
				xoff = x + 4
			}
			sb.WriteByte('\n')

			xoff = 0
			for _, c := range row {
				x := c.x*4 + 2*c.y - xmin
				for ; xoff < x; xoff++ {
					sb.WriteByte(' ')
				}
				if _, ok := m.Neighbor(c.id, BottomLeft); ok {
					sb.WriteByte('/')
				} else {
					sb.WriteByte(' ')
				}
				sb.WriteByte(' ')
				if _, ok := m.Neighbor(c.id, BottomRight); ok {
					sb.WriteByte('\\')
				} else {
					sb.WriteByte(' ')
				}
				sb.WriteByte(' ')
				xoff = x + 4
			}
			sb.WriteByte('\n')

			i = j
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// center3 centers s in a 3-column cell, spilling right for odd padding.
// Wider ids keep their full width at the cost of alignment.
func center3(s string) string {
	pad := 3 - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
