package kgraph

import (
	"fmt"
	"strings"
)

// String renders the remaining edges as a lower-triangular adjacency
// matrix with row labels on the left and column digits printed vertically
// underneath. An 'x' marks a surviving edge. Complexity: O(n²).
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph K_%d (%d edges remaining):\n", g.n, g.EdgeCount())

	// Width of the widest node label.
	maxDigits := 1
	if g.n > 1 {
		maxDigits = len(fmt.Sprintf("%d", g.n-1))
	}

	// Top border.
	sb.WriteString("┌" + strings.Repeat("─", maxDigits) + "┬")
	sb.WriteString(strings.Repeat("─", g.n))
	sb.WriteString("┐\n")

	// One row per node, lower triangle only.
	for i := 0; i < g.n; i++ {
		fmt.Fprintf(&sb, "│%*d│", maxDigits, i)
		for j := 0; j <= i; j++ {
			switch {
			case i == j:
				sb.WriteByte(' ')
			case g.HasEdge(i, j):
				sb.WriteByte('x')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strings.Repeat(" ", g.n-i-1))
		sb.WriteString("│\n")
	}

	// Separator between matrix and column labels.
	sb.WriteString("└" + strings.Repeat("─", maxDigits) + "┼")
	sb.WriteString(strings.Repeat("─", g.n))
	sb.WriteString("┤\n")

	// Column labels, one digit per line, zero-padded.
	for pos := 0; pos < maxDigits; pos++ {
		sb.WriteString(strings.Repeat(" ", maxDigits+1) + "│")
		for j := 0; j < g.n; j++ {
			label := fmt.Sprintf("%0*d", maxDigits, j)
			sb.WriteByte(label[pos])
		}
		sb.WriteString("│\n")
	}

	// Bottom border.
	sb.WriteString(strings.Repeat(" ", maxDigits+1) + "└")
	sb.WriteString(strings.Repeat("─", g.n))
	sb.WriteString("┘\n")

	return sb.String()
}
