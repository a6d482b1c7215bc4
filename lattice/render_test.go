package lattice_test

import (
	"strings"
	"testing"

	"github.com/ranjeethmahankali/cheers/lattice"
)

// TestStringEmpty verifies a mesh without present nodes renders to
// nothing.
func TestStringEmpty(t *testing.T) {
	if got := lattice.New(4).String(); got != "" {
		t.Errorf("empty mesh rendered %q; want empty string", got)
	}
}

// TestStringTriangle verifies the triangle renders every node id and all
// three link glyphs.
func TestStringTriangle(t *testing.T) {
	m := lattice.New(3)
	m.Insert(0, lattice.Right, 1)
	m.Insert(0, lattice.TopRight, 2)

	art := m.String()
	for _, want := range []string{"0", "1", "2", "-", "/", "\\"} {
		if !strings.Contains(art, want) {
			t.Errorf("rendering missing %q:\n%s", want, art)
		}
	}
	// Node 2 sits on the row above the 0-1 edge.
	lines := strings.Split(art, "\n")
	row2, row01 := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "2") {
			row2 = i
		}
		if strings.Contains(line, "0") && strings.Contains(line, "1") {
			row01 = i
		}
	}
	if row2 < 0 || row01 < 0 || row2 >= row01 {
		t.Errorf("expected node 2 above the 0-1 row:\n%s", art)
	}
}

// TestStringComponents verifies disjoint patches render as separate
// blocks.
func TestStringComponents(t *testing.T) {
	m := lattice.New(4)
	m.Insert(0, lattice.Right, 1)
	m.Insert(2, lattice.Right, 3)

	art := m.String()
	if got := strings.Count(art, "-"); got != 2 {
		t.Errorf("expected two Right links rendered, got %d:\n%s", got, art)
	}
	for _, want := range []string{"0", "1", "2", "3"} {
		if !strings.Contains(art, want) {
			t.Errorf("rendering missing %q:\n%s", want, art)
		}
	}
}
