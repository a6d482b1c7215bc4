package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranjeethmahankali/cheers/lattice"
)

// triangle builds the canonical three-node patch: 0-1 along Right, then 2
// above the shared edge, face-closed against both.
func triangle(t *testing.T) *lattice.Mesh {
	t.Helper()
	m := lattice.New(4)
	m.Insert(0, lattice.Right, 1)
	m.Insert(0, lattice.TopRight, 2)
	m.Validate()

	return m
}

// TestNewMesh verifies an empty mesh has capacity but no present nodes.
func TestNewMesh(t *testing.T) {
	m := lattice.New(5)
	require.Equal(t, 5, m.Len())
	for id := 0; id < 5; id++ {
		require.False(t, m.Contains(id), "node %d should be absent", id)
		require.Empty(t, m.Neighbors(id))
	}
	require.Empty(t, m.Edges())

	require.Equal(t, 0, lattice.New(-3).Len(), "negative capacity clamps to zero")
}

// TestInsertLinksSymmetrically verifies a single insertion creates the
// reciprocal pair of links and nothing else.
func TestInsertLinksSymmetrically(t *testing.T) {
	m := lattice.New(3)
	m.Insert(0, lattice.Right, 1)

	nb, ok := m.Neighbor(0, lattice.Right)
	require.True(t, ok)
	require.Equal(t, 1, nb)

	nb, ok = m.Neighbor(1, lattice.Left)
	require.True(t, ok)
	require.Equal(t, 0, nb)

	require.True(t, m.Contains(0))
	require.True(t, m.Contains(1))
	require.False(t, m.Contains(2))
	m.Validate()
}

// TestInsertSelfIsNoop verifies inserting a node onto itself is ignored.
func TestInsertSelfIsNoop(t *testing.T) {
	m := lattice.New(2)
	m.Insert(0, lattice.Right, 0)
	require.False(t, m.Contains(0))
}

// TestInsertClosesFace verifies the orbit walk links the new node to
// every present node sharing a face with the new edge.
func TestInsertClosesFace(t *testing.T) {
	m := triangle(t)

	// 2 must be linked to both 0 and 1, not just the anchor.
	require.Equal(t, []int{0, 1}, m.Neighbors(2))
	require.Equal(t, []int{1, 2}, m.Neighbors(0))
	require.Equal(t, []int{2, 0}, m.Neighbors(1))
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, m.Edges())
}

// TestInsertEvictsOccupant verifies insert-over-occupied removes the old
// neighbor from the entire mesh, not just the contested slot.
func TestInsertEvictsOccupant(t *testing.T) {
	m := triangle(t)

	// Right slot of 0 holds 1; inserting 3 there must fully evict 1.
	m.Insert(0, lattice.Right, 3)
	m.Validate()

	require.False(t, m.Contains(1), "evicted node should be absent")
	require.Empty(t, m.Neighbors(1))

	// The survivors form a triangle again: 0-3, 0-2 and the face-closed 2-3.
	require.Equal(t, [][2]int{{0, 2}, {0, 3}, {2, 3}}, m.Edges())
}

// TestEdgesCanonical verifies the redundant reverse insertion of an
// existing link still yields exactly one canonical pair.
func TestEdgesCanonical(t *testing.T) {
	m := lattice.New(2)
	m.Insert(0, lattice.Right, 1)
	m.Insert(1, lattice.Left, 0)

	require.Equal(t, [][2]int{{0, 1}}, m.Edges())
	m.Validate()
}

// TestRemove verifies removal severs all links symmetrically and leaves
// former neighbors present.
func TestRemove(t *testing.T) {
	m := triangle(t)

	m.Remove(2)
	m.Validate()

	require.False(t, m.Contains(2))
	require.Equal(t, [][2]int{{0, 1}}, m.Edges())
	require.True(t, m.Contains(0))
	require.True(t, m.Contains(1))

	// Removing an absent node is a no-op.
	m.Remove(2)
	m.Remove(-1)
	m.Remove(99)
	require.Equal(t, [][2]int{{0, 1}}, m.Edges())
}

// TestClear verifies Clear drops links but keeps capacity.
func TestClear(t *testing.T) {
	m := triangle(t)
	m.Clear()

	require.Equal(t, 4, m.Len())
	require.Empty(t, m.Edges())
	for id := 0; id < m.Len(); id++ {
		require.False(t, m.Contains(id))
	}
}

// TestClone verifies the copy is deep: mutating the clone leaves the
// original untouched.
func TestClone(t *testing.T) {
	m := triangle(t)
	c := m.Clone()

	c.Remove(2)
	require.Equal(t, [][2]int{{0, 1}}, c.Edges())
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, m.Edges())
}

// TestDisjointPatches verifies one mesh can hold several components at
// once and reports edges across all of them.
func TestDisjointPatches(t *testing.T) {
	m := lattice.New(6)
	m.Insert(0, lattice.Right, 1)
	m.Insert(4, lattice.TopLeft, 5)
	m.Validate()

	require.Equal(t, [][2]int{{0, 1}, {4, 5}}, m.Edges())
	require.False(t, m.Contains(2))
	require.False(t, m.Contains(3))
}

// TestInsertGrowsHexagon grows a full six-ring around a hub and checks
// the hub reaches maximum valence with all faces closed.
func TestInsertGrowsHexagon(t *testing.T) {
	m := lattice.New(7)
	m.Insert(0, lattice.Right, 1)
	for d := lattice.TopRight; d <= lattice.BottomRight; d++ {
		m.Insert(0, d, int(d)+1)
		m.Validate()
	}

	require.Len(t, m.Neighbors(0), lattice.NumDirections)
	// Consecutive ring nodes share a face with the hub, so they are linked.
	for d := lattice.Direction(0); d < lattice.NumDirections; d++ {
		a := int(d) + 1
		b := int(d.RotateCW()) + 1
		require.Contains(t, m.Neighbors(a), b, "ring nodes %d and %d should be linked", a, b)
	}
}
