package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranjeethmahankali/cheers/decompose"
	"github.com/ranjeethmahankali/cheers/lattice"
)

// edgePatch builds a single-edge patch a-b in a capacity-n mesh.
func edgePatch(n, a, b int) *lattice.Mesh {
	m := lattice.New(n)
	m.Insert(a, lattice.Right, b)

	return m
}

// TestVerifyExactCover verifies a hand-built exact cover of K_3 passes.
func TestVerifyExactCover(t *testing.T) {
	tri := lattice.New(3)
	tri.Insert(0, lattice.Right, 1)
	tri.Insert(0, lattice.TopRight, 2)

	require.NoError(t, decompose.Verify(3, []*lattice.Mesh{tri}))
}

// TestVerifyDuplicate verifies an edge covered by two patches is rejected.
func TestVerifyDuplicate(t *testing.T) {
	patches := []*lattice.Mesh{edgePatch(2, 0, 1), edgePatch(2, 0, 1)}
	err := decompose.Verify(2, patches)
	require.ErrorIs(t, err, decompose.ErrDuplicateEdge)
}

// TestVerifyUncovered verifies leftover edges are rejected.
func TestVerifyUncovered(t *testing.T) {
	err := decompose.Verify(3, []*lattice.Mesh{edgePatch(3, 0, 1)})
	require.ErrorIs(t, err, decompose.ErrUncoveredEdges)

	err = decompose.Verify(3, nil)
	require.ErrorIs(t, err, decompose.ErrUncoveredEdges)
}

// TestVerifyForeignEdge verifies an edge outside K_n is reported rather
// than silently dropped.
func TestVerifyForeignEdge(t *testing.T) {
	err := decompose.Verify(2, []*lattice.Mesh{edgePatch(4, 2, 3)})
	require.ErrorIs(t, err, decompose.ErrDuplicateEdge)
}

// TestVerifyEmptyOrders verifies the degenerate graphs verify trivially.
func TestVerifyEmptyOrders(t *testing.T) {
	require.NoError(t, decompose.Verify(0, nil))
	require.NoError(t, decompose.Verify(1, nil))
}
