// Package cheers decomposes the edge set of a complete graph into
// disjoint patches of a triangulated hexagonal lattice.
//
// What lives where:
//
//	lattice/   — the triangulated mesh: six-direction cyclic arithmetic,
//	             face-closing insertion, boundary-slot enumeration,
//	             invariant validation, ASCII rendering
//	kgraph/    — the removable complete graph K_n on bitset adjacency rows
//	decompose/ — the greedy decomposition loop and the verification oracle
//	cmd/cheers — CLI: pick n, print the patches, verify the cover
//
// The hexagonal grids are stored in a coordinate system where the axes
// are squished together to 60 degrees:
//
//	       (0, 1) * ------- * (1, 1)
//	             / \       / \
//	            /   \     /   \
//	           /     \   /     \
//	          /       \ /       \
//	  (0, 0) * ------- * ------- * (2, 0)
//	        / \     (1, 0)      /
//	       /   \     /   \     /
//	      /     \   /     \   /
//	     /       \ /       \ /
//	    * ------- * ------- *
//	(0, -1)     (1, -1)     (2, -1)
//
// A hexagonal grid and a rectangular grid are topologically equivalent;
// the only difference is that the (-1, 1) and (1, -1) diagonals are
// neighbors of the middle point. Points are therefore stored in a
// rectangular arena and connectivity is inferred from the indices.
//
// Quick start:
//
//	res, err := decompose.Decompose(12)
//	if err != nil { ... }
//	for _, patch := range res.Patches {
//		fmt.Println(patch)
//	}
//	if err := decompose.Verify(12, res.Patches); err != nil { ... }
package cheers
