package decompose

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/ranjeethmahankali/cheers/kgraph"
	"github.com/ranjeethmahankali/cheers/lattice"
)

// decomposer carries the shared state of one run: the shrinking graph, the
// patch under construction, and reusable scratch buffers.
type decomposer struct {
	graph *kgraph.Graph
	patch *lattice.Mesh
	opts  Options

	// scratch, reused across grow steps to avoid reallocation
	slots []lattice.Slot
	cands *bitset.BitSet
}

// Decompose splits the edge set of K_n into triangulated hex patches.
// Every edge of the complete graph appears in exactly one emitted patch.
// Returns ErrNegativeOrder for n < 0; n of 0 or 1 yields an empty result.
//
// The loop terminates for every n: each grow step consumes at least one
// graph edge, and each seeding consumes one, so the edge supply strictly
// shrinks. Complexity: O(n³) worst case (n placements per patch, O(n)
// slot scan each).
func Decompose(n int, opts ...Option) (*Result, error) {
	// 1. Validate input and apply options.
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Set up the run: one graph, one reusable patch mesh.
	d := &decomposer{
		graph: kgraph.NewComplete(n),
		patch: lattice.New(n),
		opts:  o,
	}
	res := &Result{Order: n}

	// 3. Seed, grow until sealed, emit; stop when no edges remain.
	for {
		u, v, ok := d.seed()
		if !ok {
			break
		}
		d.patch.Clear()
		d.patch.Insert(u, lattice.Right, v)
		d.graph.RemoveEdge(u, v)

		for d.grow() {
		}

		res.Patches = append(res.Patches, d.patch.Clone())
	}

	return res, nil
}

// seed picks the starting edge of a new patch: u is the remaining node
// with the highest valence, v is u's remaining neighbor with the highest
// valence (ties: lowest id). On an untouched K_n this picks (0, 1).
// ok is false when the graph has no edges left.
func (d *decomposer) seed() (u, v int, ok bool) {
	u, best := -1, 0
	for i := 0; i < d.graph.NumNodes(); i++ {
		if val := d.graph.Valence(i); val > best {
			u, best = i, val
		}
	}
	if u < 0 {
		return 0, 0, false
	}

	d.cands = d.graph.FindCandidates([]int{u}, d.cands)
	v, best = -1, 0
	for j, found := d.cands.NextSet(0); found; j, found = d.cands.NextSet(j + 1) {
		if val := d.graph.Valence(int(j)); val > best {
			v, best = int(j), val
		}
	}
	if v < 0 {
		// Positive valence for u guarantees a neighbor; reaching this
		// would mean the adjacency rows lost symmetry.
		return 0, 0, false
	}

	return u, v, true
}

// grow performs one growing step: rank the open boundary slots by how many
// links filling them would create (descending; ties by anchor id, then
// direction), and fill the first slot for which the graph still has a
// usable node: the highest-valence node connected to all of the slot's
// mesh neighbors and not yet part of the patch. Every consumed mesh link
// is removed from the graph. Reports false when no slot can be filled,
// sealing the patch.
func (d *decomposer) grow() bool {
	// 1. Enumerate and rank candidate slots.
	d.slots = d.patch.EmptySlots(d.slots)
	sort.SliceStable(d.slots, func(i, j int) bool {
		si, sj := d.slots[i], d.slots[j]
		if len(si.Neighbors) != len(sj.Neighbors) {
			return len(si.Neighbors) > len(sj.Neighbors)
		}
		if si.Anchor != sj.Anchor {
			return si.Anchor < sj.Anchor
		}
		return si.Dir < sj.Dir
	})

	// 2. First fillable slot wins.
	for _, s := range d.slots {
		d.cands = d.graph.FindCandidates(s.Neighbors, d.cands)
		pick, best := -1, -1
		for j, found := d.cands.NextSet(0); found; j, found = d.cands.NextSet(j + 1) {
			id := int(j)
			if d.patch.Contains(id) {
				continue
			}
			if val := d.graph.Valence(id); val > best {
				pick, best = id, val
			}
		}
		if pick < 0 {
			continue
		}

		// 3. Commit: place the node and consume its new links.
		d.patch.Insert(s.Anchor, s.Dir, pick)
		for _, nb := range s.Neighbors {
			d.graph.RemoveEdge(pick, nb)
		}
		if d.opts.Validate {
			d.patch.Validate()
		}

		return true
	}

	return false
}
