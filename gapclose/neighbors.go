package gapclose

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// maxNeighbors is how many nearest no-successor endpoints are retrieved
// per query point. Only rank 0 ever feeds the synthesizer; ranks 1 and 2
// are computed and discarded, matching the behavior the algorithm shipped
// with.
const maxNeighbors = 3

// endPointer tags a no-successor line's end point with its owning ID so
// it can live in the quadtree.
type endPointer struct {
	id string
	pt orb.Point
}

// Point implements orb.Pointer.
func (e endPointer) Point() orb.Point { return e.pt }

// endpointIndex is a per-round spatial index over the no-successor end
// points. It is rebuilt from scratch each round: the pools only shrink,
// so each rebuild is cheaper than the last, and build cost is
// O(m log m) for m pool entries.
type endpointIndex struct {
	tree *quadtree.Quadtree
}

// newEndpointIndex builds the index over every end point in the pool.
// The pool must be non-empty.
func newEndpointIndex(noSucc Pool) (*endpointIndex, error) {
	var bound orb.Bound
	first := true
	for _, l := range noSucc {
		if first {
			bound = orb.Bound{Min: l.End(), Max: l.End()}
			first = false
			continue
		}
		bound = bound.Extend(l.End())
	}
	// Pad so a degenerate (single-point) extent still yields a valid tree.
	bound = bound.Pad(1)

	tree := quadtree.New(bound)
	for _, id := range sortedIDs(noSucc) {
		if err := tree.Add(endPointer{id: id, pt: noSucc[id].End()}); err != nil {
			return nil, err
		}
	}

	return &endpointIndex{tree: tree}, nil
}

// kNearest returns the IDs of up to k nearest indexed end points to pt,
// nearest first. Ties break on ascending ID so the ranking is
// deterministic.
func (x *endpointIndex) kNearest(pt orb.Point, k int) []string {
	buf := make([]orb.Pointer, 0, k)
	found := x.tree.KNearest(buf, pt, k)

	ranked := make([]endPointer, 0, len(found))
	for _, p := range found {
		ranked = append(ranked, p.(endPointer))
	}
	sort.Slice(ranked, func(i, j int) bool {
		di := planar.DistanceSquared(ranked[i].pt, pt)
		dj := planar.DistanceSquared(ranked[j].pt, pt)
		if di != dj {
			return di < dj
		}

		return ranked[i].id < ranked[j].id
	})

	ids := make([]string, len(ranked))
	for i, p := range ranked {
		ids[i] = p.id
	}

	return ids
}

// nearestTargets maps every no-predecessor line ID to the ID of the
// no-successor line whose end point lies nearest its start point
// (the rank-0 candidate). Returns an empty map when either pool is empty:
// a round without candidates produces zero connectors and the loop stops.
func nearestTargets(noSucc, noPred Pool) (map[string]string, error) {
	if len(noSucc) == 0 || len(noPred) == 0 {
		return map[string]string{}, nil
	}

	idx, err := newEndpointIndex(noSucc)
	if err != nil {
		return nil, err
	}

	k := maxNeighbors
	if len(noSucc) < k {
		k = len(noSucc)
	}

	out := make(map[string]string, len(noPred))
	for _, id := range sortedIDs(noPred) {
		ranked := idx.kNearest(noPred[id].Start(), k)
		if len(ranked) > 0 {
			out[id] = ranked[0]
		}
	}

	return out, nil
}
