package gapclose

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// Endpoints partitions lines into the two dangling-endpoint pools.
//
// A line lands in the no-successor pool when its end point equals no
// line's start point, and in the no-predecessor pool when its start point
// equals no line's end point. Equality is exact coordinate equality over
// the full collection (a line's own endpoints count), with no snapping
// tolerance. A fully isolated line legally appears in both pools; the
// angular filter later rejects it from connecting to itself.
//
// The membership test runs over an endpoint registry (coordinate → count)
// rather than pairwise scans, so the split is O(n) over n lines.
//
// Errors: ErrEmptyID, ErrDuplicateID, ErrShortGeometry - the whole run
// aborts before any pool is built.
func Endpoints(lines []Line) (noSucc, noPred Pool, err error) {
	if err = validateLines(lines); err != nil {
		return nil, nil, err
	}

	// Endpoint registry: how many lines start / end at each coordinate.
	starts := make(map[orb.Point]int, len(lines))
	ends := make(map[orb.Point]int, len(lines))
	for _, l := range lines {
		starts[l.Start()]++
		ends[l.End()]++
	}

	noSucc = make(Pool)
	noPred = make(Pool)
	for _, l := range lines {
		if starts[l.End()] == 0 {
			noSucc[l.ID] = l
		}
		if ends[l.Start()] == 0 {
			noPred[l.ID] = l
		}
	}

	return noSucc, noPred, nil
}

// validateLines enforces the input contract: non-empty unique IDs and
// geometries of at least two coordinates.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness check.
func validateLines(lines []Line) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.ID == "" {
			return ErrEmptyID
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = struct{}{}
		if len(l.Geometry) < 2 {
			return fmt.Errorf("%w: line %q has %d", ErrShortGeometry, l.ID, len(l.Geometry))
		}
	}

	return nil
}

// sortedIDs returns the pool's keys in ascending order. Map iteration
// order is randomized; every per-round walk goes through this so that
// identical inputs produce identical results.
func sortedIDs(p Pool) []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
