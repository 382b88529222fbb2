package gapclose

import (
	"sort"

	"github.com/paulmach/orb"
)

// candidate is a proposed connector inside a single round. It lives only
// between synthesis and filtering; accepted candidates become Connectors.
type candidate struct {
	sourceID string
	destID   string
	geom     orb.LineString // 2-point segment, source end → destination start
}

// synthesize turns the rank-0 matches into connector candidates, grouped
// by their shared no-successor target. Each group holds every
// no-predecessor line that elected the same target, ordered by
// destination ID.
//
// Complexity: O(q log q) for q matches (dominated by the ordering walk).
func synthesize(matches map[string]string, noSucc, noPred Pool) map[string][]candidate {
	destIDs := make([]string, 0, len(matches))
	for destID := range matches {
		destIDs = append(destIDs, destID)
	}
	sort.Strings(destIDs)

	groups := make(map[string][]candidate)
	for _, destID := range destIDs {
		srcID := matches[destID]
		src := noSucc[srcID]
		dst := noPred[destID]
		groups[srcID] = append(groups[srcID], candidate{
			sourceID: srcID,
			destID:   destID,
			geom:     orb.LineString{src.End(), dst.Start()},
		})
	}

	return groups
}
