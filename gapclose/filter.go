package gapclose

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// bearing returns the planar direction angle of the segment a→b in
// degrees, via atan2(dy, dx). The angle is left raw and signed - no
// normalization to [0,360) - so downstream comparisons use absolute
// differences of raw values, which can overcount near the ±180°
// wraparound (see Close).
//
// ok is false for a zero-length segment, whose direction is undefined.
func bearing(a, b orb.Point) (deg float64, ok bool) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	if dx == 0 && dy == 0 {
		return 0, false
	}

	return math.Atan2(dy, dx) * 180 / math.Pi, true
}

// filterGroups disambiguates each candidate group and applies the angular
// acceptance rule.
//
// Per group (candidates sharing one no-successor target):
//  1. For each candidate compute the bearing of the target line's last
//     segment, of the destination line's first segment, and of the
//     connector itself.
//  2. Keep the single candidate minimizing
//     angle = |bearing(target) − bearing(destination)|.
//  3. Accept it iff angle < threshold, and
//     angleArt = |bearing(connector) − bearing(destination)| < threshold,
//     and the target is not the destination (no self-loops).
//
// A zero-length segment has no bearing; any angle depending on one is
// treated as +Inf, which both loses the in-group minimization and fails
// the threshold. Rejected groups yield nothing for the round and every
// involved line stays in its pool.
//
// Complexity: O(q) over q candidates.
func filterGroups(groups map[string][]candidate, noSucc, noPred Pool, threshold float64) []Connector {
	srcIDs := make([]string, 0, len(groups))
	for srcID := range groups {
		srcIDs = append(srcIDs, srcID)
	}
	sort.Strings(srcIDs)

	var accepted []Connector
	for _, srcID := range srcIDs {
		group := groups[srcID]

		bestIdx := -1
		bestAngle := math.Inf(1)
		bestArt := math.Inf(1)
		for i, c := range group {
			angle, angleArt := candidateAngles(c, noSucc, noPred)
			if angle < bestAngle {
				bestAngle = angle
				bestArt = angleArt
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			continue // every candidate had an undefined bearing
		}

		c := group[bestIdx]
		if bestAngle >= threshold || bestArt >= threshold || c.sourceID == c.destID {
			continue
		}

		accepted = append(accepted, Connector{
			SourceID: c.sourceID,
			DestID:   c.destID,
			Geometry: c.geom,
			Angle:    bestAngle,
			AngleArt: bestArt,
			Name:     fmt.Sprintf("Artificial_%s_%s", c.sourceID, c.destID),
		})
	}

	return accepted
}

// candidateAngles computes the two angle deltas for one candidate:
// target-line vs destination-line, and connector vs destination-line.
// Undefined bearings surface as +Inf deltas.
func candidateAngles(c candidate, noSucc, noPred Pool) (angle, angleArt float64) {
	srcGeom := noSucc[c.sourceID].Geometry
	dstGeom := noPred[c.destID].Geometry

	bSrc, okSrc := bearing(srcGeom[len(srcGeom)-2], srcGeom[len(srcGeom)-1])
	bDst, okDst := bearing(dstGeom[0], dstGeom[1])
	bArt, okArt := bearing(c.geom[0], c.geom[1])

	angle = math.Inf(1)
	if okSrc && okDst {
		angle = math.Abs(bSrc - bDst)
	}
	angleArt = math.Inf(1)
	if okArt && okDst {
		angleArt = math.Abs(bArt - bDst)
	}

	return angle, angleArt
}
