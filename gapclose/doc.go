// Package gapclose repairs gaps in a digitized line network by synthesizing
// artificial connector segments between dangling endpoints.
//
// 🚀 What is gapclose?
//
//	A network of line features (road sections, waterway reaches) is
//	topologically continuous when every line's end point coincides with
//	another line's start point. Digitization leaves gaps: lines whose end
//	point matches no start point ("no successor") and lines whose start
//	point matches no end point ("no predecessor"). Close pairs each
//	dangling end with its nearest dangling start and, when the bearings of
//	the two lines and of the connector itself agree within a configurable
//	angle, emits a straight 2-point connector joining them.
//
// The algorithm, round by round:
//
//  1. Endpoints partitions the input into the two dangling pools
//     (exact-coordinate endpoint registry, no snapping tolerance).
//  2. For each no-predecessor start point, a quadtree k-nearest query over
//     the no-successor end points yields up to 3 candidates; only the
//     nearest one proceeds.
//  3. Candidates sharing the same no-successor target form a group; within
//     each group the candidate whose destination bearing best matches the
//     target's own bearing wins.
//  4. The winner is accepted iff both its line-to-line angle and its
//     connector-to-line angle stay under Options.AngleThreshold, and it is
//     not a self-loop.
//  5. Matched lines leave their pools; rounds repeat until a round grows
//     the accumulated connector set by fewer than 5 entries.
//
// Coordinates are treated as planar; distances are Euclidean and bearings
// are atan2 angles in degrees. Bearings are left raw (no [0,360)
// normalization), so angle differences near the ±180° wraparound can
// overcount - a deliberate fidelity choice, see Close.
//
// Entry points: Endpoints for the pool split alone, Close for the full
// iterative repair.
package gapclose
