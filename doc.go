// Package linemend repairs digitized line networks whose segments were
// captured with small gaps: it synthesizes artificial connector lines
// between dangling endpoints until the network is topologically
// continuous (or no plausible connection remains).
//
// 🚀 What is linemend?
//
//	A road or waterway network digitized from survey data rarely connects
//	perfectly: a section's end point often lands a sliver away from the
//	next section's start point. linemend finds those dangling endpoints,
//	pairs each with its geometrically best-matching counterpart, and
//	emits straight connector segments - but only when the connector's
//	bearing agrees with the bearings of both lines it joins, so the
//	repair stays geometrically plausible.
//
// Everything is organized under three subpackages plus a CLI:
//
//	gapclose/     — the core algorithm: endpoint pools, nearest-candidate
//	                search, connector synthesis, angular filtering, and
//	                the iterative convergence loop
//	chains/       — connectivity reporting: end-to-start chain components
//	                before and after a repair
//	lineio/       — the GeoJSON boundary: decode a network, append the
//	                accepted artificial features, write it back
//	cmd/linemend/ — command-line front end over the three
//
// Quick ASCII example:
//
//	before:  ────A────   ────B────        two dangling endpoints
//	after:   ────A────╌╌╌────B────        one artificial connector
//
// Coordinates are planar, distances Euclidean, bearings atan2 degrees;
// see gapclose's package documentation for the acceptance rules and the
// deliberately preserved edge-case behavior.
package linemend
