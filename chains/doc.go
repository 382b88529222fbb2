// Package chains reports the connectivity of a line network: it groups
// line features into end-to-start chains, where two lines belong to the
// same chain when one's end point coincides exactly with the other's
// start point.
//
// The chain count is the network's fragmentation measure - a fully
// continuous network is a single chain. Comparing the count before and
// after a gapclose run shows how much of the fragmentation the synthesized
// connectors repaired.
package chains
