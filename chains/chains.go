package chains

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/linemend/gapclose"
)

// Components groups lines into end-to-start chains and returns one slice
// of line IDs per chain, IDs sorted inside each chain, chains ordered by
// their smallest ID.
//
// Two lines are linked when one's end point equals the other's start
// point (exact coordinate equality, the same registry rule gapclose
// uses). Linking is treated as undirected for grouping purposes: a line
// and its continuation land in the same chain regardless of direction of
// travel. Precondition: every line has ≥ 2 coordinates (run inputs
// through gapclose.Endpoints or Close first when in doubt).
//
// Time: O(n log n) over n lines (the BFS walk is linear, the per-chain
// and chain-list orderings dominate), Memory: O(n) for the registries
// and flags.
func Components(lines []gapclose.Line) [][]string {
	byStart := make(map[orb.Point][]int, len(lines))
	byEnd := make(map[orb.Point][]int, len(lines))
	for i, l := range lines {
		byStart[l.Start()] = append(byStart[l.Start()], i)
		byEnd[l.End()] = append(byEnd[l.End()], i)
	}

	seen := make([]bool, len(lines))
	var comps [][]string

	for i := range lines {
		if seen[i] {
			continue
		}
		// BFS to collect the chain
		queue := []int{i}
		seen[i] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, lines[u].ID)
			neighbors := append([]int{}, byStart[lines[u].End()]...)
			neighbors = append(neighbors, byEnd[lines[u].Start()]...)
			for _, v := range neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(a, b int) bool { return comps[a][0] < comps[b][0] })

	return comps
}

// Count returns the number of end-to-start chains in the network.
func Count(lines []gapclose.Line) int {
	return len(Components(lines))
}
