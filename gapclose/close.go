package gapclose

import (
	"fmt"
)

// convergenceGain is the minimum number of new connectors a round must
// contribute for the loop to keep going. The "< 5 new matches" stopping
// rule is a diminishing-returns heuristic, not a completeness proof: the
// loop may stop with closable gaps unresolved.
const convergenceGain = 5

// Close runs the full iterative gap-closing algorithm over lines.
//
// Description:
//
//	Close splits the input into the no-successor / no-predecessor pools,
//	then repeats rounds of nearest-candidate search, connector synthesis,
//	and angular filtering, removing matched lines from the pools after
//	each round. Accepted connectors accumulate across rounds.
//
// Round outline:
//  1. Index the no-successor end points; for each no-predecessor start
//     point take the nearest end point (rank 0 of a 3-nearest query).
//  2. Build the 2-point candidate segments, grouped by shared target.
//  3. Per group keep the best-aligned candidate and accept it when both
//     angle checks pass and it is not a self-loop.
//  4. Drop matched IDs from both pools.
//  5. Stop when the accumulated set grew by fewer than 5 connectors this
//     round, or when Options.MaxRounds is reached. An empty pool on
//     either side makes the round yield zero, which also stops the loop.
//
// The computation is deterministic and idempotent: the same input and
// options always produce the same Result. It is also single-threaded;
// each round observes a consistent snapshot of the pools and only Close
// itself mutates them, between rounds.
//
// Known limitation, preserved on purpose: bearings are raw signed atan2
// degrees and the acceptance rule compares absolute differences, so two
// nearly-parallel lines pointing just either side of ±180° measure as
// ~360° apart and get rejected. The intended tolerance semantics at the
// wraparound were never specified, so no silent fix is applied here.
//
// Complexity: O(r · (n log n)) for r rounds over pools of size ≤ n.
//
// Errors: ErrBadThreshold, ErrBadMaxRounds, plus the Endpoints validation
// sentinels (ErrEmptyID, ErrDuplicateID, ErrShortGeometry). Validation
// failures abort the whole run; no partial result is returned.
func Close(lines []Line, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	noSucc, noPred, err := Endpoints(lines)
	if err != nil {
		return Result{}, err
	}

	var accumulated []Connector
	previous := 0
	rounds := 0
	for {
		rounds++

		matches, err := nearestTargets(noSucc, noPred)
		if err != nil {
			return Result{}, fmt.Errorf("gapclose: round %d: %w", rounds, err)
		}
		groups := synthesize(matches, noSucc, noPred)
		accepted := filterGroups(groups, noSucc, noPred, opts.AngleThreshold)

		accumulated = append(accumulated, accepted...)
		for _, c := range accepted {
			delete(noSucc, c.SourceID)
			delete(noPred, c.DestID)
		}

		if len(accumulated)-previous < convergenceGain {
			break
		}
		previous = len(accumulated)

		if opts.MaxRounds > 0 && rounds >= opts.MaxRounds {
			break
		}
	}

	return Result{
		Connectors:    accumulated,
		NoSuccessor:   noSucc,
		NoPredecessor: noPred,
		Rounds:        rounds,
	}, nil
}

// validateOptions rejects option values the algorithm cannot run with.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// NaN fails every comparison, so test the valid range directly.
	if !(opts.AngleThreshold > 0) {
		return fmt.Errorf("%w: got %v", ErrBadThreshold, opts.AngleThreshold)
	}
	if opts.MaxRounds < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxRounds, opts.MaxRounds)
	}

	return nil
}
