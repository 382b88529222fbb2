package gapclose_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linemend/gapclose"
)

// TestClose_OptionValidation rejects unusable options up front.
func TestClose_OptionValidation(t *testing.T) {
	lines := []gapclose.Line{seg("a", 0, 0, 1, 0)}

	cases := []struct {
		name string
		opts gapclose.Options
		err  error
	}{
		{"ZeroThreshold", gapclose.Options{AngleThreshold: 0}, gapclose.ErrBadThreshold},
		{"NegativeThreshold", gapclose.Options{AngleThreshold: -3}, gapclose.ErrBadThreshold},
		{"NaNThreshold", gapclose.Options{AngleThreshold: math.NaN()}, gapclose.ErrBadThreshold},
		{"NegativeRounds", gapclose.Options{AngleThreshold: 5, MaxRounds: -1}, gapclose.ErrBadMaxRounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gapclose.Close(lines, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestClose_TinyGapAccepted covers the canonical repair: line a ends just
// short of line b's start, everything points east, so the connector is
// accepted with both angles near zero.
func TestClose_TinyGapAccepted(t *testing.T) {
	lines := []gapclose.Line{
		// c feeds a, so a is not its own competitor in the candidate group.
		seg("c", -2, 0.5, -1, 0),
		seg("a", -1, 0, 0, 0),
		seg("b", 0.001, 0.00001, 1, 0.00001),
	}

	res, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Connectors, 1)
	c := res.Connectors[0]
	assert.Equal(t, "a", c.SourceID)
	assert.Equal(t, "b", c.DestID)
	assert.Equal(t, "Artificial_a_b", c.Name)
	assert.Equal(t, orb.LineString{{0, 0}, {0.001, 0.00001}}, c.Geometry)
	assert.InDelta(t, 0, c.Angle, 0.01)
	assert.InDelta(t, 0, c.AngleArt, 1)

	// Matched lines left their pools.
	assert.NotContains(t, res.NoSuccessor, "a")
	assert.NotContains(t, res.NoPredecessor, "b")
}

// TestClose_PerpendicularRejected: the destination line points 90° off
// the source line, so with a 5° threshold nothing connects and both
// lines stay in their pools.
func TestClose_PerpendicularRejected(t *testing.T) {
	lines := []gapclose.Line{
		seg("a", -1, 0, 0, 0),  // east
		seg("b", 0, 0.5, 0, 2), // north
	}

	res, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Connectors)
	assert.Contains(t, res.NoSuccessor, "a")
	assert.Contains(t, res.NoSuccessor, "b")
	assert.Contains(t, res.NoPredecessor, "a")
	assert.Contains(t, res.NoPredecessor, "b")
}

// TestClose_IsolatedLine: a single line is its own only candidate; the
// self-loop check rejects it and the loop stops after one round.
func TestClose_IsolatedLine(t *testing.T) {
	res, err := gapclose.Close([]gapclose.Line{seg("solo", 0, 0, 1, 0)}, gapclose.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Connectors)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, []string{"solo"}, res.NoSuccessor.IDs())
	assert.Equal(t, []string{"solo"}, res.NoPredecessor.IDs())
}

// TestClose_EmptyInput: no lines, no pools, one empty round, no error.
func TestClose_EmptyInput(t *testing.T) {
	res, err := gapclose.Close(nil, gapclose.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Connectors)
	assert.Equal(t, 1, res.Rounds)
	assert.Empty(t, res.NoSuccessor)
	assert.Empty(t, res.NoPredecessor)
}

// hookPair emits the two lines of gap pair i: an L-shaped feed line whose
// last segment points east, and a straight eastbound continuation set
// 0.5 east of the feed's end. The L-shape keeps the feed's self-candidate
// badly aligned (its own first segment points north), so each pair
// resolves feed→cont.
func hookPair(i int) []gapclose.Line {
	y := float64(100 * i)

	return []gapclose.Line{
		{
			ID:       fmt.Sprintf("feed%02d", i),
			Geometry: orb.LineString{{0, y - 1}, {0, y}, {1, y}},
		},
		{
			ID:       fmt.Sprintf("cont%02d", i),
			Geometry: orb.LineString{{1.5, y}, {2.5, y}},
		},
	}
}

// TestClose_MultiRound drives the convergence loop past round one: six
// pairs connect in round 1 (≥ 5 keeps the loop running) and round 2
// yields nothing, stopping it.
func TestClose_MultiRound(t *testing.T) {
	var lines []gapclose.Line
	for i := 0; i < 6; i++ {
		lines = append(lines, hookPair(i)...)
	}

	res, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, res.Connectors, 6)
	assert.Equal(t, 2, res.Rounds)

	// Each feed matched exactly once as source, each cont once as
	// destination, and no connector is a self-loop.
	srcSeen := map[string]bool{}
	dstSeen := map[string]bool{}
	for _, c := range res.Connectors {
		assert.NotEqual(t, c.SourceID, c.DestID)
		assert.False(t, srcSeen[c.SourceID], "source %s matched twice", c.SourceID)
		assert.False(t, dstSeen[c.DestID], "destination %s matched twice", c.DestID)
		srcSeen[c.SourceID] = true
		dstSeen[c.DestID] = true
		assert.NotContains(t, res.NoSuccessor, c.SourceID)
		assert.NotContains(t, res.NoPredecessor, c.DestID)
	}

	// The unmatched sides stay behind: every cont still lacks a
	// successor, every feed still lacks a predecessor.
	assert.Len(t, res.NoSuccessor, 6)
	assert.Len(t, res.NoPredecessor, 6)
}

// TestClose_MaxRoundsBounds verifies the external runtime bound: the same
// six-pair input stops after round 1 when MaxRounds = 1.
func TestClose_MaxRoundsBounds(t *testing.T) {
	var lines []gapclose.Line
	for i := 0; i < 6; i++ {
		lines = append(lines, hookPair(i)...)
	}

	opts := gapclose.DefaultOptions()
	opts.MaxRounds = 1
	res, err := gapclose.Close(lines, opts)
	require.NoError(t, err)

	assert.Len(t, res.Connectors, 6)
	assert.Equal(t, 1, res.Rounds)
}

// TestClose_Idempotent: two runs over the same input and options produce
// identical results, map randomization notwithstanding.
func TestClose_Idempotent(t *testing.T) {
	var lines []gapclose.Line
	for i := 0; i < 6; i++ {
		lines = append(lines, hookPair(i)...)
	}
	lines = append(lines, seg("stray", 500, 500, 501, 501))

	first, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)
	second, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestClose_DegenerateLastSegment: a repeated end vertex leaves the
// source bearing undefined, which must reject the candidate rather than
// fault the computation.
func TestClose_DegenerateLastSegment(t *testing.T) {
	lines := []gapclose.Line{
		{ID: "a", Geometry: orb.LineString{{-1, 0}, {0, 0}, {0, 0}}},
		seg("b", 0.1, 0, 1, 0),
	}

	res, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Connectors)
}

// TestClose_PoolsShrinkMonotonically replays the repair with the
// accepted connectors appended and expects no further matches: every
// closed gap stays closed.
func TestClose_PoolsShrinkMonotonically(t *testing.T) {
	var lines []gapclose.Line
	for i := 0; i < 6; i++ {
		lines = append(lines, hookPair(i)...)
	}

	res, err := gapclose.Close(lines, gapclose.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Connectors, 6)

	mended := append([]gapclose.Line{}, lines...)
	for _, c := range res.Connectors {
		mended = append(mended, gapclose.Line{ID: c.Name, Geometry: c.Geometry})
	}

	noSucc, noPred, err := gapclose.Endpoints(mended)
	require.NoError(t, err)
	assert.Len(t, noSucc, 6) // the six cont lines still dangle forward
	assert.Len(t, noPred, 6) // the six feed lines still dangle backward
}
