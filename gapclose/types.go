// Package gapclose - core types, options, and sentinel errors for the
// gap-closing algorithm.
package gapclose

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for gapclose operations.
var (
	// ErrEmptyID indicates a line with an empty ID string.
	ErrEmptyID = errors.New("gapclose: line ID is empty")

	// ErrDuplicateID indicates two input lines sharing the same ID.
	ErrDuplicateID = errors.New("gapclose: duplicate line ID")

	// ErrShortGeometry indicates a line with fewer than two coordinates,
	// for which start and end points are undefined.
	ErrShortGeometry = errors.New("gapclose: line geometry needs at least two coordinates")

	// ErrBadThreshold indicates a non-positive (or NaN) angle threshold.
	ErrBadThreshold = errors.New("gapclose: angle threshold must be positive")

	// ErrBadMaxRounds indicates a negative MaxRounds option.
	ErrBadMaxRounds = errors.New("gapclose: max rounds cannot be negative")
)

// Line is a single line feature of the network.
//
// ID uniquely identifies the line and must be stable across the run.
// Geometry is an ordered polyline of at least two planar coordinates;
// the caller owns it and gapclose only reads it.
type Line struct {
	// ID is the unique identifier for this line.
	ID string

	// Geometry is the ordered coordinate sequence, len ≥ 2.
	Geometry orb.LineString
}

// Start returns the first coordinate of the line.
// Precondition: len(l.Geometry) ≥ 1 (enforced by Endpoints/Close validation).
func (l Line) Start() orb.Point { return l.Geometry[0] }

// End returns the last coordinate of the line.
// Precondition: len(l.Geometry) ≥ 1 (enforced by Endpoints/Close validation).
func (l Line) End() orb.Point { return l.Geometry[len(l.Geometry)-1] }

// Pool is a set of lines keyed by ID. The two pools returned by Endpoints
// (no-successor and no-predecessor) shrink monotonically across rounds as
// connectors are accepted.
type Pool map[string]Line

// IDs returns the pool's line IDs in ascending order.
func (p Pool) IDs() []string {
	return sortedIDs(p)
}

// Connector is an accepted artificial segment joining a no-successor
// line's end point to a no-predecessor line's start point.
//
// Angle is |bearing(source line) − bearing(destination line)| and
// AngleArt is |bearing(connector) − bearing(destination line)|, both in
// degrees; at acceptance time each was below the configured threshold.
type Connector struct {
	// SourceID is the no-successor line the connector leaves.
	SourceID string

	// DestID is the no-predecessor line the connector enters.
	DestID string

	// Geometry is the straight 2-point segment end-point→start-point.
	Geometry orb.LineString

	// Angle is the bearing difference between source and destination lines.
	Angle float64

	// AngleArt is the bearing difference between the connector and the
	// destination line.
	AngleArt float64

	// Name is the synthesized feature name, "Artificial_<SourceID>_<DestID>".
	Name string
}

// Options configures the gap-closing run.
//
// Fields:
//   - AngleThreshold — maximum acceptable bearing deviation in degrees,
//     applied to both the line-to-line and the connector-to-line checks.
//     Must be > 0.
//   - MaxRounds — upper bound on convergence-loop rounds. 0 means no bound;
//     the loop then stops only on diminishing returns.
type Options struct {
	AngleThreshold float64
	MaxRounds      int
}

// DefaultOptions returns Options with the defaults the algorithm shipped
// with: a 5° threshold and no round bound.
func DefaultOptions() Options {
	return Options{
		AngleThreshold: 5,
		MaxRounds:      0,
	}
}

// Result is the outcome of a Close run.
type Result struct {
	// Connectors holds every accepted connector, in acceptance order.
	Connectors []Connector

	// NoSuccessor and NoPredecessor are the residual pools of lines that
	// stayed unmatched when the loop stopped.
	NoSuccessor   Pool
	NoPredecessor Pool

	// Rounds is the number of convergence-loop rounds executed.
	Rounds int
}
