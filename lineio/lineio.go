package lineio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/linemend/gapclose"
)

// Sentinel errors for network decoding.
var (
	// ErrBadCollection indicates the input is not a GeoJSON FeatureCollection.
	ErrBadCollection = errors.New("lineio: input is not a GeoJSON feature collection")

	// ErrNotLineString indicates a feature whose geometry is not a LineString.
	ErrNotLineString = errors.New("lineio: feature geometry is not a LineString")

	// ErrMissingID indicates a feature without a usable id property.
	ErrMissingID = errors.New("lineio: feature has no usable id")

	// ErrShortGeometry indicates a LineString with fewer than two
	// coordinates, for which start and end points are undefined.
	ErrShortGeometry = errors.New("lineio: line geometry needs at least two coordinates")
)

// Network couples the raw feature collection with the decoded line
// features. Keeping the collection around preserves every original
// feature and its attributes verbatim on write.
type Network struct {
	Collection *geojson.FeatureCollection
	Lines      []gapclose.Line
}

// Read decodes a line network from GeoJSON. Every feature must carry a
// LineString geometry of at least two coordinates and an id - either an
// `id` property (string or number) or a feature-level id. Rejecting
// short geometries here keeps the contract of the in-memory Line type:
// everything downstream may take Start and End for granted.
//
// Errors: ErrBadCollection, ErrNotLineString, ErrShortGeometry,
// ErrMissingID, each with the offending feature's position.
func Read(r io.Reader) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lineio: read: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCollection, err)
	}

	lines := make([]gapclose.Line, 0, len(fc.Features))
	for i, f := range fc.Features {
		ls, ok := f.Geometry.(orb.LineString)
		if !ok {
			return nil, fmt.Errorf("%w: feature %d has %T", ErrNotLineString, i, f.Geometry)
		}
		if len(ls) < 2 {
			return nil, fmt.Errorf("%w: feature %d has %d", ErrShortGeometry, i, len(ls))
		}
		id := featureID(f)
		if id == "" {
			return nil, fmt.Errorf("%w: feature %d", ErrMissingID, i)
		}
		lines = append(lines, gapclose.Line{ID: id, Geometry: ls})
	}

	return &Network{Collection: fc, Lines: lines}, nil
}

// AppendConnectors adds one artificial feature per accepted connector to
// the collection, carrying the synthesized attribute defaults: the
// connector name, placeholder descriptive fields, and zero length.
func (n *Network) AppendConnectors(cs []gapclose.Connector) {
	for _, c := range cs {
		f := geojson.NewFeature(c.Geometry)
		f.Properties["id"] = c.Name
		f.Properties["naam"] = c.Name
		f.Properties["dgl_loc"] = "_"
		f.Properties["ref_loc"] = "_"
		f.Properties["lengte"] = 0
		f.Properties["wegtype"] = "_"
		f.Properties["meetgeg"] = "_"
		f.Properties["ref_begin"] = "_"
		f.Properties["ref_eind"] = "_"
		n.Collection.Append(f)
		n.Lines = append(n.Lines, gapclose.Line{ID: c.Name, Geometry: c.Geometry})
	}
}

// Write marshals the collection to w, tagged with the EPSG:4326 CRS.
// The tag goes on a shallow copy of the collection; the caller's network
// is left untouched.
func Write(w io.Writer, n *Network) error {
	fc := *n.Collection
	extra := make(geojson.Properties, len(fc.ExtraMembers)+1)
	for k, v := range fc.ExtraMembers {
		extra[k] = v
	}
	extra["crs"] = map[string]interface{}{
		"type":       "name",
		"properties": map[string]interface{}{"name": "EPSG:4326"},
	}
	fc.ExtraMembers = extra

	data, err := json.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("lineio: marshal: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("lineio: write: %w", err)
	}

	return nil
}

// featureID extracts the stable line ID: the `id` property when present,
// the feature-level id otherwise. Numeric ids are formatted without an
// exponent so they stay stable across decode/encode cycles.
func featureID(f *geojson.Feature) string {
	if v, ok := f.Properties["id"]; ok {
		if s := formatID(v); s != "" {
			return s
		}
	}

	return formatID(f.ID)
}

func formatID(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
