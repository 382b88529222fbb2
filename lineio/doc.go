// Package lineio is the file boundary for linemend: it decodes a line
// network from a GeoJSON FeatureCollection and writes the repaired
// network back, with accepted connectors appended as artificial features.
//
// The core algorithm (gapclose) never touches files; it consumes and
// returns in-memory line features. lineio owns the mapping between those
// and the on-disk representation: the `id` property becomes the stable
// line ID, geometries must be LineStrings, and artificial features carry
// the synthesized attribute defaults of the source dataset schema
// (naam, dgl_loc, ref_loc, lengte, wegtype, meetgeg, ref_begin,
// ref_eind). Output is tagged with the EPSG:4326 CRS.
package lineio
