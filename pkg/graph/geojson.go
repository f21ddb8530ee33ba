package graph

import (
	"github.com/paulmach/orb/geojson"
)

// GeoJSON converts an edge table into a GeoJSON feature collection,
// one LineString feature per row. Endpoint IDs and the parallel-edge key
// are stored in the "u", "v", and "key" properties alongside the row's
// edge attributes. Row attributes win on name collision.
//
// The collection is an in-memory view for interchange with external
// tooling; nothing is written anywhere.
func GeoJSON(rows []Row) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, row := range rows {
		f := geojson.NewFeature(row.Geometry)
		f.Properties["u"] = int64(row.From)
		f.Properties["v"] = int64(row.To)
		f.Properties["key"] = row.Key
		for k, v := range row.Attrs {
			f.Properties[k] = v
		}
		fc.Append(f)
	}
	return fc
}
