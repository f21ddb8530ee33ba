// Package graph provides the directed multi-edge street network model and
// its edge-table views.
//
// A [Graph] holds nodes positioned in (lon, lat) space and directed edges
// carrying linear geometries and arbitrary attributes. Parallel edges
// between the same ordered node pair are distinguished by an integer key,
// mirroring the (u, v, key) addressing of OSM-derived multigraphs.
//
// Two extractors turn a graph into flat tables consumed by package plot:
//
//   - [Table] produces one [Row] per edge, in insertion order.
//   - [RouteTable] restricts the table to the edges traversed by an ordered
//     node sequence, resolving parallel edges by minimum length.
//
// [GeoJSON] exposes any edge table as a GeoJSON feature collection for
// interchange with external tooling.
package graph
