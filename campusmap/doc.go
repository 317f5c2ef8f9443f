// Package campusmap loads the static campus catalog and builds the routing graph.
//
// The catalog is a YAML document:
//
//	locations:
//	  - {id: "1", name: Main Gate, type: Entrance, lat: 29.375481, lng: 79.530486}
//	paths:
//	  - {from: "1", to: "2", distance: 150, time: 120}
//
// Paths are undirected. Build adds every location before any path so no edge
// can dangle, and keeps catalog order, which fixes the neighbor order the
// search packages tie-break on.
//
// Default returns the embedded reference campus (8 locations, 10 paths).
package campusmap
