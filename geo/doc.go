// Package geo holds the coordinate helpers of the navigator: nearest-location
// lookup for a WGS84 point and Google encoded polylines for drawing a route.
//
// Distances are great-circle metres computed by orb/geo. Locations without
// coordinates (HasCoords == false) are ignored by Nearest and break a polyline,
// so EncodePolyline reports ok=false rather than drawing a partial line.
package geo
