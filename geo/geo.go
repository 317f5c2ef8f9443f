package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/twpayne/go-polyline"

	"github.com/katalvlaran/campusnav/core"
)

// ErrNoCoordinates is returned by Nearest when no candidate carries coordinates.
var ErrNoCoordinates = errors.New("geo: no location has coordinates")

// Point converts a location into an orb point (lng, lat order).
func Point(l core.Location) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Distance returns the great-circle distance in metres between two locations.
func Distance(a, b core.Location) float64 {
	return orbgeo.Distance(Point(a), Point(b))
}

// Nearest returns the location closest to (lat, lng) and its distance in metres.
// Ties keep the earlier location in locs.
func Nearest(locs []core.Location, lat, lng float64) (core.Location, float64, error) {
	target := orb.Point{lng, lat}
	best, bestDist, found := core.Location{}, math.Inf(1), false
	for _, l := range locs {
		if !l.HasCoords {
			continue
		}
		d := orbgeo.Distance(target, Point(l))
		if d < bestDist {
			best, bestDist, found = l, d, true
		}
	}
	if !found {
		return core.Location{}, 0, ErrNoCoordinates
	}

	return best, bestDist, nil
}

// EncodePolyline encodes the route through locs as a Google encoded polyline.
// ok is false when locs is empty or any location lacks coordinates.
func EncodePolyline(locs []core.Location) (string, bool) {
	if len(locs) == 0 {
		return "", false
	}
	coords := make([][]float64, 0, len(locs))
	for _, l := range locs {
		if !l.HasCoords {
			return "", false
		}
		coords = append(coords, []float64{l.Lat, l.Lng})
	}

	return string(polyline.EncodeCoords(coords)), true
}

// DirectionsURL returns a Google Maps walking-directions link between two
// locations. ok is false when either end lacks coordinates.
func DirectionsURL(from, to core.Location) (string, bool) {
	if !from.HasCoords || !to.HasCoords {
		return "", false
	}

	return fmt.Sprintf("https://www.google.com/maps/dir/%.6f,%.6f/%.6f,%.6f/data=!4m2!4m1!3e2",
		from.Lat, from.Lng, to.Lat, to.Lng), true
}
