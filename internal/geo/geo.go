// Package geo provides great-circle distance between coordinates, used for
// the distance scoring feature and the straight-line travel-time fallback.
package geo

import (
	"github.com/golang/geo/s2"

	"outings/internal/types"
)

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3958.8

// DistanceMiles returns the great-circle distance between two coordinates.
func DistanceMiles(a, b types.Location) float64 {
	from := s2.LatLngFromDegrees(a.Lat, a.Lon)
	to := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return from.Distance(to).Radians() * earthRadiusMiles
}
