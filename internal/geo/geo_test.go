package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outings/internal/types"
)

func TestDistanceMiles_SamePoint(t *testing.T) {
	p := types.Location{Lat: 35.9132, Lon: -79.0558}
	assert.Zero(t, DistanceMiles(p, p))
}

func TestDistanceMiles_OneDegreeLatitude(t *testing.T) {
	a := types.Location{Lat: 35.0, Lon: -79.0}
	b := types.Location{Lat: 36.0, Lon: -79.0}
	// One degree of latitude is about 69 miles.
	assert.InDelta(t, 69.1, DistanceMiles(a, b), 0.5)
}

func TestDistanceMiles_ChapelHillToDurham(t *testing.T) {
	chapelHill := types.Location{Lat: 35.9132, Lon: -79.0558}
	durham := types.Location{Lat: 35.9940, Lon: -78.8986}
	d := DistanceMiles(chapelHill, durham)
	assert.InDelta(t, 10.4, d, 1.0)
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := types.Location{Lat: 35.9132, Lon: -79.0558}
	b := types.Location{Lat: 35.7796, Lon: -78.6382}
	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}
