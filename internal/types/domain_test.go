package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Lat: 35.9132, Lon: -79.0558}.Valid())
	assert.True(t, Location{}.Valid()) // (0,0) is odd but finite
	assert.False(t, Location{Lat: math.NaN(), Lon: -79.0}.Valid())
	assert.False(t, Location{Lat: 35.9, Lon: math.Inf(1)}.Valid())
}

func TestActivityFlags(t *testing.T) {
	museum := Activity{Category: "museum", WeatherFlags: []string{FlagIndoor}}
	park := Activity{Category: "park", WeatherFlags: []string{FlagShade, FlagWater}}
	walk := Activity{Category: "walk"}

	assert.True(t, museum.IsIndoor())
	assert.False(t, park.IsIndoor())
	assert.False(t, walk.IsIndoor())
	assert.True(t, park.HasFlag(FlagWater))
	assert.False(t, park.HasFlag(FlagIndoor))
}

func TestParseWhen(t *testing.T) {
	assert.Equal(t, WhenNow, ParseWhen("now"))
	assert.Equal(t, WhenLater, ParseWhen("later"))
	assert.Equal(t, WhenNow, ParseWhen(""))
	assert.Equal(t, WhenNow, ParseWhen("bogus"))
}
