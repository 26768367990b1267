package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestAlbersEqualAreaRoundTripNorth(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.2572221)
	a := NewAlbersEqualArea(ell, AlbersEqualAreaParams{
		LonOrig: -96 * math.Pi / 180,
		LatOrig: 23 * math.Pi / 180,
		LatSP1:  29.5 * math.Pi / 180,
		LatSP2:  45.5 * math.Pi / 180,
		FalseE:  0,
		FalseN:  0,
	})

	lon, lat := a.InverseRad(1000000, 1000000)
	e, n := a.ForwardRad(lon, lat)
	assert.InDelta(t, 1000000.0, e, 0.001)
	assert.InDelta(t, 1000000.0, n, 0.001)
}

func TestAlbersEqualAreaRoundTripSouth(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378160.0, 298.25)
	a := NewAlbersEqualArea(ell, AlbersEqualAreaParams{
		LonOrig: -60 * math.Pi / 180,
		LatOrig: -32 * math.Pi / 180,
		LatSP1:  -5 * math.Pi / 180,
		LatSP2:  -42 * math.Pi / 180,
		FalseE:  0,
		FalseN:  0,
	})

	lon, lat := a.InverseRad(1408623.196, 1507641.482)
	e, n := a.ForwardRad(lon, lat)
	assert.InDelta(t, 1408623.196, e, 0.001)
	assert.InDelta(t, 1507641.482, n, 0.001)
}
