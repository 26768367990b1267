package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestLambertConic2SPRoundTrip(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378160.0, 298.25)
	l := NewLambertConic2SP(ell, LambertConic2SPParams{
		LonFalseOrig: 145 * math.Pi / 180,
		LatFalseOrig: 37 * math.Pi / 180,
		Lat1:         36 * math.Pi / 180,
		Lat2:         38 * math.Pi / 180,
		FalseE:       2500000,
		FalseN:       4500000,
	})

	lon, lat := l.InverseRad(2477968.963, 4416742.535)
	e, n := l.ForwardRad(lon, lat)
	assert.InDelta(t, 2477968.963, e, 0.001)
	assert.InDelta(t, 4416742.535, n, 0.001)
}

func TestLambertConic2SPSingleParallel(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	l := NewLambertConic2SP(ell, LambertConic2SPParams{
		LonFalseOrig: 0,
		LatFalseOrig: 30 * math.Pi / 180,
		Lat1:         30 * math.Pi / 180,
		Lat2:         30 * math.Pi / 180,
		FalseE:       0,
		FalseN:       0,
	})

	lon, lat := l.InverseRad(100000, 100000)
	e, n := l.ForwardRad(lon, lat)
	assert.InDelta(t, 100000.0, e, 0.001)
	assert.InDelta(t, 100000.0, n, 0.001)
}
