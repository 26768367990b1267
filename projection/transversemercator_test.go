package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestTransverseMercatorUTM32NForward(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	tm := NewTransverseMercator(ell, TransverseMercatorParams{
		LonOrig: 9 * math.Pi / 180,
		LatOrig: 0,
		KOrig:   0.9996,
		FalseE:  500000,
		FalseN:  0,
	})

	e, n := tm.ForwardDeg(10.183034, 54.327389)
	assert.InDelta(t, 576935.86, e, 0.01)
	assert.InDelta(t, 6020593.46, n, 0.01)

	lon, lat := tm.InverseDeg(e, n)
	assert.InDelta(t, 10.183034, lon, 1e-6)
	assert.InDelta(t, 54.327389, lat, 1e-6)
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	tm := NewTransverseMercator(ell, TransverseMercatorParams{
		LonOrig: 9 * math.Pi / 180,
		KOrig:   0.9996,
		FalseE:  500000,
	})

	lon, lat := tm.InverseRad(577274.99, 69740.50)
	e, n := tm.ForwardRad(lon, lat)
	assert.InDelta(t, 577274.99, e, 0.01)
	assert.InDelta(t, 69740.50, n, 0.01)
}
