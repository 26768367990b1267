package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestCustomProjectionTransverseMercator(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	values := map[uint32]float64{
		paramLonOrig: 9 * math.Pi / 180,
		paramLatOrig: 0,
		paramKOrig:   0.9996,
		paramFalseE:  500000,
		paramFalseN:  0,
	}
	getter := func(code uint32) (float64, bool) {
		v, ok := values[code]
		return v, ok
	}

	p, ok := CustomProjection(9807, getter, ell)
	assert.True(t, ok)
	e, n := p.ForwardDeg(10.183034, 54.327389)
	assert.InDelta(t, 576935.86, e, 0.01)
	assert.InDelta(t, 6020593.46, n, 0.01)
}

func TestCustomProjectionUnsupportedMethod(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	_, ok := CustomProjection(99999, func(uint32) (float64, bool) { return 0, false }, ell)
	assert.False(t, ok)
}

func TestCustomProjectionMissingParam(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257223563)
	values := map[uint32]float64{paramLonOrig: 0}
	getter := func(code uint32) (float64, bool) {
		v, ok := values[code]
		return v, ok
	}
	_, ok := CustomProjection(9807, getter, ell)
	assert.False(t, ok)
}
