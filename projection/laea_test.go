package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestLambertAzimuthalEqualAreaRoundTrip(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378137.0, 298.257222101) // GRS-80
	l := NewLambertAzimuthalEqualArea(ell, LambertAzimuthalEqualAreaParams{
		LonOrig: 10 * math.Pi / 180,
		LatOrig: 52 * math.Pi / 180,
		FalseE:  4321000,
		FalseN:  3210000,
	})

	lon, lat := l.InverseRad(3962799.45, 2999718.85)
	e, n := l.ForwardRad(lon, lat)
	assert.InDelta(t, 3962799.45, e, 0.01)
	assert.InDelta(t, 2999718.85, n, 0.05)
}
