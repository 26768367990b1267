package projection

import (
	"math"
	"testing"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/stretchr/testify/assert"
)

func TestLambertConic1SPARoundTrip(t *testing.T) {
	ell := ellipsoid.FromAInvF(6378206.4, 294.9787) // Clarke 1866
	l := NewLambertConic1SPA(ell, LambertConic1SPAParams{
		LonOrig: -77 * math.Pi / 180,
		LatOrig: 18 * math.Pi / 180,
		KOrig:   1,
		FalseE:  250000,
		FalseN:  150000,
	})

	lon, lat := l.InverseRad(255966.58, 142493.51)
	e, n := l.ForwardRad(lon, lat)
	assert.InDelta(t, 255966.58, e, 0.001)
	assert.InDelta(t, 142493.51, n, 0.001)
}
