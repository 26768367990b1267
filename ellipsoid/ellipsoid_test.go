package ellipsoid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAInvFInvariants(t *testing.T) {
	e := FromAInvF(6378137.0, 298.257223563)
	assert.InDelta(t, e.B(), e.A()*(1-e.F()), 1e-9*e.A())
	assert.InDelta(t, e.ESquared(), 2*e.F()-e.F()*e.F(), 1e-18)
}

func TestFromAB(t *testing.T) {
	e := FromAB(6378137.0, 6356752.314245)
	assert.InDelta(t, 298.257223563, 1/e.F(), 1e-5)
}

func TestGeocentricRoundTrip(t *testing.T) {
	e := FromAInvF(6378137.0, 298.2572236)
	x0, y0, z0 := 3771793.968, 140253.342, 5124304.349

	lon, lat, h := e.FromGeocentric(x0, y0, z0)
	x1, y1, z1 := e.ToGeocentric(lon, lat, h)

	assert.InDelta(t, x0, x1, 0.01)
	assert.InDelta(t, y0, y1, 0.01)
	assert.InDelta(t, z0, z1, 0.01)

	wantLatDeg := 53 + 48.0/60 + 33.820/3600
	wantLonDeg := 2 + 7.0/60 + 46.380/3600
	assert.InDelta(t, wantLonDeg, lon*180/math.Pi, 0.01/3600)
	assert.InDelta(t, wantLatDeg, lat*180/math.Pi, 0.01/3600)
	assert.InDelta(t, 73.0, h, 0.01)
}

func TestRhoNuOrdering(t *testing.T) {
	e := FromAInvF(6378137.0, 298.257223563)
	// at the equator nu == a and rho < nu for an oblate ellipsoid
	assert.InDelta(t, e.A(), e.Nu(0), 1e-6)
	assert.Less(t, e.Rho(0), e.Nu(0))
}
