package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// AlbersEqualAreaParams are the EPSG:9822 named inputs, angles in radians.
type AlbersEqualAreaParams struct {
	LonOrig, LatOrig, LatSP1, LatSP2, FalseE, FalseN float64
}

// AlbersEqualArea implements EPSG method 9822. The inverse latitude series
// truncates at e^6, so it is an approximation with an error of order e^8
// (around 1e-10 rad on the WGS 84 ellipsoid); see DESIGN.md for the resolved beta_fac_sin4 denominator
// discrepancy between source snapshots.
type AlbersEqualArea struct {
	degreeWrapper

	falseE, falseN float64
	lonOrig        float64
	e, e2          float64
	a              float64
	c, n, rhoOrig  float64

	betaFacSin2, betaFacSin4, betaFacSin6 float64
}

func albersAlpha(e2, phi, e float64) float64 {
	return qfn(math.Sin(phi), e, e2)
}

func NewAlbersEqualArea(ell ellipsoid.Ellipsoid, p AlbersEqualAreaParams) *AlbersEqualArea {
	e, e2 := ell.E(), ell.ESquared()

	alphaOrig := albersAlpha(e2, p.LatOrig, e)
	alpha1 := albersAlpha(e2, p.LatSP1, e)
	alpha2 := albersAlpha(e2, p.LatSP2, e)

	m1 := msfn(math.Sin(p.LatSP1), math.Cos(p.LatSP1), e2)
	m2 := msfn(math.Sin(p.LatSP2), math.Cos(p.LatSP2), e2)

	n := (m1*m1 - m2*m2) / (alpha2 - alpha1)
	c := m1*m1 + n*alpha1
	rhoOrig := (ell.A() * math.Sqrt(c-n*alphaOrig)) / n

	e4, e6 := e2*e2, e2*e2*e2
	a := &AlbersEqualArea{
		falseE: p.FalseE, falseN: p.FalseN,
		lonOrig: p.LonOrig,
		e:       e, e2: e2,
		a:       ell.A(),
		c:       c, n: n, rhoOrig: rhoOrig,
		betaFacSin2: e2/3 + 31*e4/180 + 517*e6/5040,
		betaFacSin4: 23*e4/360 + 251*e6/3780,
		betaFacSin6: 761 * e6 / 45360,
	}
	a.degreeWrapper = degreeWrapper{rad: a}
	return a
}

func (a *AlbersEqualArea) ForwardRad(longitude, latitude float64) (float64, float64) {
	alpha := albersAlpha(a.e2, latitude, a.e)
	theta := a.n * (longitude - a.lonOrig)
	rho := (a.a * math.Sqrt(a.c-a.n*alpha)) / a.n

	easting := a.falseE + rho*math.Sin(theta)
	northing := a.falseN + a.rhoOrig - rho*math.Cos(theta)
	return easting, northing
}

func (a *AlbersEqualArea) InverseRad(easting, northing float64) (float64, float64) {
	sign := math.Copysign(1, a.n)
	de := easting - a.falseE
	dn := a.rhoOrig - (northing - a.falseN)

	theta := math.Atan2(de*sign, dn*sign)
	rho := math.Hypot(de, dn)
	alpha := (a.c - (rho*rho*a.n*a.n)/(a.a*a.a)) / a.n

	beta := math.Asin(alpha / qfn(1, a.e, a.e2))

	lat := beta +
		math.Sin(2*beta)*a.betaFacSin2 +
		math.Sin(4*beta)*a.betaFacSin4 +
		math.Sin(6*beta)*a.betaFacSin6
	lon := a.lonOrig + theta/a.n
	return lon, lat
}

var _ Projection = (*AlbersEqualArea)(nil)
