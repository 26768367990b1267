package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// LambertConic1SPAParams are the EPSG:9801 named inputs, angles in radians.
type LambertConic1SPAParams struct {
	LatOrig, LonOrig, KOrig, FalseE, FalseN float64
}

// LambertConic1SPA implements EPSG method 9801. No implementation of this
// method survives in the ported source snapshot (only its parameter struct
// does); the formulas here follow Guidance Note 7-2 directly, shaped like
// the two-parallel variant in lcc2sp.go with the origin parallel doubling
// as both standard parallels; KOrig is not part of F but multiplies the
// radii r and r0 alongside it.
type LambertConic1SPA struct {
	degreeWrapper

	e, e2   float64
	lonOrig float64
	falseE  float64
	falseN  float64
	a       float64
	kOrig   float64

	n, f, r0 float64
}

func NewLambertConic1SPA(ell ellipsoid.Ellipsoid, p LambertConic1SPAParams) *LambertConic1SPA {
	e, e2 := ell.E(), ell.ESquared()

	s0 := math.Sin(p.LatOrig)
	m0 := msfn(s0, math.Cos(p.LatOrig), e2)
	t0 := tsfn(p.LatOrig, s0, e)

	n := s0
	f := m0 / (n * math.Pow(t0, n))
	r0 := ell.A() * p.KOrig * f * math.Pow(t0, n)

	l := &LambertConic1SPA{
		e: e, e2: e2,
		lonOrig: p.LonOrig, falseE: p.FalseE, falseN: p.FalseN,
		a: ell.A(), kOrig: p.KOrig,
		n: n, f: f, r0: r0,
	}
	l.degreeWrapper = degreeWrapper{rad: l}
	return l
}

func (l *LambertConic1SPA) ForwardRad(longitude, latitude float64) (float64, float64) {
	t := tsfn(latitude, math.Sin(latitude), l.e)
	r := l.a * l.kOrig * l.f * math.Pow(t, l.n)
	theta := l.n * (longitude - l.lonOrig)

	easting := l.falseE + r*math.Sin(theta)
	northing := l.falseN + l.r0 - r*math.Cos(theta)
	return easting, northing
}

func (l *LambertConic1SPA) InverseRad(easting, northing float64) (float64, float64) {
	de := easting - l.falseE
	dn := l.r0 - (northing - l.falseN)
	r := math.Copysign(math.Hypot(de, dn), l.n)
	theta := math.Atan2(de, dn)

	t := math.Pow(r/(l.a*l.kOrig*l.f), 1/l.n)
	lat := phi2(l.e, t)

	lon := theta/l.n + l.lonOrig
	return lon, lat
}

var _ Projection = (*LambertConic1SPA)(nil)
