package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// LambertConic2SPParams are the EPSG:9802 named inputs, angles in radians.
type LambertConic2SPParams struct {
	LatFalseOrig, LonFalseOrig, Lat1, Lat2, FalseE, FalseN float64
}

// LambertConic2SP implements EPSG method 9802. When Lat1 == Lat2 the two
// standard parallels collapse to a single tangent parallel; n = sin(Lat1) in
// that case rather than the two-parallel log ratio, matching EPSG GN7-2.
type LambertConic2SP struct {
	degreeWrapper

	e, e2        float64
	lonFalseOrig float64
	falseE       float64
	falseN       float64
	a            float64

	n, f, r0 float64
}

func NewLambertConic2SP(ell ellipsoid.Ellipsoid, p LambertConic2SPParams) *LambertConic2SP {
	e, e2 := ell.E(), ell.ESquared()

	var n float64
	if p.Lat1 == p.Lat2 {
		n = math.Sin(p.Lat1)
	} else {
		m1 := msfn(math.Sin(p.Lat1), math.Cos(p.Lat1), e2)
		m2 := msfn(math.Sin(p.Lat2), math.Cos(p.Lat2), e2)
		t1 := tsfn(p.Lat1, math.Sin(p.Lat1), e)
		t2 := tsfn(p.Lat2, math.Sin(p.Lat2), e)
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}

	m1 := msfn(math.Sin(p.Lat1), math.Cos(p.Lat1), e2)
	t1 := tsfn(p.Lat1, math.Sin(p.Lat1), e)
	f := m1 / (n * math.Pow(t1, n))
	tF := tsfn(p.LatFalseOrig, math.Sin(p.LatFalseOrig), e)
	r0 := ell.A() * f * math.Pow(tF, n)

	l := &LambertConic2SP{
		e: e, e2: e2,
		lonFalseOrig: p.LonFalseOrig, falseE: p.FalseE, falseN: p.FalseN,
		a: ell.A(),
		n: n, f: f, r0: r0,
	}
	l.degreeWrapper = degreeWrapper{rad: l}
	return l
}

func (l *LambertConic2SP) ForwardRad(longitude, latitude float64) (float64, float64) {
	t := tsfn(latitude, math.Sin(latitude), l.e)
	r := l.a * l.f * math.Pow(t, l.n)
	theta := l.n * (longitude - l.lonFalseOrig)

	easting := l.falseE + r*math.Sin(theta)
	northing := l.falseN + l.r0 - r*math.Cos(theta)
	return easting, northing
}

func (l *LambertConic2SP) InverseRad(easting, northing float64) (float64, float64) {
	de := easting - l.falseE
	dn := l.r0 - (northing - l.falseN)
	r := math.Copysign(math.Hypot(de, dn), l.n)
	theta := math.Atan2(de, dn)

	t := math.Pow(r/(l.a*l.f), 1/l.n)
	lat := phi2(l.e, t)

	lon := theta/l.n + l.lonFalseOrig
	return lon, lat
}

var _ Projection = (*LambertConic2SP)(nil)
