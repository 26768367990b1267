package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// LambertAzimuthalEqualAreaParams are the EPSG:9820 named inputs, angles in radians.
type LambertAzimuthalEqualAreaParams struct {
	LonOrig, LatOrig, FalseE, FalseN float64
}

// LambertAzimuthalEqualArea implements EPSG method 9820. The inverse uses the
// eccentricity series of Guidance Note 7-2; see DESIGN.md for the resolved
// sin(6*beta) vs sin(beta+6) discrepancy between source snapshots.
type LambertAzimuthalEqualArea struct {
	degreeWrapper

	lonOrig, falseE, falseN float64
	e, e2                   float64

	qP, betaO, rq, d float64
}

func NewLambertAzimuthalEqualArea(ell ellipsoid.Ellipsoid, p LambertAzimuthalEqualAreaParams) *LambertAzimuthalEqualArea {
	e, e2 := ell.E(), ell.ESquared()

	qP := qfn(1, e, e2)
	qO := qfn(math.Sin(p.LatOrig), e, e2)

	betaO := math.Asin(qO / qP)
	rq := ell.A() * math.Sqrt(qP/2)
	d := ell.A() * msfn(math.Sin(p.LatOrig), math.Cos(p.LatOrig), e2) / (rq * math.Cos(betaO))

	l := &LambertAzimuthalEqualArea{
		lonOrig: p.LonOrig,
		falseE:  p.FalseE,
		falseN:  p.FalseN,
		e:       e, e2: e2,
		qP: qP, betaO: betaO, rq: rq, d: d,
	}
	l.degreeWrapper = degreeWrapper{rad: l}
	return l
}

func (l *LambertAzimuthalEqualArea) ForwardRad(longitude, latitude float64) (float64, float64) {
	q := qfn(math.Sin(latitude), l.e, l.e2)
	beta := math.Asin(q / l.qP)

	dLon := longitude - l.lonOrig
	b := l.rq * math.Sqrt(2/(1+math.Sin(l.betaO)*math.Sin(beta)+math.Cos(l.betaO)*math.Cos(beta)*math.Cos(dLon)))

	easting := l.falseE + (b*l.d)*(math.Cos(beta)*math.Sin(dLon))
	northing := l.falseN + (b/l.d)*(math.Cos(l.betaO)*math.Sin(beta)-math.Sin(l.betaO)*math.Cos(beta)*math.Cos(dLon))
	return easting, northing
}

// InverseRad's latitude recovery truncates the eccentricity series at e^6
// (the same series the Albers inverse uses), so its error is of order e^8,
// around 1e-10 rad on the WGS 84 / GRS 80 ellipsoids.
func (l *LambertAzimuthalEqualArea) InverseRad(easting, northing float64) (float64, float64) {
	de, dn := easting-l.falseE, northing-l.falseN
	rho := math.Hypot(de/l.d, l.d*dn)
	c := 2 * math.Asin(rho/2/l.rq)

	betaP := math.Asin(math.Cos(c)*math.Sin(l.betaO) + (l.d*dn*math.Sin(c)*math.Cos(l.betaO))/rho)

	lon := l.lonOrig + math.Atan2(
		de*math.Sin(c),
		l.d*rho*math.Cos(l.betaO)*math.Cos(c)-l.d*l.d*dn*math.Sin(l.betaO)*math.Sin(c),
	)

	e2, e4, e6 := l.e2, l.e2*l.e2, l.e2*l.e2*l.e2
	lat := betaP +
		(e2/3+(31.0/180)*e4+(517.0/5040)*e6)*math.Sin(2*betaP) +
		((23.0/360)*e4+(251.0/3780)*e6)*math.Sin(4*betaP) +
		(761.0/45360)*e6*math.Sin(6*betaP)
	return lon, lat
}

var _ Projection = (*LambertAzimuthalEqualArea)(nil)
