package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// PolarStereographicAParams are the EPSG:9810 named inputs, angles in radians.
type PolarStereographicAParams struct {
	LonOrig, LatOrig, KOrig, FalseE, FalseN float64
}

// PolarStereographicA implements EPSG method 9810 (variant A). Forward and
// inverse each branch on the sign of LatOrig, mirroring the t/rho formula
// pair that differ only in which of (1+e*sinφ)/(1-e*sinφ) is numerator vs
// denominator. The inverse recovers latitude via the non-iterative
// eighth-power eccentricity series of Guidance Note 7-2.
type PolarStereographicA struct {
	degreeWrapper

	tRhoFactor float64

	phi2ChiSinFactor, phi4ChiSinFactor, phi6ChiSinFactor, phi8ChiSinFactor float64

	latOrig, lonOrig, falseE, falseN float64
	ellE                             float64
}

func NewPolarStereographicA(ell ellipsoid.Ellipsoid, p PolarStereographicAParams) *PolarStereographicA {
	e, e2 := ell.E(), ell.ESquared()
	tRhoFactor := math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2 * ell.A() * p.KOrig)

	ps := &PolarStereographicA{
		tRhoFactor:        tRhoFactor,
		phi2ChiSinFactor:  e2/2 + 5*e2*e2/24 + e2*e2*e2/12 + 13*e2*e2*e2*e2/360,
		phi4ChiSinFactor:  7*e2*e2/48 + 29*e2*e2*e2/240 + 811*e2*e2*e2*e2/11520,
		phi6ChiSinFactor:  7*e2*e2*e2/120 + 81*e2*e2*e2*e2/1120,
		phi8ChiSinFactor:  4279 * e2 * e2 * e2 * e2 / 161280,
		latOrig:           p.LatOrig,
		lonOrig:           p.LonOrig,
		falseE:            p.FalseE,
		falseN:            p.FalseN,
		ellE:              e,
	}
	ps.degreeWrapper = degreeWrapper{rad: ps}
	return ps
}

func (ps *PolarStereographicA) ForwardRad(longitude, latitude float64) (float64, float64) {
	dLon := longitude - ps.lonOrig
	if ps.latOrig > 0 {
		t := math.Tan(math.Pi/4-latitude/2) * math.Pow((1+ps.ellE*math.Sin(latitude))/(1-ps.ellE*math.Sin(latitude)), ps.ellE/2)
		rho := t / ps.tRhoFactor
		return ps.falseE + rho*math.Sin(dLon), ps.falseN - rho*math.Cos(dLon)
	}
	t := math.Tan(math.Pi/4+latitude/2) / math.Pow((1+ps.ellE*math.Sin(latitude))/(1-ps.ellE*math.Sin(latitude)), ps.ellE/2)
	rho := t / ps.tRhoFactor
	return ps.falseE + rho*math.Sin(dLon), ps.falseN + rho*math.Cos(dLon)
}

func (ps *PolarStereographicA) InverseRad(easting, northing float64) (float64, float64) {
	rho := math.Hypot(easting-ps.falseE, northing-ps.falseN)
	t := rho * ps.tRhoFactor

	var chi, lon float64
	if ps.latOrig > 0 {
		chi = math.Pi/2 - 2*math.Atan(t)
		lon = ps.lonOrig + math.Atan2(easting-ps.falseE, ps.falseN-northing)
	} else {
		chi = 2*math.Atan(t) - math.Pi/2
		lon = ps.lonOrig + math.Atan2(easting-ps.falseE, northing-ps.falseN)
	}

	phi := chi +
		ps.phi2ChiSinFactor*math.Sin(2*chi) +
		ps.phi4ChiSinFactor*math.Sin(4*chi) +
		ps.phi6ChiSinFactor*math.Sin(6*chi) +
		ps.phi8ChiSinFactor*math.Sin(8*chi)
	return lon, phi
}

var _ Projection = (*PolarStereographicA)(nil)
