package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// PseudoMercatorParams are the EPSG:1024 named inputs, angles in radians.
type PseudoMercatorParams struct {
	LonOrig, LatOrig, FalseE, FalseN float64
}

// PseudoMercator implements EPSG method 1024 (Popular Visualisation Pseudo-
// Mercator), the web-map projection that applies the spherical Mercator
// formula to an ellipsoidal datum's geographic coordinates directly.
type PseudoMercator struct {
	degreeWrapper

	ellipsoidA, lonOrig, falseE, falseN float64
}

func NewPseudoMercator(ell ellipsoid.Ellipsoid, p PseudoMercatorParams) *PseudoMercator {
	m := &PseudoMercator{
		ellipsoidA: ell.A(),
		lonOrig:    p.LonOrig,
		falseE:     p.FalseE,
		falseN:     p.FalseN,
	}
	m.degreeWrapper = degreeWrapper{rad: m}
	return m
}

func (m *PseudoMercator) ForwardRad(longitude, latitude float64) (float64, float64) {
	easting := m.falseE + m.ellipsoidA*(longitude-m.lonOrig)
	northing := m.falseN + m.ellipsoidA*math.Log(math.Tan(math.Pi/4+latitude/2))
	return easting, northing
}

func (m *PseudoMercator) InverseRad(easting, northing float64) (float64, float64) {
	d := (m.falseN - northing) / m.ellipsoidA
	lon := (easting-m.falseE)/m.ellipsoidA + m.lonOrig
	lat := math.Pi/2 - 2*math.Atan(math.Exp(d))
	return lon, lat
}

var _ Projection = (*PseudoMercator)(nil)
