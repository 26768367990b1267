package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// TransverseMercatorParams are the EPSG:9807 named inputs, angles in radians.
type TransverseMercatorParams struct {
	LonOrig, LatOrig, KOrig, FalseE, FalseN float64
}

const tmMaxIterations = 4

// TransverseMercator implements EPSG method 9807 (Karney/Krüger series, as
// per IOGP Publication 373-7-2).
type TransverseMercator struct {
	degreeWrapper

	e float64

	lonOrig, falseE, falseN, kOrig float64

	b                  float64
	h1, h2, h3, h4     float64
	mOrig              float64
	h1i, h2i, h3i, h4i float64
}

// NewTransverseMercator precomputes the series coefficients shared by every
// forward/inverse call.
func NewTransverseMercator(ell ellipsoid.Ellipsoid, p TransverseMercatorParams) *TransverseMercator {
	n := ell.F() / (2 - ell.F())
	b := (ell.A() / (1 + n)) * (1 + n*n/4 + n*n*n*n/64)

	h1 := n/2 - (2.0/3)*n*n + (5.0/16)*n*n*n + (41.0/180)*n*n*n*n
	h2 := (13.0/48)*n*n - (3.0/5)*n*n*n + (557.0/1440)*n*n*n*n
	h3 := (61.0/240)*n*n*n - (103.0/140)*n*n*n*n
	h4 := (49561.0 / 161280.0) * n * n * n * n

	var mOrig float64
	switch p.LatOrig {
	case 0:
		mOrig = 0
	case math.Pi / 2:
		mOrig = b * math.Pi / 2
	case -math.Pi / 2:
		mOrig = -b * math.Pi / 2
	default:
		qOrig := math.Asinh(math.Tan(p.LatOrig)) - ell.E()*math.Atanh(ell.E()*math.Sin(p.LatOrig))
		betaOrig := math.Atan(math.Sinh(qOrig))
		xi0 := betaOrig
		xi := xi0 +
			h1*math.Sin(2*xi0) +
			h2*math.Sin(4*xi0) +
			h3*math.Sin(6*xi0) +
			h4*math.Sin(8*xi0)
		mOrig = b * xi
	}

	h1i := n/2 - (2.0/3)*n*n + (37.0/96)*n*n*n - (1.0/360)*n*n*n*n
	h2i := (1.0/48)*n*n + (1.0/15)*n*n*n - (437.0/1440)*n*n*n*n
	h3i := (17.0/480)*n*n*n - (37.0/840)*n*n*n*n
	h4i := (4397.0 / 161280.0) * n * n * n * n

	t := &TransverseMercator{
		e:       ell.E(),
		lonOrig: p.LonOrig,
		falseE:  p.FalseE,
		falseN:  p.FalseN,
		kOrig:   p.KOrig,
		b:       b,
		h1:      h1, h2: h2, h3: h3, h4: h4,
		mOrig: mOrig,
		h1i:   h1i, h2i: h2i, h3i: h3i, h4i: h4i,
	}
	t.degreeWrapper = degreeWrapper{rad: t}
	return t
}

func (t *TransverseMercator) ForwardRad(longitude, latitude float64) (float64, float64) {
	q := math.Asinh(math.Tan(latitude)) - t.e*math.Atanh(t.e*math.Sin(latitude))
	beta := math.Atan(math.Sinh(q))
	eta0 := math.Atanh(math.Cos(beta) * math.Sin(longitude-t.lonOrig))
	xi0 := math.Asin(math.Sin(beta) * math.Cosh(eta0))

	xi := xi0 +
		t.h1*math.Sin(2*xi0)*math.Cosh(2*eta0) +
		t.h2*math.Sin(4*xi0)*math.Cosh(4*eta0) +
		t.h3*math.Sin(6*xi0)*math.Cosh(6*eta0) +
		t.h4*math.Sin(8*xi0)*math.Cosh(8*eta0)

	eta := eta0 +
		t.h1*math.Cos(2*xi0)*math.Sinh(2*eta0) +
		t.h2*math.Cos(4*xi0)*math.Sinh(4*eta0) +
		t.h3*math.Cos(6*xi0)*math.Sinh(6*eta0) +
		t.h4*math.Cos(8*xi0)*math.Sinh(8*eta0)

	return t.falseE + t.kOrig*t.b*eta, t.falseN + t.kOrig*(t.b*xi-t.mOrig)
}

func (t *TransverseMercator) InverseRad(easting, northing float64) (float64, float64) {
	etaP := (easting - t.falseE) / (t.b * t.kOrig)
	xiP := ((northing - t.falseN) + t.kOrig*t.mOrig) / (t.b * t.kOrig)

	xi0P := xiP - (t.h1i*math.Sin(2*xiP)*math.Cosh(2*etaP) +
		t.h2i*math.Sin(4*xiP)*math.Cosh(4*etaP) +
		t.h3i*math.Sin(6*xiP)*math.Cosh(6*etaP) +
		t.h4i*math.Sin(8*xiP)*math.Cosh(8*etaP))

	eta0P := etaP - (t.h1i*math.Cos(2*xiP)*math.Sinh(2*etaP) +
		t.h2i*math.Cos(4*xiP)*math.Sinh(4*etaP) +
		t.h3i*math.Cos(6*xiP)*math.Sinh(6*etaP) +
		t.h4i*math.Cos(8*xiP)*math.Sinh(8*etaP))

	betaP := math.Asin(math.Sin(xi0P) / math.Cosh(eta0P))
	qP := math.Asinh(math.Tan(betaP))
	qPP := qP + t.e*math.Atanh(t.e*math.Tanh(qP))
	for i := 0; i < tmMaxIterations; i++ {
		qPP = qP + t.e*math.Atanh(t.e*math.Tanh(qPP))
	}

	lon := t.lonOrig + math.Asin(math.Tanh(eta0P)/math.Cos(betaP))
	lat := math.Atan(math.Sinh(qPP))
	return lon, lat
}

var _ Projection = (*TransverseMercator)(nil)
