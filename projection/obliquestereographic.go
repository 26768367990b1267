package projection

import (
	"math"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
)

// ObliqueStereographicParams are the EPSG:9809 named inputs, angles in radians.
// LatOrig must be north of the equator; the conformal-latitude series below
// assumes it.
type ObliqueStereographicParams struct {
	LonOrig, LatOrig, KOrig, FalseE, FalseN float64
}

const obliqueStereographicMaxIterations = 4

// ObliqueStereographic implements EPSG method 9809. The inverse recovers
// conformal latitude chi in closed form, then iterates 4 times on the
// isometric-latitude relation to recover geographic latitude.
type ObliqueStereographic struct {
	degreeWrapper

	falseE, falseN float64
	chiOrig        float64
	rKOrig2        float64
	c              float64
	ellipsoidE     float64
	ellipsoidESq   float64
	n              float64
	lonOrig        float64
	g, h           float64
}

func NewObliqueStereographic(ell ellipsoid.Ellipsoid, p ObliqueStereographicParams) *ObliqueStereographic {
	rhoOrig := ell.Rho(p.LatOrig)
	nuOrig := ell.Nu(p.LatOrig)
	r := math.Sqrt(rhoOrig * nuOrig)

	e, e2 := ell.E(), ell.ESquared()
	n := math.Sqrt(1 + (e2*math.Pow(math.Cos(p.LatOrig), 4))/(1-e2))

	s1 := (1 + math.Sin(p.LatOrig)) / (1 - math.Sin(p.LatOrig))
	s2 := (1 - e*math.Sin(p.LatOrig)) / (1 + e*math.Sin(p.LatOrig))
	w1 := math.Pow(s1*math.Pow(s2, e), n)
	chiOOSin := (w1 - 1) / (w1 + 1)
	c := (n + math.Sin(p.LatOrig)) * (1 - chiOOSin) / ((n - math.Sin(p.LatOrig)) * (1 + chiOOSin))
	w2 := c * w1
	chiOrig := math.Asin((w2 - 1) / (w2 + 1))

	g := 2 * r * p.KOrig * math.Tan(math.Pi/4-chiOrig/2)
	h := 4*r*p.KOrig*math.Tan(chiOrig) + g

	o := &ObliqueStereographic{
		falseE: p.FalseE, falseN: p.FalseN,
		chiOrig:      chiOrig,
		rKOrig2:      r * p.KOrig * 2,
		c:            c,
		ellipsoidE:   e,
		ellipsoidESq: e2,
		n:            n,
		lonOrig:      p.LonOrig,
		g:            g, h: h,
	}
	o.degreeWrapper = degreeWrapper{rad: o}
	return o
}

func (o *ObliqueStereographic) ForwardRad(lon, lat float64) (float64, float64) {
	sa := (1 + math.Sin(lat)) / (1 - math.Sin(lat))
	sb := (1 - o.ellipsoidE*math.Sin(lat)) / (1 + o.ellipsoidE*math.Sin(lat))
	dLon := o.n * (lon - o.lonOrig)
	w := o.c * math.Pow(sa*math.Pow(sb, o.ellipsoidE), o.n)
	chi := math.Asin((w - 1) / (w + 1))

	b := 1 + math.Sin(chi)*math.Sin(o.chiOrig) + math.Cos(chi)*math.Cos(o.chiOrig)*math.Cos(dLon)
	easting := o.falseE + o.rKOrig2*math.Cos(chi)*math.Sin(dLon)/b
	northing := o.falseN + o.rKOrig2*(math.Sin(chi)*math.Cos(o.chiOrig)-math.Cos(chi)*math.Sin(o.chiOrig)*math.Cos(dLon))/b
	return easting, northing
}

func (o *ObliqueStereographic) InverseRad(x, y float64) (float64, float64) {
	de, dn := x-o.falseE, y-o.falseN
	i := math.Atan2(de, o.h+dn)
	j := math.Atan2(de, o.g-dn) - i
	chi := o.chiOrig + 2*math.Atan((dn-de*math.Tan(j/2))/o.rKOrig2)
	psi := 0.5 * math.Log((1+math.Sin(chi))/(o.c*(1-math.Sin(chi)))) / o.n

	phi := 2*math.Atan(math.Exp(psi)) - math.Pi/2
	for iter := 0; iter < obliqueStereographicMaxIterations; iter++ {
		psiP := math.Log(math.Tan(phi/2+math.Pi/4) * math.Pow((1-o.ellipsoidE*math.Sin(phi))/(1+o.ellipsoidE*math.Sin(phi)), o.ellipsoidE/2))
		phi = phi - (psiP-psi)*math.Cos(phi)*(1-o.ellipsoidESq*math.Sin(phi)*math.Sin(phi))/(1-o.ellipsoidESq)
	}

	dLambda := j + 2*i
	return dLambda/o.n + o.lonOrig, phi
}

var _ Projection = (*ObliqueStereographic)(nil)
