package projection

import "math"

// Identity is the zero-parameter projection used for geographic 2-D CRSes.
// A geographic 2-D CRS's native coordinate is already lon/lat in degrees,
// so its "projected" value and its degree-typed value coincide: the degree
// wrappers are a literal no-op, while the radian-domain methods carry the
// only real unit conversion (degrees stored <-> radians used by callers
// that work exclusively in radians).
type Identity struct{}

func (Identity) ForwardRad(lon, lat float64) (easting, northing float64) {
	return lon * 180 / math.Pi, lat * 180 / math.Pi
}

func (Identity) InverseRad(easting, northing float64) (lon, lat float64) {
	return easting * math.Pi / 180, northing * math.Pi / 180
}

func (Identity) ForwardDeg(lonDeg, latDeg float64) (easting, northing float64) {
	return lonDeg, latDeg
}

func (Identity) InverseDeg(easting, northing float64) (lonDeg, latDeg float64) {
	return easting, northing
}

var _ Projection = Identity{}
