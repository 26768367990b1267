// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ellipsoid models a reference ellipsoid and the derived
// quantities used throughout the projection algorithms.
package ellipsoid

import "math"

// Ellipsoid is an immutable reference ellipsoid: semi-major axis, semi-minor
// axis, flattening and eccentricity, all derived once at construction time
// so projection constructors never recompute them.
type Ellipsoid struct {
	a, b, f, e, e2 float64
}

// FromAB constructs an Ellipsoid from its semi-major and semi-minor axes.
func FromAB(a, b float64) Ellipsoid {
	f := (a - b) / a
	return fromAF(a, f)
}

// FromAInvF constructs an Ellipsoid from its semi-major axis and inverse flattening.
func FromAInvF(a, invF float64) Ellipsoid {
	return fromAF(a, 1/invF)
}

func fromAF(a, f float64) Ellipsoid {
	e2 := 2*f - f*f
	return Ellipsoid{
		a:  a,
		b:  a * (1 - f),
		f:  f,
		e:  math.Sqrt(e2),
		e2: e2,
	}
}

// A returns the semi-major axis in metres.
func (e Ellipsoid) A() float64 { return e.a }

// B returns the semi-minor axis in metres.
func (e Ellipsoid) B() float64 { return e.b }

// F returns the flattening.
func (e Ellipsoid) F() float64 { return e.f }

// E returns the eccentricity.
func (e Ellipsoid) E() float64 { return e.e }

// ESquared returns the eccentricity squared.
func (e Ellipsoid) ESquared() float64 { return e.e2 }

// Rho returns the meridional radius of curvature at the given latitude, in radians.
func (e Ellipsoid) Rho(lat float64) float64 {
	s := math.Sin(lat)
	return e.a * (1 - e.e2) / math.Pow(1-e.e2*s*s, 1.5)
}

// Nu returns the prime-vertical radius of curvature at the given latitude, in radians.
func (e Ellipsoid) Nu(lat float64) float64 {
	s := math.Sin(lat)
	return e.a / math.Sqrt(1-e.e2*s*s)
}

// AuthalicRadius returns the radius of the sphere with the same surface area as the ellipsoid.
func (e Ellipsoid) AuthalicRadius() float64 {
	return e.a * math.Sqrt(0.5*(1-((1-e.e2)/(2*e.e))*math.Log((1-e.e)/(1+e.e))))
}

// ConformalRadius returns the radius of the conformal sphere at the given latitude.
func (e Ellipsoid) ConformalRadius(lat float64) float64 {
	return math.Sqrt(e.Rho(lat) * e.Nu(lat))
}

// ToGeocentric converts geographic (lon, lat, h), all in radians/metres, to
// geocentric (x, y, z) in metres.
func (e Ellipsoid) ToGeocentric(lon, lat, h float64) (x, y, z float64) {
	nu := e.Nu(lat)
	r := nu + h
	cosLat, sinLat := math.Cos(lat), math.Sin(lat)
	x = r * cosLat * math.Cos(lon)
	y = r * cosLat * math.Sin(lon)
	z = ((1-e.e2)*nu + h) * sinLat
	return
}

// FromGeocentric converts geocentric (x, y, z), in metres, to geographic
// (lon, lat, h), closed-form Bowring-variant inverse.
func (e Ellipsoid) FromGeocentric(x, y, z float64) (lon, lat, h float64) {
	p := math.Hypot(x, y)
	eps := e.e2 / (1 - e.e2)
	q := math.Atan2(z*e.a, p*e.b)
	sinQ, cosQ := math.Sin(q), math.Cos(q)
	lat = math.Atan2(z+eps*e.b*sinQ*sinQ*sinQ, p-e.e2*e.a*cosQ*cosQ*cosQ)
	lon = math.Atan2(y, x)
	h = p/math.Cos(lat) - e.Nu(lat)
	return
}

// ToGeocentricDeg is the degree-typed wrapper of ToGeocentric.
func (e Ellipsoid) ToGeocentricDeg(lonDeg, latDeg, h float64) (x, y, z float64) {
	return e.ToGeocentric(lonDeg*math.Pi/180, latDeg*math.Pi/180, h)
}

// FromGeocentricDeg is the degree-typed wrapper of FromGeocentric.
func (e Ellipsoid) FromGeocentricDeg(x, y, z float64) (lonDeg, latDeg, h float64) {
	lon, lat, h := e.FromGeocentric(x, y, z)
	return lon * 180 / math.Pi, lat * 180 / math.Pi, h
}
