// Package helmert implements the Helmert and Molodensky-Badekas datum
// transformations between geocentric coordinate frames. Neither the
// registry compiler nor the projection dispatch calls into this package:
// the registry rejects any datum whose prime meridian is not Greenwich,
// and every coordinate operation wired into the dispatch tables is a
// projection, not a datum transformation. It is kept as a standalone,
// fully-tested library for callers who resolve a seven- or
// fifteen-parameter transformation themselves.
package helmert

// GeocentricCoordinate is a Cartesian Earth-centred coordinate in metres.
type GeocentricCoordinate struct {
	X, Y, Z float64
}

// PositionVector is the Helmert 7-parameter transformation in the
// Position Vector convention: a scale change, a small rotation about
// each axis, and a translation.
type PositionVector struct {
	M              float64
	RX, RY, RZ     float64
	TX, TY, TZ     float64
}

func (h PositionVector) Transform(from GeocentricCoordinate) GeocentricCoordinate {
	xs, ys, zs := from.X, from.Y, from.Z
	return GeocentricCoordinate{
		X: h.M*(xs-ys*h.RZ+zs*h.RY) + h.TX,
		Y: h.M*(xs*h.RZ+ys-zs*h.RX) + h.TY,
		Z: h.M*(ys*h.RX-xs*h.RY+zs) + h.TZ,
	}
}

// PositionVectorTimeDependent adds linear rates to every PositionVector
// parameter plus a reference epoch; At resolves it to a plain
// PositionVector for a given epoch.
type PositionVectorTimeDependent struct {
	RX, RY, RZ         float64
	TX, TY, TZ         float64
	DS                 float64
	DRX, DRY, DRZ      float64
	DTX, DTY, DTZ      float64
	DDS                float64
	ReferenceEpoch     float64
}

func (h PositionVectorTimeDependent) At(epoch float64) PositionVector {
	dt := epoch - h.ReferenceEpoch
	return PositionVector{
		M:  1 + h.DS + h.DDS*dt,
		RX: h.RX + h.DRX*dt,
		RY: h.RY + h.DRY*dt,
		RZ: h.RZ + h.DRZ*dt,
		TX: h.TX + h.DTX*dt,
		TY: h.TY + h.DTY*dt,
		TZ: h.TZ + h.DTZ*dt,
	}
}

// CoordinateFrame is the Helmert 7-parameter transformation in the
// Coordinate Frame convention: identical to PositionVector save for the
// sign of the rotation terms.
type CoordinateFrame struct {
	M          float64
	RX, RY, RZ float64
	TX, TY, TZ float64
}

func (h CoordinateFrame) Transform(from GeocentricCoordinate) GeocentricCoordinate {
	xs, ys, zs := from.X, from.Y, from.Z
	return GeocentricCoordinate{
		X: h.M*(xs+ys*h.RZ-zs*h.RY) + h.TX,
		Y: h.M*(ys-xs*h.RZ+zs*h.RX) + h.TY,
		Z: h.M*(xs*h.RY-ys*h.RX+zs) + h.TZ,
	}
}

// CoordinateFrameTimeDependent adds linear rates to every CoordinateFrame
// parameter plus a reference epoch; At resolves it to a plain
// CoordinateFrame for a given epoch.
type CoordinateFrameTimeDependent struct {
	RX, RY, RZ     float64
	TX, TY, TZ     float64
	DS             float64
	DRX, DRY, DRZ  float64
	DTX, DTY, DTZ  float64
	DDS            float64
	ReferenceEpoch float64
}

func (h CoordinateFrameTimeDependent) At(epoch float64) CoordinateFrame {
	dt := epoch - h.ReferenceEpoch
	return CoordinateFrame{
		M:  1 + h.DS + h.DDS*dt,
		RX: h.RX + h.DRX*dt,
		RY: h.RY + h.DRY*dt,
		RZ: h.RZ + h.DRZ*dt,
		TX: h.TX + h.DTX*dt,
		TY: h.TY + h.DTY*dt,
		TZ: h.TZ + h.DTZ*dt,
	}
}
