package helmert

// PointVector is the Molodensky-Badekas transformation in the Position
// Vector convention: a PositionVector rotated and scaled about a fixed
// evaluation point (XP, YP, ZP) rather than the coordinate origin, so the
// translation no longer has to absorb the effect of a rotation lever arm
// far from the area of interest.
type PointVector struct {
	M              float64
	RX, RY, RZ     float64
	XP, YP, ZP     float64
	TX, TY, TZ     float64
}

func (m PointVector) Transform(from GeocentricCoordinate) GeocentricCoordinate {
	xs := from.X - m.XP
	ys := from.Y - m.YP
	zs := from.Z - m.ZP
	return GeocentricCoordinate{
		X: m.M*(xs-ys*m.RZ+zs*m.RY) + m.TX + m.XP,
		Y: m.M*(xs*m.RZ+ys-zs*m.RX) + m.TY + m.YP,
		Z: m.M*(ys*m.RX-xs*m.RY+zs) + m.TZ + m.ZP,
	}
}

// CoordinateFramePoint is the Molodensky-Badekas transformation in the
// Coordinate Frame convention.
type CoordinateFramePoint struct {
	M          float64
	RX, RY, RZ float64
	XP, YP, ZP float64
	TX, TY, TZ float64
}

func (m CoordinateFramePoint) Transform(from GeocentricCoordinate) GeocentricCoordinate {
	xs := from.X - m.XP
	ys := from.Y - m.YP
	zs := from.Z - m.ZP
	return GeocentricCoordinate{
		X: m.M*(xs+ys*m.RZ-zs*m.RY) + m.TX + m.XP,
		Y: m.M*(ys-xs*m.RZ+zs*m.RX) + m.TY + m.YP,
		Z: m.M*(xs*m.RY-ys*m.RX+zs) + m.TZ + m.ZP,
	}
}
