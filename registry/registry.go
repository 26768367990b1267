// Package registry holds the dispatch structures produced by compiling an
// EPSG registry snapshot: per-CRS projections, ellipsoids, names and areas
// of use, plus the ellipsoid catalogue keyed by its own EPSG code. The
// snapshot itself is read by registry/reader and turned into a Tables by
// registry/compiler; this package only defines the shape both agree on.
package registry

import (
	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/GEOMAR-Kiel/Miniproj/projection"
)

// Area is a CRS's bounding box, drawn from epsg_extent rows joined through
// epsg_usage.
type Area struct {
	Name                                                      string
	WestBoundLon, EastBoundLon, SouthBoundLat, NorthBoundLat float64
}

// Tables is the full set of generated dispatch structures: PROJECTIONS,
// ELLIPSOIDS_BY_CRS, NAMES, AREAS and ELLIPSOIDS. Once built, it is
// immutable and safe to share across goroutines without locking.
type Tables struct {
	Projections     map[uint32]projection.Projection
	EllipsoidsByCRS map[uint32]uint32
	Names           map[uint32]string
	Areas           map[uint32][]Area
	Ellipsoids      map[uint32]ellipsoid.Ellipsoid
}

// New returns an empty Tables with all maps initialized, ready for a
// compiler to populate.
func New() *Tables {
	return &Tables{
		Projections:     make(map[uint32]projection.Projection),
		EllipsoidsByCRS: make(map[uint32]uint32),
		Names:           make(map[uint32]string),
		Areas:           make(map[uint32][]Area),
		Ellipsoids:      make(map[uint32]ellipsoid.Ellipsoid),
	}
}

// GetProjection returns the Projection registered for an EPSG CRS code.
func (t *Tables) GetProjection(code uint32) (projection.Projection, bool) {
	p, ok := t.Projections[code]
	return p, ok
}

// GetEllipsoidCode returns the EPSG ellipsoid code backing a CRS. It is
// undefined for a CRS that resolves to the identity projection.
func (t *Tables) GetEllipsoidCode(crsCode uint32) (uint32, bool) {
	code, ok := t.EllipsoidsByCRS[crsCode]
	return code, ok
}

// GetEllipsoid returns the constructed Ellipsoid for an EPSG ellipsoid code.
func (t *Tables) GetEllipsoid(ellipsoidCode uint32) (ellipsoid.Ellipsoid, bool) {
	e, ok := t.Ellipsoids[ellipsoidCode]
	return e, ok
}

// GetName returns the human-readable name of an EPSG CRS code.
func (t *Tables) GetName(code uint32) (string, bool) {
	name, ok := t.Names[code]
	return name, ok
}

// GetAreas returns the areas of use attached to an EPSG CRS code.
func (t *Tables) GetAreas(code uint32) ([]Area, bool) {
	areas, ok := t.Areas[code]
	return areas, ok
}
