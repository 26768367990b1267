package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GEOMAR-Kiel/Miniproj/projection"
)

func TestNewTablesAreEmptyButUsable(t *testing.T) {
	tbl := New()

	_, ok := tbl.GetProjection(4326)
	assert.False(t, ok)

	tbl.Projections[4326] = projection.Identity{}
	tbl.Names[4326] = "WGS 84"
	tbl.EllipsoidsByCRS[4326] = 7030
	tbl.Areas[4326] = []Area{{Name: "World", WestBoundLon: -180, EastBoundLon: 180, SouthBoundLat: -90, NorthBoundLat: 90}}

	p, ok := tbl.GetProjection(4326)
	assert.True(t, ok)
	e, n := p.ForwardDeg(1, 2)
	assert.InDelta(t, 1, e, 1e-9)
	assert.InDelta(t, 2, n, 1e-9)

	name, ok := tbl.GetName(4326)
	assert.True(t, ok)
	assert.Equal(t, "WGS 84", name)

	code, ok := tbl.GetEllipsoidCode(4326)
	assert.True(t, ok)
	assert.EqualValues(t, 7030, code)

	areas, ok := tbl.GetAreas(4326)
	assert.True(t, ok)
	assert.Len(t, areas, 1)
}
