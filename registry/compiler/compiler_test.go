package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEOMAR-Kiel/Miniproj/registry/reader"
)

// sampleRegistry is a small but complete snapshot: one geographic 2D CRS
// (WGS 84), one projected CRS on UTM zone 32N (Transverse Mercator), one
// projected CRS whose conversion cites an unsupported operation method (to
// exercise the skip path), and a usage/extent join for the projected CRS.
const sampleRegistry = `
CREATE TABLE epsg_unitofmeasure (
  uom_code INTEGER NOT NULL,
  factor_b DOUBLE NOT NULL,
  factor_c DOUBLE NOT NULL
);
INSERT INTO epsg_unitofmeasure (uom_code, factor_b, factor_c) VALUES
(9001, 1, 1),
(9102, 3.14159265358979, 180),
(9201, 1, 1);

CREATE TABLE epsg_ellipsoid (
  ellipsoid_code INTEGER NOT NULL,
  semi_major_axis DOUBLE NOT NULL,
  semi_minor_axis DOUBLE,
  inv_flattening DOUBLE,
  uom_code INTEGER NOT NULL
);
INSERT INTO epsg_ellipsoid (ellipsoid_code, semi_major_axis, semi_minor_axis, inv_flattening, uom_code) VALUES
(7030, 6378137, NULL, 298.257223563, 9001);

CREATE TABLE epsg_datum (
  datum_code INTEGER NOT NULL,
  ellipsoid_code INTEGER NOT NULL,
  prime_meridian_code INTEGER NOT NULL
);
INSERT INTO epsg_datum (datum_code, ellipsoid_code, prime_meridian_code) VALUES
(6326, 7030, 8901);

CREATE TABLE epsg_coordinatereferencesystem (
  coord_ref_sys_code INTEGER NOT NULL,
  coord_ref_sys_name VARCHAR(80) NOT NULL,
  coord_ref_sys_kind VARCHAR(24) NOT NULL,
  datum_code INTEGER,
  base_crs_code INTEGER,
  projection_conv_code INTEGER
);
INSERT INTO epsg_coordinatereferencesystem
  (coord_ref_sys_code, coord_ref_sys_name, coord_ref_sys_kind, datum_code, base_crs_code, projection_conv_code) VALUES
(4326, 'WGS 84', 'geographic 2D', 6326, NULL, NULL),
(32632, 'WGS 84 / UTM zone 32N', 'projected', NULL, 4326, 16032),
(99999, 'Unsupported Projection', 'projected', NULL, 4326, 16099);

CREATE TABLE epsg_coordoperation (
  coord_op_code INTEGER NOT NULL,
  coord_op_method_code INTEGER NOT NULL
);
INSERT INTO epsg_coordoperation (coord_op_code, coord_op_method_code) VALUES
(16032, 9807),
(16099, 77777);

CREATE TABLE epsg_coordoperationparamvalue (
  coord_op_code INTEGER NOT NULL,
  parameter_code INTEGER NOT NULL,
  parameter_value DOUBLE NOT NULL,
  uom_code INTEGER NOT NULL
);
INSERT INTO epsg_coordoperationparamvalue (coord_op_code, parameter_code, parameter_value, uom_code) VALUES
(16032, 8802, 9, 9102),
(16032, 8801, 0, 9102),
(16032, 8805, 0.9996, 9201),
(16032, 8806, 500000, 9001),
(16032, 8807, 0, 9001);

CREATE TABLE epsg_extent (
  extent_code INTEGER NOT NULL,
  extent_name VARCHAR(80) NOT NULL,
  bbox_west_bound_lon DOUBLE NOT NULL,
  bbox_east_bound_lon DOUBLE NOT NULL,
  bbox_south_bound_lat DOUBLE NOT NULL,
  bbox_north_bound_lat DOUBLE NOT NULL
);
INSERT INTO epsg_extent
  (extent_code, extent_name, bbox_west_bound_lon, bbox_east_bound_lon, bbox_south_bound_lat, bbox_north_bound_lat) VALUES
(1234, 'Between 6E and 12E, northern hemisphere', 6, 12, 0, 84);

CREATE TABLE epsg_usage (
  usage_code INTEGER NOT NULL,
  object_table_name VARCHAR(80) NOT NULL,
  object_code INTEGER NOT NULL,
  extent_code INTEGER NOT NULL
);
INSERT INTO epsg_usage (usage_code, object_table_name, object_code, extent_code) VALUES
(1, 'epsg_coordinatereferencesystem', 32632, 1234);
`

func TestCompileGeographicCRSIsIdentity(t *testing.T) {
	db, err := reader.Parse(strings.NewReader(sampleRegistry))
	require.NoError(t, err)

	out, err := Compile(db)
	require.NoError(t, err)

	p, ok := out.GetProjection(4326)
	require.True(t, ok)
	e, n := p.ForwardDeg(10.183034, 54.327389)
	assert.InDelta(t, 10.183034, e, 1e-9)
	assert.InDelta(t, 54.327389, n, 1e-9)

	assert.Equal(t, "WGS 84", mustName(t, out, 4326))
}

func TestCompileProjectedCRSResolvesTransverseMercator(t *testing.T) {
	db, err := reader.Parse(strings.NewReader(sampleRegistry))
	require.NoError(t, err)

	out, err := Compile(db)
	require.NoError(t, err)

	p, ok := out.GetProjection(32632)
	require.True(t, ok)
	e, n := p.ForwardDeg(10.183034, 54.327389)
	assert.InDelta(t, 576935.86, e, 0.01)
	assert.InDelta(t, 6020593.46, n, 0.01)

	ellCode, ok := out.GetEllipsoidCode(32632)
	require.True(t, ok)
	assert.EqualValues(t, 7030, ellCode)

	ell, ok := out.GetEllipsoid(ellCode)
	require.True(t, ok)
	assert.InDelta(t, 6378137.0, ell.A(), 1e-6)

	assert.Equal(t, "WGS 84 / UTM zone 32N", mustName(t, out, 32632))

	areas, ok := out.GetAreas(32632)
	require.True(t, ok)
	require.Len(t, areas, 1)
	assert.Equal(t, "Between 6E and 12E, northern hemisphere", areas[0].Name)
	assert.InDelta(t, 6, areas[0].WestBoundLon, 1e-9)
	assert.InDelta(t, 84, areas[0].NorthBoundLat, 1e-9)
}

func TestCompileSkipsUnsupportedMethod(t *testing.T) {
	db, err := reader.Parse(strings.NewReader(sampleRegistry))
	require.NoError(t, err)

	out, err := Compile(db)
	require.NoError(t, err)

	_, ok := out.GetProjection(99999)
	assert.False(t, ok)
}

func mustName(t *testing.T, out interface {
	GetName(uint32) (string, bool)
}, code uint32) string {
	t.Helper()
	name, ok := out.GetName(code)
	require.True(t, ok)
	return name
}
