package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `
START TRANSACTION;
CREATE TABLE epsg_ellipsoid (
  ellipsoid_code INTEGER NOT NULL,
  ellipsoid_name VARCHAR(80) NOT NULL,
  semi_major_axis DOUBLE NOT NULL,
  inv_flattening DOUBLE
);
INSERT INTO epsg_ellipsoid (ellipsoid_code, ellipsoid_name, semi_major_axis, inv_flattening) VALUES
(7030, 'WGS 84', 6378137, 298.257223563),
(7034, 'Clarke 1880', 6378249.145, NULL);
COMMIT;
DROP TABLE IF EXISTS epsg_scratch;
`

func TestParseBasicDump(t *testing.T) {
	db, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	table, ok := db.Table("epsg_ellipsoid")
	require.True(t, ok)
	assert.Equal(t, 2, table.Rows())

	rows, err := table.GetRows([]string{"ellipsoid_code", "ellipsoid_name", "semi_major_axis", "inv_flattening"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(7030), rows[0][0].Int)
	assert.Equal(t, "WGS 84", rows[0][1].Str)
	assert.InDelta(t, 6378137.0, rows[0][2].Dbl, 1e-9)
	assert.InDelta(t, 298.257223563, rows[0][3].Dbl, 1e-9)

	assert.Equal(t, int64(7034), rows[1][0].Int)
	assert.Nil(t, rows[1][3])
}

func TestGetRowWhereI64(t *testing.T) {
	db, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)
	table, _ := db.Table("epsg_ellipsoid")

	row, ok := table.GetRowWhereI64("ellipsoid_code", 7034, []string{"ellipsoid_name"})
	require.True(t, ok)
	assert.Equal(t, "Clarke 1880", row[0].Str)

	_, ok = table.GetRowWhereI64("ellipsoid_code", 9999, []string{"ellipsoid_name"})
	assert.False(t, ok)
}

func TestDropTableRemovesTable(t *testing.T) {
	dump := "CREATE TABLE epsg_scratch (x INTEGER NOT NULL);\nDROP TABLE IF EXISTS epsg_scratch;\n"
	db, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	_, ok := db.Table("epsg_scratch")
	assert.False(t, ok)
}

func TestNegativeNumberValue(t *testing.T) {
	dump := "CREATE TABLE t (v DOUBLE NOT NULL);\nINSERT INTO t VALUES (-12.5);\n"
	db, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	table, _ := db.Table("t")
	rows, err := table.GetRows([]string{"v"})
	require.NoError(t, err)
	assert.InDelta(t, -12.5, rows[0][0].Dbl, 1e-9)
}
