// Package compiler resolves a parsed EPSG registry snapshot (see
// registry/reader) into the dispatch tables consumed at runtime: a
// projection and ellipsoid per coordinate reference system, a name and
// area of use per system, and the ellipsoid catalogue itself. The steps
// mirror the original registry build pipeline: load units, build
// ellipsoids, resolve datums and datum ensembles, classify coordinate
// reference systems, collect operation parameters, and finally construct
// one dispatch entry per projected CRS whose method code is supported.
package compiler

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/GEOMAR-Kiel/Miniproj/ellipsoid"
	"github.com/GEOMAR-Kiel/Miniproj/projection"
	"github.com/GEOMAR-Kiel/Miniproj/registry"
	"github.com/GEOMAR-Kiel/Miniproj/registry/reader"
)

// epsg9110ToRad decodes the registry's sexagesimal-as-decimal angle
// encoding: degrees in the integer part, minutes in the first two
// fractional digits, seconds in the next two. It is a lossy encoding
// (not every such decimal is exactly representable as IEEE 754) and is
// reproduced verbatim to stay bit-compatible with the registry's own
// values rather than "fixed".
func epsg9110ToRad(val float64) float64 {
	sign := 1.0
	if val < 0 {
		sign = -1.0
	}
	a := math.Abs(val)
	wholeDeg := math.Trunc(a)
	frac := a - wholeDeg
	arcmins := math.Trunc(frac * 100)
	arcsecs := (frac*100 - arcmins) * 100
	return sign * (wholeDeg + arcmins/60 + arcsecs/3600) * math.Pi / 180
}

type unit struct {
	factorB, factorC float64
}

func loadUnits(db *reader.Database) (map[uint32]unit, error) {
	table, ok := db.Table("epsg_unitofmeasure")
	if !ok {
		return nil, errors.New("no epsg_unitofmeasure table")
	}
	rows, err := table.GetRows([]string{"uom_code", "factor_b", "factor_c"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_unitofmeasure")
	}

	units := make(map[uint32]unit, len(rows))
	for _, row := range rows {
		code, okCode := asUint32(row[0])
		fb, okB := asFloat(row[1])
		fc, okC := asFloat(row[2])
		if !okCode || !okB || !okC {
			continue
		}
		units[code] = unit{factorB: fb, factorC: fc}
	}
	return units, nil
}

// loadEllipsoids builds the ELLIPSOIDS table: EPSG ellipsoid code ->
// Ellipsoid, normalizing semi-axis lengths by their unit-of-measure factor.
func loadEllipsoids(db *reader.Database, units map[uint32]unit) (map[uint32]ellipsoid.Ellipsoid, error) {
	table, ok := db.Table("epsg_ellipsoid")
	if !ok {
		return nil, errors.New("no epsg_ellipsoid table")
	}
	rows, err := table.GetRows([]string{
		"ellipsoid_code", "semi_major_axis", "semi_minor_axis", "inv_flattening", "uom_code",
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_ellipsoid")
	}

	ellipsoids := make(map[uint32]ellipsoid.Ellipsoid, len(rows))
	for _, row := range rows {
		code, okCode := asUint32(row[0])
		a, okA := asFloat(row[1])
		uomCode, okUom := asUint32(row[4])
		if !okCode || !okA || !okUom {
			continue
		}
		u, ok := units[uomCode]
		if !ok {
			logrus.WithField("ellipsoid_code", code).Warn("skipping ellipsoid: unit of measure does not resolve")
			continue
		}
		aNorm := a * u.factorB / u.factorC

		if b, okB := asFloat(row[2]); okB {
			ellipsoids[code] = ellipsoid.FromAB(aNorm, b*u.factorB/u.factorC)
			continue
		}
		if fInv, okFInv := asFloat(row[3]); okFInv {
			ellipsoids[code] = ellipsoid.FromAInvF(aNorm, fInv)
			continue
		}
		logrus.WithField("ellipsoid_code", code).Warn("skipping ellipsoid: neither semi_minor_axis nor inv_flattening given")
	}
	return ellipsoids, nil
}

type crsKind int

const (
	crsGeographic2D crsKind = iota
	crsProjected
)

type crsEntry struct {
	kind       crsKind
	datum      uint32 // geographic 2D
	conversion uint32 // projected
	base       uint32 // projected
}

func loadCRS(db *reader.Database) (map[uint32]crsEntry, error) {
	table, ok := db.Table("epsg_coordinatereferencesystem")
	if !ok {
		return nil, errors.New("no epsg_coordinatereferencesystem table")
	}
	rows, err := table.GetRows([]string{
		"coord_ref_sys_code", "base_crs_code", "projection_conv_code", "datum_code", "coord_ref_sys_kind",
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_coordinatereferencesystem")
	}

	crs := make(map[uint32]crsEntry, len(rows))
	for _, row := range rows {
		code, okCode := asUint32(row[0])
		kind, okKind := asString(row[4])
		if !okCode || !okKind {
			continue
		}
		switch kind {
		case "geographic 2D":
			datum, okDatum := asUint32(row[3])
			if !okDatum {
				continue
			}
			crs[code] = crsEntry{kind: crsGeographic2D, datum: datum}
		case "projected":
			base, okBase := asUint32(row[1])
			conv, okConv := asUint32(row[2])
			if !okBase || !okConv {
				continue
			}
			crs[code] = crsEntry{kind: crsProjected, conversion: conv, base: base}
		}
	}
	if len(crs) == 0 {
		return nil, errors.New("no usable rows in epsg_coordinatereferencesystem")
	}
	return crs, nil
}

func loadOperationMethods(db *reader.Database) (map[uint32]uint32, error) {
	table, ok := db.Table("epsg_coordoperation")
	if !ok {
		return nil, errors.New("no epsg_coordoperation table")
	}
	rows, err := table.GetRows([]string{"coord_op_code", "coord_op_method_code"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_coordoperation")
	}

	methods := make(map[uint32]uint32, len(rows))
	for _, row := range rows {
		opCode, ok1 := asUint32(row[0])
		methodCode, ok2 := asUint32(row[1])
		if !ok1 || !ok2 {
			continue
		}
		methods[opCode] = methodCode
	}
	if len(methods) == 0 {
		return nil, errors.New("no usable rows in epsg_coordoperation")
	}
	return methods, nil
}

const uom9110 = 9110

// loadParamValues collects, per coordinate operation, the (parameter
// code, normalized value) pairs later fed to projection.CustomProjection.
// EPSG-9110-encoded angles are decoded via epsg9110ToRad; every other unit
// is normalized by its unit-of-measure factor.
func loadParamValues(db *reader.Database, units map[uint32]unit) (map[uint32][]paramValue, error) {
	table, ok := db.Table("epsg_coordoperationparamvalue")
	if !ok {
		return nil, errors.New("no epsg_coordoperationparamvalue table")
	}
	rows, err := table.GetRows([]string{"coord_op_code", "parameter_code", "parameter_value", "uom_code"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_coordoperationparamvalue")
	}

	values := make(map[uint32][]paramValue)
	for _, row := range rows {
		opCode, ok1 := asUint32(row[0])
		paramCode, ok2 := asUint32(row[1])
		v, ok3 := asFloat(row[2])
		uomCode, ok4 := asUint32(row[3])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		if uomCode == uom9110 {
			values[opCode] = append(values[opCode], paramValue{code: paramCode, value: epsg9110ToRad(v)})
			continue
		}
		if u, ok := units[uomCode]; ok {
			values[opCode] = append(values[opCode], paramValue{code: paramCode, value: v * u.factorB / u.factorC})
		}
	}
	return values, nil
}

type paramValue struct {
	code  uint32
	value float64
}

// greenwichPrimeMeridian is the EPSG code of the Greenwich prime meridian.
// Datums on any other prime meridian are skipped, matching the upstream
// compiler's note that longitude correction for non-Greenwich datums is
// unimplemented (see the Open Question recorded in DESIGN.md).
const greenwichPrimeMeridian = 8901

type datumInfo struct {
	ellipsoidCode uint32
}

func loadDatums(db *reader.Database, ellipsoids map[uint32]ellipsoid.Ellipsoid) (map[uint32]datumInfo, error) {
	table, ok := db.Table("epsg_datum")
	if !ok {
		return nil, errors.New("no epsg_datum table")
	}
	rows, err := table.GetRows([]string{"datum_code", "ellipsoid_code", "prime_meridian_code"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_datum")
	}

	datums := make(map[uint32]datumInfo, len(rows))
	for _, row := range rows {
		code, ok1 := asUint32(row[0])
		ellCode, ok2 := asUint32(row[1])
		meridian, ok3 := asUint32(row[2])
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		if meridian != greenwichPrimeMeridian {
			logrus.WithFields(logrus.Fields{"datum_code": code, "prime_meridian_code": meridian}).
				Warn("skipping datum: prime meridian is not Greenwich")
			continue
		}
		if _, ok := ellipsoids[ellCode]; !ok {
			logrus.WithFields(logrus.Fields{"datum_code": code, "ellipsoid_code": ellCode}).
				Warn("skipping datum: ellipsoid does not resolve")
			continue
		}
		datums[code] = datumInfo{ellipsoidCode: ellCode}
	}
	return datums, nil
}

func loadDatumEnsembles(db *reader.Database) (map[uint32][]uint32, error) {
	table, ok := db.Table("epsg_datumensemblemember")
	if !ok {
		// Not every snapshot carries ensembles; absence is not an error.
		return map[uint32][]uint32{}, nil
	}
	rows, err := table.GetRows([]string{"datum_ensemble_code", "datum_code"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_datumensemblemember")
	}

	members := make(map[uint32][]uint32)
	for _, row := range rows {
		ensemble, ok1 := asUint32(row[0])
		datum, ok2 := asUint32(row[1])
		if !ok1 || !ok2 {
			continue
		}
		members[ensemble] = append(members[ensemble], datum)
	}
	return members, nil
}

// resolveEllipsoid finds the first datum (direct, or a member of the
// ensemble named by datumCode) whose ellipsoid resolves.
func resolveEllipsoid(datumCode uint32, datums map[uint32]datumInfo, ensembles map[uint32][]uint32) (uint32, bool) {
	if info, ok := datums[datumCode]; ok {
		return info.ellipsoidCode, true
	}
	for _, member := range ensembles[datumCode] {
		if info, ok := datums[member]; ok {
			return info.ellipsoidCode, true
		}
	}
	return 0, false
}

func loadNames(db *reader.Database) (map[uint32]string, error) {
	table, ok := db.Table("epsg_coordinatereferencesystem")
	if !ok {
		return nil, errors.New("no epsg_coordinatereferencesystem table")
	}
	rows, err := table.GetRows([]string{"coord_ref_sys_code", "coord_ref_sys_name"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_coordinatereferencesystem names")
	}

	names := make(map[uint32]string, len(rows))
	for _, row := range rows {
		code, ok1 := asUint32(row[0])
		name, ok2 := asString(row[1])
		if !ok1 || !ok2 {
			continue
		}
		names[code] = name
	}
	return names, nil
}

// loadAreas joins epsg_usage to epsg_extent, attaching every extent used
// by a CRS object code to that code's entry in AREAS.
func loadAreas(db *reader.Database) (map[uint32][]registry.Area, error) {
	usageTable, ok := db.Table("epsg_usage")
	if !ok {
		return map[uint32][]registry.Area{}, nil
	}
	extentTable, ok := db.Table("epsg_extent")
	if !ok {
		return map[uint32][]registry.Area{}, nil
	}

	extentRows, err := extentTable.GetRows([]string{
		"extent_code", "extent_name",
		"bbox_west_bound_lon", "bbox_east_bound_lon", "bbox_south_bound_lat", "bbox_north_bound_lat",
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_extent")
	}
	extents := make(map[uint32]registry.Area, len(extentRows))
	for _, row := range extentRows {
		code, ok := asUint32(row[0])
		if !ok {
			continue
		}
		name, _ := asString(row[1])
		west, _ := asFloat(row[2])
		east, _ := asFloat(row[3])
		south, _ := asFloat(row[4])
		north, _ := asFloat(row[5])
		extents[code] = registry.Area{
			Name: name, WestBoundLon: west, EastBoundLon: east, SouthBoundLat: south, NorthBoundLat: north,
		}
	}

	usageRows, err := usageTable.GetRows([]string{"object_table_name", "object_code", "extent_code"})
	if err != nil {
		return nil, errors.Wrap(err, "reading epsg_usage")
	}
	areas := make(map[uint32][]registry.Area)
	for _, row := range usageRows {
		objectTable, ok1 := asString(row[0])
		objectCode, ok2 := asUint32(row[1])
		extentCode, ok3 := asUint32(row[2])
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		if objectTable != "epsg_coordinatereferencesystem" {
			continue
		}
		if area, ok := extents[extentCode]; ok {
			areas[objectCode] = append(areas[objectCode], area)
		}
	}
	return areas, nil
}

// Compile resolves a parsed registry snapshot into dispatch Tables.
func Compile(db *reader.Database) (*registry.Tables, error) {
	units, err := loadUnits(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading units")
	}
	ellipsoids, err := loadEllipsoids(db, units)
	if err != nil {
		return nil, errors.Wrap(err, "loading ellipsoids")
	}
	datums, err := loadDatums(db, ellipsoids)
	if err != nil {
		return nil, errors.Wrap(err, "loading datums")
	}
	ensembles, err := loadDatumEnsembles(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading datum ensembles")
	}
	crs, err := loadCRS(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading coordinate reference systems")
	}
	methods, err := loadOperationMethods(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading coordinate operations")
	}
	paramValues, err := loadParamValues(db, units)
	if err != nil {
		return nil, errors.Wrap(err, "loading coordinate operation parameter values")
	}
	names, err := loadNames(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading names")
	}
	areas, err := loadAreas(db)
	if err != nil {
		return nil, errors.Wrap(err, "loading areas")
	}

	out := registry.New()
	out.Ellipsoids = ellipsoids
	out.Names = names
	out.Areas = areas

	for code, entry := range crs {
		switch entry.kind {
		case crsGeographic2D:
			out.Projections[code] = projection.Identity{}
		case crsProjected:
			base, ok := crs[entry.base]
			if !ok || base.kind != crsGeographic2D {
				logrus.WithFields(logrus.Fields{"crs_code": code, "base_crs_code": entry.base}).
					Warn("skipping projected CRS: base CRS does not resolve to a geographic 2D CRS")
				continue
			}
			ellipsoidCode, ok := resolveEllipsoid(base.datum, datums, ensembles)
			if !ok {
				logrus.WithFields(logrus.Fields{"crs_code": code, "datum_code": base.datum}).
					Warn("skipping projected CRS: datum does not resolve to a usable ellipsoid")
				continue
			}
			ell, ok := ellipsoids[ellipsoidCode]
			if !ok {
				continue
			}
			params, ok := paramValues[entry.conversion]
			if !ok {
				logrus.WithFields(logrus.Fields{"crs_code": code, "conversion_code": entry.conversion}).
					Warn("skipping projected CRS: no parameter values for conversion")
				continue
			}
			methodCode, ok := methods[entry.conversion]
			if !ok {
				logrus.WithFields(logrus.Fields{"crs_code": code, "conversion_code": entry.conversion}).
					Warn("skipping projected CRS: conversion does not resolve to an operation method")
				continue
			}

			getter := func(paramCode uint32) (float64, bool) {
				for _, pv := range params {
					if pv.code == paramCode {
						return pv.value, true
					}
				}
				return 0, false
			}
			proj, ok := projection.CustomProjection(methodCode, getter, ell)
			if !ok {
				logrus.WithFields(logrus.Fields{"crs_code": code, "method_code": methodCode}).
					Debug("skipping projected CRS: operation method not implemented or a required parameter is missing")
				continue
			}
			out.Projections[code] = proj
			out.EllipsoidsByCRS[code] = ellipsoidCode
		}
	}

	// EPSG 4326 (WGS 84) always resolves to the identity projection, even
	// if its row is absent from the snapshot or its datum_code is null.
	out.Projections[wgs84CRSCode] = projection.Identity{}
	if _, ok := out.Names[wgs84CRSCode]; !ok {
		out.Names[wgs84CRSCode] = "WGS 84"
	}

	return out, nil
}

// wgs84CRSCode is the EPSG code of the geographic 2D CRS WGS 84, the
// registry's one unconditionally supported coordinate reference system.
const wgs84CRSCode = 4326

func asUint32(f *reader.Field) (uint32, bool) {
	if f == nil || f.Kind != reader.FieldInt {
		return 0, false
	}
	if f.Int < 0 {
		return 0, false
	}
	return uint32(f.Int), true
}

func asFloat(f *reader.Field) (float64, bool) {
	if f == nil {
		return 0, false
	}
	switch f.Kind {
	case reader.FieldDouble:
		return f.Dbl, true
	case reader.FieldInt:
		return float64(f.Int), true
	default:
		return 0, false
	}
}

func asString(f *reader.Field) (string, bool) {
	if f == nil || f.Kind != reader.FieldString {
		return "", false
	}
	return f.Str, true
}
