package projection

import "github.com/GEOMAR-Kiel/Miniproj/ellipsoid"

// EPSG parameter codes shared by the natural-origin projection families.
const (
	paramLonOrig = 8802
	paramLatOrig = 8801
	paramKOrig   = 8805
	paramFalseE  = 8806
	paramFalseN  = 8807

	paramLonFalseOrig = 8822
	paramLatFalseOrig = 8821
	paramLat1         = 8823
	paramLat2         = 8824
	paramFalseEOrig   = 8826
	paramFalseNOrig   = 8827
)

// CustomProjection constructs the Projection for an EPSG coordinate
// operation method code, pulling its parameter values from getter. It
// returns ok=false if the method code is unsupported or a required
// parameter is missing. getter may be called more than once per parameter
// and in no particular order.
func CustomProjection(methodCode uint32, getter Getter, ell ellipsoid.Ellipsoid) (Projection, bool) {
	need := func(code uint32) (float64, bool) { return getter(code) }

	switch methodCode {
	case 9807:
		p, ok := buildTransverseMercator(need)
		if !ok {
			return nil, false
		}
		return NewTransverseMercator(ell, p), true
	case 9810:
		p, ok := buildPolarStereographicA(need)
		if !ok {
			return nil, false
		}
		return NewPolarStereographicA(ell, p), true
	case 9802:
		p, ok := buildLambertConic2SP(need)
		if !ok {
			return nil, false
		}
		return NewLambertConic2SP(ell, p), true
	case 1024:
		p, ok := buildPseudoMercator(need)
		if !ok {
			return nil, false
		}
		return NewPseudoMercator(ell, p), true
	case 9801:
		p, ok := buildLambertConic1SPA(need)
		if !ok {
			return nil, false
		}
		return NewLambertConic1SPA(ell, p), true
	case 9809:
		p, ok := buildObliqueStereographic(need)
		if !ok {
			return nil, false
		}
		return NewObliqueStereographic(ell, p), true
	case 9822:
		p, ok := buildAlbersEqualArea(need)
		if !ok {
			return nil, false
		}
		return NewAlbersEqualArea(ell, p), true
	case 9820:
		p, ok := buildLambertAzimuthalEqualArea(need)
		if !ok {
			return nil, false
		}
		return NewLambertAzimuthalEqualArea(ell, p), true
	default:
		return nil, false
	}
}

func buildTransverseMercator(get Getter) (TransverseMercatorParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	k, ok3 := get(paramKOrig)
	fe, ok4 := get(paramFalseE)
	fn, ok5 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return TransverseMercatorParams{}, false
	}
	return TransverseMercatorParams{LonOrig: lon, LatOrig: lat, KOrig: k, FalseE: fe, FalseN: fn}, true
}

func buildPolarStereographicA(get Getter) (PolarStereographicAParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	k, ok3 := get(paramKOrig)
	fe, ok4 := get(paramFalseE)
	fn, ok5 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return PolarStereographicAParams{}, false
	}
	return PolarStereographicAParams{LonOrig: lon, LatOrig: lat, KOrig: k, FalseE: fe, FalseN: fn}, true
}

func buildObliqueStereographic(get Getter) (ObliqueStereographicParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	k, ok3 := get(paramKOrig)
	fe, ok4 := get(paramFalseE)
	fn, ok5 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return ObliqueStereographicParams{}, false
	}
	return ObliqueStereographicParams{LonOrig: lon, LatOrig: lat, KOrig: k, FalseE: fe, FalseN: fn}, true
}

func buildPseudoMercator(get Getter) (PseudoMercatorParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	fe, ok3 := get(paramFalseE)
	fn, ok4 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4) {
		return PseudoMercatorParams{}, false
	}
	return PseudoMercatorParams{LonOrig: lon, LatOrig: lat, FalseE: fe, FalseN: fn}, true
}

func buildLambertConic1SPA(get Getter) (LambertConic1SPAParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	k, ok3 := get(paramKOrig)
	fe, ok4 := get(paramFalseE)
	fn, ok5 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return LambertConic1SPAParams{}, false
	}
	return LambertConic1SPAParams{LonOrig: lon, LatOrig: lat, KOrig: k, FalseE: fe, FalseN: fn}, true
}

func buildLambertConic2SP(get Getter) (LambertConic2SPParams, bool) {
	lon, ok1 := get(paramLonFalseOrig)
	lat, ok2 := get(paramLatFalseOrig)
	lat1, ok3 := get(paramLat1)
	lat2, ok4 := get(paramLat2)
	fe, ok5 := get(paramFalseEOrig)
	fn, ok6 := get(paramFalseNOrig)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return LambertConic2SPParams{}, false
	}
	return LambertConic2SPParams{
		LonFalseOrig: lon, LatFalseOrig: lat, Lat1: lat1, Lat2: lat2, FalseE: fe, FalseN: fn,
	}, true
}

func buildAlbersEqualArea(get Getter) (AlbersEqualAreaParams, bool) {
	lon, ok1 := get(paramLonFalseOrig)
	lat, ok2 := get(paramLatFalseOrig)
	lat1, ok3 := get(paramLat1)
	lat2, ok4 := get(paramLat2)
	fe, ok5 := get(paramFalseEOrig)
	fn, ok6 := get(paramFalseNOrig)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return AlbersEqualAreaParams{}, false
	}
	return AlbersEqualAreaParams{
		LonOrig: lon, LatOrig: lat, LatSP1: lat1, LatSP2: lat2, FalseE: fe, FalseN: fn,
	}, true
}

func buildLambertAzimuthalEqualArea(get Getter) (LambertAzimuthalEqualAreaParams, bool) {
	lon, ok1 := get(paramLonOrig)
	lat, ok2 := get(paramLatOrig)
	fe, ok3 := get(paramFalseE)
	fn, ok4 := get(paramFalseN)
	if !(ok1 && ok2 && ok3 && ok4) {
		return LambertAzimuthalEqualAreaParams{}, false
	}
	return LambertAzimuthalEqualAreaParams{LonOrig: lon, LatOrig: lat, FalseE: fe, FalseN: fn}, true
}
