package geojson

import (
	"github.com/woozymasta/geoz/geo"

	gj "github.com/paulmach/go.geojson"
)

// DecodeGeometry dispatches on the GeoJSON type and returns the matching
// three-axis variant. Collections are decoded recursively and fail on the
// first member that fails.
func DecodeGeometry[T geo.CoordFloat](g *gj.Geometry) (geo.Geometry[T], error) {
	if g == nil {
		return nil, mismatch("Geometry", nil)
	}

	// Each branch checks err itself so a failed decode never leaves a typed
	// zero value behind a non-nil interface.
	switch g.Type {
	case gj.GeometryPoint:
		p, err := DecodePoint[T](g)
		if err != nil {
			return nil, err
		}
		return p, nil
	case gj.GeometryMultiPoint:
		mp, err := DecodeMultiPoint[T](g)
		if err != nil {
			return nil, err
		}
		return mp, nil
	case gj.GeometryLineString:
		ls, err := DecodeLineString[T](g)
		if err != nil {
			return nil, err
		}
		return ls, nil
	case gj.GeometryMultiLineString:
		mls, err := DecodeMultiLineString[T](g)
		if err != nil {
			return nil, err
		}
		return mls, nil
	case gj.GeometryPolygon:
		p, err := DecodePolygon[T](g)
		if err != nil {
			return nil, err
		}
		return p, nil
	case gj.GeometryMultiPolygon:
		mp, err := DecodeMultiPolygon[T](g)
		if err != nil {
			return nil, err
		}
		return mp, nil
	case gj.GeometryCollection:
		gc, err := DecodeGeometryCollection[T](g)
		if err != nil {
			return nil, err
		}
		return gc, nil
	}

	return nil, mismatch("Geometry", g)
}

// DecodePoint reads index 0, 1 and 2 of the position as x, y and z.
// A two-element position gets z = 0.
func DecodePoint[T geo.CoordFloat](g *gj.Geometry) (geo.Point[T], error) {
	if g == nil || g.Type != gj.GeometryPoint {
		return geo.Point[T]{}, mismatch(gj.GeometryPoint, g)
	}
	c, err := coord[T](g.Point)
	if err != nil {
		return geo.Point[T]{}, err
	}
	return geo.PointFromCoord(c), nil
}

// DecodeMultiPoint reads every position as a point, in order.
func DecodeMultiPoint[T geo.CoordFloat](g *gj.Geometry) (geo.MultiPoint[T], error) {
	if g == nil || g.Type != gj.GeometryMultiPoint {
		return nil, mismatch(gj.GeometryMultiPoint, g)
	}
	mp := make(geo.MultiPoint[T], 0, len(g.MultiPoint))
	for _, pos := range g.MultiPoint {
		c, err := coord[T](pos)
		if err != nil {
			return nil, err
		}
		mp = append(mp, geo.PointFromCoord(c))
	}
	return mp, nil
}

// DecodeLineString keeps the position order; rings are not closed.
func DecodeLineString[T geo.CoordFloat](g *gj.Geometry) (geo.LineString[T], error) {
	if g == nil || g.Type != gj.GeometryLineString {
		return nil, mismatch(gj.GeometryLineString, g)
	}
	return lineString[T](g.LineString)
}

// DecodeMultiLineString decodes every line string, failing on the first bad position.
func DecodeMultiLineString[T geo.CoordFloat](g *gj.Geometry) (geo.MultiLineString[T], error) {
	if g == nil || g.Type != gj.GeometryMultiLineString {
		return nil, mismatch(gj.GeometryMultiLineString, g)
	}
	mls := make(geo.MultiLineString[T], 0, len(g.MultiLineString))
	for _, line := range g.MultiLineString {
		ls, err := lineString[T](line)
		if err != nil {
			return nil, err
		}
		mls = append(mls, ls)
	}
	return mls, nil
}

// DecodePolygon takes ring 0 as the exterior and the rest as interiors.
// An empty ring list yields an empty exterior and no interiors.
func DecodePolygon[T geo.CoordFloat](g *gj.Geometry) (geo.Polygon[T], error) {
	if g == nil || g.Type != gj.GeometryPolygon {
		return geo.Polygon[T]{}, mismatch(gj.GeometryPolygon, g)
	}
	return polygon[T](g.Polygon)
}

// DecodeMultiPolygon decodes every polygon as DecodePolygon does.
func DecodeMultiPolygon[T geo.CoordFloat](g *gj.Geometry) (geo.MultiPolygon[T], error) {
	if g == nil || g.Type != gj.GeometryMultiPolygon {
		return nil, mismatch(gj.GeometryMultiPolygon, g)
	}
	mp := make(geo.MultiPolygon[T], 0, len(g.MultiPolygon))
	for _, rings := range g.MultiPolygon {
		p, err := polygon[T](rings)
		if err != nil {
			return nil, err
		}
		mp = append(mp, p)
	}
	return mp, nil
}

// DecodeGeometryCollection decodes every member in order. The first failing
// member aborts the whole collection.
func DecodeGeometryCollection[T geo.CoordFloat](g *gj.Geometry) (geo.GeometryCollection[T], error) {
	if g == nil || g.Type != gj.GeometryCollection {
		return nil, mismatch(gj.GeometryCollection, g)
	}
	gc := make(geo.GeometryCollection[T], 0, len(g.Geometries))
	for _, member := range g.Geometries {
		m, err := DecodeGeometry[T](member)
		if err != nil {
			return nil, err
		}
		gc = append(gc, m)
	}
	return gc, nil
}

func coord[T geo.CoordFloat](pos []float64) (geo.Coord[T], error) {
	switch {
	case len(pos) >= 3:
		return geo.NewCoord(geo.FromFloat64[T](pos[0]), geo.FromFloat64[T](pos[1]), geo.FromFloat64[T](pos[2])), nil
	case len(pos) == 2:
		return geo.NewCoord(geo.FromFloat64[T](pos[0]), geo.FromFloat64[T](pos[1]), 0), nil
	}
	return geo.Coord[T]{}, &InvalidPositionError{Len: len(pos)}
}

func lineString[T geo.CoordFloat](line [][]float64) (geo.LineString[T], error) {
	ls := make(geo.LineString[T], 0, len(line))
	for _, pos := range line {
		c, err := coord[T](pos)
		if err != nil {
			return nil, err
		}
		ls = append(ls, c)
	}
	return ls, nil
}

func polygon[T geo.CoordFloat](rings [][][]float64) (geo.Polygon[T], error) {
	out := make([]geo.LineString[T], 0, len(rings))
	for _, ring := range rings {
		ls, err := lineString[T](ring)
		if err != nil {
			return geo.Polygon[T]{}, err
		}
		out = append(out, ls)
	}
	return geo.PolygonFromRings(out), nil
}

func mismatch[K ~string](expected K, found *gj.Geometry) error {
	name := "null"
	if found != nil {
		name = string(found.Type)
	}
	return &InvalidGeometryConversionError{Expected: string(expected), Found: name}
}
