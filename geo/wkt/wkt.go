// Package wkt reads and writes three-axis geometries as well-known text literals.
//
// The grammar is a strict subset of WKT:
//
//	POINT Z (1 2 3)
//	LINESTRING Z (0 0 0, 1 1 1)
//	POLYGON Z ((0 0 0, 1 0 0, 1 1 0, 0 0 0), (0.2 0.2 0, 0.4 0.2 0, 0.4 0.4 0, 0.2 0.2 0))
//	MULTIPOINT Z ((0 0 0), (1 1 1))
//	MULTILINESTRING Z ((0 0 0, 1 1 1))
//	MULTIPOLYGON Z (((0 0 0, 1 0 0, 1 1 0, 0 0 0)))
//	GEOMETRYCOLLECTION (POINT Z (1 2 3), LINESTRING Z EMPTY)
//
// Keywords are upper case and the Z marker is optional. Every coordinate has
// exactly three numbers. Rings are taken as written and never closed.
package wkt

import (
	"strings"

	"github.com/woozymasta/geoz/geo"
)

// Parse reads any literal.
func Parse[T geo.CoordNum](s string) (geo.Geometry[T], error) {
	p := newParser[T](s)
	g, err := p.geometry()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return g, nil
}

// ParsePoint reads a POINT literal. POINT EMPTY is rejected.
func ParsePoint[T geo.CoordNum](s string) (geo.Point[T], error) {
	return parseAs[geo.Point[T], T](s)
}

// ParseLineString reads a LINESTRING literal.
func ParseLineString[T geo.CoordNum](s string) (geo.LineString[T], error) {
	return parseAs[geo.LineString[T], T](s)
}

// ParsePolygon reads a POLYGON literal; ring 0 is the exterior.
func ParsePolygon[T geo.CoordNum](s string) (geo.Polygon[T], error) {
	return parseAs[geo.Polygon[T], T](s)
}

// ParseMultiPoint reads a MULTIPOINT literal with or without parentheses around each point.
func ParseMultiPoint[T geo.CoordNum](s string) (geo.MultiPoint[T], error) {
	return parseAs[geo.MultiPoint[T], T](s)
}

// ParseMultiLineString reads a MULTILINESTRING literal.
func ParseMultiLineString[T geo.CoordNum](s string) (geo.MultiLineString[T], error) {
	return parseAs[geo.MultiLineString[T], T](s)
}

// ParseMultiPolygon reads a MULTIPOLYGON literal.
func ParseMultiPolygon[T geo.CoordNum](s string) (geo.MultiPolygon[T], error) {
	return parseAs[geo.MultiPolygon[T], T](s)
}

// ParseGeometryCollection reads a GEOMETRYCOLLECTION literal of tagged members.
func ParseGeometryCollection[T geo.CoordNum](s string) (geo.GeometryCollection[T], error) {
	return parseAs[geo.GeometryCollection[T], T](s)
}

// Must panics if err is not nil. It is meant for package level literals:
//
//	var origin = wkt.Must(wkt.ParsePoint[float64]("POINT Z (0 0 0)"))
func Must[G any](g G, err error) G {
	if err != nil {
		panic(err)
	}
	return g
}

func parseAs[G geo.Geometry[T], T geo.CoordNum](s string) (G, error) {
	var zero G
	g, err := Parse[T](s)
	if err != nil {
		return zero, err
	}
	v, ok := g.(G)
	if !ok {
		return zero, &MismatchedLiteralError{
			Expected: keyword(zero.Kind()),
			Found:    keyword(g.Kind()),
		}
	}
	return v, nil
}

// keyword maps a kind to its literal keyword, e.g. LineString to LINESTRING.
func keyword(k geo.Kind) string {
	return strings.ToUpper(string(k))
}
