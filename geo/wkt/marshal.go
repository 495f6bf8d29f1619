package wkt

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/woozymasta/geoz/geo"
)

// Marshal writes g in the grammar Parse reads. A Line is written as a
// two-coordinate LINESTRING. Two-axis geometries are rejected with
// *UnsupportedGeometryError and NaN or infinite components with
// *NonFiniteError.
func Marshal[T geo.CoordNum](g geo.Geometry[T]) (string, error) {
	b := &builder{}
	if err := write(b, g); err != nil {
		return "", err
	}
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// MarshalTriangle writes t as a POLYGON with a closed single ring.
func MarshalTriangle[T geo.CoordNum](t geo.Triangle[T]) (string, error) {
	b := &builder{}
	writePolygon(b, t.ToPolygon())
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// builder keeps the first error met while writing coordinates.
type builder struct {
	strings.Builder
	err error
}

func write[T geo.CoordNum](b *builder, g geo.Geometry[T]) error {
	switch g := g.(type) {
	case geo.Point[T]:
		b.WriteString("POINT Z (")
		writeCoord(b, g.Coord)
		b.WriteByte(')')
	case geo.Line[T]:
		b.WriteString("LINESTRING Z ")
		writeCoords(b, geo.LineString[T]{g.Start, g.End})
	case geo.LineString[T]:
		b.WriteString("LINESTRING Z ")
		writeCoords(b, g)
	case geo.Polygon[T]:
		writePolygon(b, g)
	case geo.MultiPoint[T]:
		b.WriteString("MULTIPOINT Z ")
		if len(g) == 0 {
			b.WriteString(kwEmpty)
			return nil
		}
		b.WriteByte('(')
		for i, p := range g {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeCoord(b, p.Coord)
			b.WriteByte(')')
		}
		b.WriteByte(')')
	case geo.MultiLineString[T]:
		b.WriteString("MULTILINESTRING Z ")
		if len(g) == 0 {
			b.WriteString(kwEmpty)
			return nil
		}
		b.WriteByte('(')
		for i, ls := range g {
			if i != 0 {
				b.WriteString(", ")
			}
			writeCoords(b, ls)
		}
		b.WriteByte(')')
	case geo.MultiPolygon[T]:
		b.WriteString("MULTIPOLYGON Z ")
		if len(g) == 0 {
			b.WriteString(kwEmpty)
			return nil
		}
		b.WriteByte('(')
		for i, p := range g {
			if i != 0 {
				b.WriteString(", ")
			}
			writeRings(b, p)
		}
		b.WriteByte(')')
	case geo.GeometryCollection[T]:
		b.WriteString("GEOMETRYCOLLECTION ")
		if len(g) == 0 {
			b.WriteString(kwEmpty)
			return nil
		}
		b.WriteByte('(')
		for i, member := range g {
			if i != 0 {
				b.WriteString(", ")
			}
			if err := write(b, member); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	default:
		return &UnsupportedGeometryError{Type: geo.TypeName(g)}
	}
	return nil
}

func writePolygon[T geo.CoordNum](b *builder, p geo.Polygon[T]) {
	b.WriteString("POLYGON Z ")
	writeRings(b, p)
}

// writeRings writes EMPTY for a polygon with no coordinates at all. An empty
// exterior followed by holes is written as (EMPTY, (...)).
func writeRings[T geo.CoordNum](b *builder, p geo.Polygon[T]) {
	if p.IsEmpty() {
		b.WriteString(kwEmpty)
		return
	}
	b.WriteByte('(')
	for i, ring := range p.Rings() {
		if i != 0 {
			b.WriteString(", ")
		}
		writeCoords(b, ring)
	}
	b.WriteByte(')')
}

func writeCoords[T geo.CoordNum](b *builder, ls geo.LineString[T]) {
	if len(ls) == 0 {
		b.WriteString(kwEmpty)
		return
	}
	b.WriteByte('(')
	for i, c := range ls {
		if i != 0 {
			b.WriteString(", ")
		}
		writeCoord(b, c)
	}
	b.WriteByte(')')
}

func writeCoord[T geo.CoordNum](b *builder, c geo.Coord[T]) {
	for i, v := range c.Array() {
		if i != 0 {
			b.WriteByte(' ')
		}
		if f := float64(v); b.err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			b.err = &NonFiniteError{Value: f}
		}
		b.WriteString(formatNumber(v))
	}
}

func formatNumber[T geo.CoordNum](v T) string {
	switch {
	case !geo.IsIntegral[T]():
		return strconv.FormatFloat(float64(v), 'f', -1, int(unsafe.Sizeof(v))*8)
	case isSigned[T]():
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
