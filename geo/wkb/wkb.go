// Package wkb bridges geo geometries to github.com/twpayne/go-geom and through
// it to well-known binary. Geometries are always written with the XYZ layout;
// foreign input without a Z ordinate is read with z = 0.
package wkb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/woozymasta/geoz/geo"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// ErrEmptyPoint is returned when an empty point is read; it has no Point value.
var ErrEmptyPoint = errors.New("wkb: empty point")

// UnsupportedGeometryError is returned for values that have no counterpart
// on the other side of the bridge.
type UnsupportedGeometryError struct {
	Type string
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("wkb: unsupported geometry %s", e.Type)
}

// Marshal encodes g as WKB with the given byte order.
func Marshal[T geo.CoordFloat](g geo.Geometry[T], order binary.ByteOrder) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(t, order)
}

// Unmarshal decodes WKB of any byte order.
func Unmarshal[T geo.CoordFloat](data []byte) (geo.Geometry[T], error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return FromGeom[T](t)
}

// ToGeom converts g to the go-geom value of the same kind. A Line becomes a
// two-coordinate LineString. Two-axis variants are rejected.
func ToGeom[T geo.CoordFloat](g geo.Geometry[T]) (geom.T, error) {
	switch g := g.(type) {
	case geo.Point[T]:
		return geom.NewPoint(geom.XYZ).SetCoords(coord(g.Coord))
	case geo.Line[T]:
		return geom.NewLineString(geom.XYZ).SetCoords([]geom.Coord{coord(g.Start), coord(g.End)})
	case geo.LineString[T]:
		return geom.NewLineString(geom.XYZ).SetCoords(coords(g))
	case geo.Polygon[T]:
		return geom.NewPolygon(geom.XYZ).SetCoords(rings(g))
	case geo.MultiPoint[T]:
		cs := make([]geom.Coord, 0, len(g))
		for _, p := range g {
			cs = append(cs, coord(p.Coord))
		}
		return geom.NewMultiPoint(geom.XYZ).SetCoords(cs)
	case geo.MultiLineString[T]:
		lines := make([][]geom.Coord, 0, len(g))
		for _, ls := range g {
			lines = append(lines, coords(ls))
		}
		return geom.NewMultiLineString(geom.XYZ).SetCoords(lines)
	case geo.MultiPolygon[T]:
		polys := make([][][]geom.Coord, 0, len(g))
		for _, p := range g {
			polys = append(polys, rings(p))
		}
		return geom.NewMultiPolygon(geom.XYZ).SetCoords(polys)
	case geo.GeometryCollection[T]:
		gc := geom.NewGeometryCollection()
		for _, member := range g {
			t, err := ToGeom(member)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(t); err != nil {
				return nil, err
			}
		}
		return gc, nil
	}
	return nil, &UnsupportedGeometryError{Type: geo.TypeName(g)}
}

// FromGeom converts a go-geom value into a three-axis geometry.
func FromGeom[T geo.CoordFloat](t geom.T) (geo.Geometry[T], error) {
	if t == nil {
		return nil, &UnsupportedGeometryError{Type: "nil"}
	}
	z := t.Layout().ZIndex()

	switch t := t.(type) {
	case *geom.Point:
		if t.Empty() {
			return nil, ErrEmptyPoint
		}
		return geo.PointFromCoord(fromCoord[T](t.Coords(), z)), nil
	case *geom.LineString:
		return fromCoords[T](t.Coords(), z), nil
	case *geom.Polygon:
		return fromRings[T](t.Coords(), z), nil
	case *geom.MultiPoint:
		mp := make(geo.MultiPoint[T], 0, t.NumPoints())
		for _, c := range t.Coords() {
			if len(c) < 2 {
				return nil, ErrEmptyPoint
			}
			mp = append(mp, geo.PointFromCoord(fromCoord[T](c, z)))
		}
		return mp, nil
	case *geom.MultiLineString:
		mls := make(geo.MultiLineString[T], 0, t.NumLineStrings())
		for _, line := range t.Coords() {
			mls = append(mls, fromCoords[T](line, z))
		}
		return mls, nil
	case *geom.MultiPolygon:
		mp := make(geo.MultiPolygon[T], 0, t.NumPolygons())
		for _, poly := range t.Coords() {
			mp = append(mp, fromRings[T](poly, z))
		}
		return mp, nil
	case *geom.GeometryCollection:
		gc := make(geo.GeometryCollection[T], 0, t.NumGeoms())
		for _, member := range t.Geoms() {
			g, err := FromGeom[T](member)
			if err != nil {
				return nil, err
			}
			gc = append(gc, g)
		}
		return gc, nil
	}
	return nil, &UnsupportedGeometryError{Type: fmt.Sprintf("%T", t)}
}

func coord[T geo.CoordFloat](c geo.Coord[T]) geom.Coord {
	return geom.Coord{float64(c.X), float64(c.Y), float64(c.Z)}
}

func coords[T geo.CoordFloat](ls geo.LineString[T]) []geom.Coord {
	out := make([]geom.Coord, 0, len(ls))
	for _, c := range ls {
		out = append(out, coord(c))
	}
	return out
}

// rings keeps an empty polygon ringless so it reads back as empty.
func rings[T geo.CoordFloat](p geo.Polygon[T]) [][]geom.Coord {
	if p.IsEmpty() {
		return [][]geom.Coord{}
	}
	out := make([][]geom.Coord, 0, len(p.Interiors)+1)
	for _, ring := range p.Rings() {
		out = append(out, coords(ring))
	}
	return out
}

func fromCoord[T geo.CoordFloat](c geom.Coord, z int) geo.Coord[T] {
	out := geo.NewCoord(geo.FromFloat64[T](c.X()), geo.FromFloat64[T](c.Y()), 0)
	if z >= 0 && z < len(c) {
		out.Z = geo.FromFloat64[T](c[z])
	}
	return out
}

func fromCoords[T geo.CoordFloat](cs []geom.Coord, z int) geo.LineString[T] {
	ls := make(geo.LineString[T], 0, len(cs))
	for _, c := range cs {
		ls = append(ls, fromCoord[T](c, z))
	}
	return ls
}

func fromRings[T geo.CoordFloat](rs [][]geom.Coord, z int) geo.Polygon[T] {
	out := make([]geo.LineString[T], 0, len(rs))
	for _, r := range rs {
		out = append(out, fromCoords[T](r, z))
	}
	return geo.PolygonFromRings(out)
}
