package geo

import (
	"fmt"
	"slices"
)

// Kind names a geometry variant.
type Kind string

const (
	KindPoint              Kind = "Point"
	KindLine               Kind = "Line"
	KindLineString         Kind = "LineString"
	KindPolygon            Kind = "Polygon"
	KindMultiPoint         Kind = "MultiPoint"
	KindMultiLineString    Kind = "MultiLineString"
	KindMultiPolygon       Kind = "MultiPolygon"
	KindGeometryCollection Kind = "GeometryCollection"

	KindPoint2           Kind = "Point2"
	KindLine2            Kind = "Line2"
	KindLineString2      Kind = "LineString2"
	KindPolygon2         Kind = "Polygon2"
	KindMultiPoint2      Kind = "MultiPoint2"
	KindMultiLineString2 Kind = "MultiLineString2"
	KindMultiPolygon2    Kind = "MultiPolygon2"
	KindRect             Kind = "Rect"
)

// Kinds lists every variant of Geometry.
func Kinds() []Kind {
	return []Kind{
		KindPoint, KindLine, KindLineString, KindPolygon,
		KindMultiPoint, KindMultiLineString, KindMultiPolygon, KindGeometryCollection,
		KindPoint2, KindLine2, KindLineString2, KindPolygon2,
		KindMultiPoint2, KindMultiLineString2, KindMultiPolygon2, KindRect,
	}
}

// IsLegacy reports whether k is one of the two-axis variants.
func (k Kind) IsLegacy() bool {
	switch k {
	case KindPoint2, KindLine2, KindLineString2, KindPolygon2,
		KindMultiPoint2, KindMultiLineString2, KindMultiPolygon2, KindRect:
		return true
	}
	return false
}

// Geometry is the closed set of variants above. The unexported method seals
// the set and ties every variant to its scalar type.
type Geometry[T CoordNum] interface {
	Kind() Kind
	isGeometry(T)
}

// Kind reports which variant the value is.
func (Point[T]) Kind() Kind              { return KindPoint }
func (Line[T]) Kind() Kind               { return KindLine }
func (LineString[T]) Kind() Kind         { return KindLineString }
func (Polygon[T]) Kind() Kind            { return KindPolygon }
func (MultiPoint[T]) Kind() Kind         { return KindMultiPoint }
func (MultiLineString[T]) Kind() Kind    { return KindMultiLineString }
func (MultiPolygon[T]) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection[T]) Kind() Kind { return KindGeometryCollection }
func (Point2[T]) Kind() Kind             { return KindPoint2 }
func (Line2[T]) Kind() Kind              { return KindLine2 }
func (LineString2[T]) Kind() Kind        { return KindLineString2 }
func (Polygon2[T]) Kind() Kind           { return KindPolygon2 }
func (MultiPoint2[T]) Kind() Kind        { return KindMultiPoint2 }
func (MultiLineString2[T]) Kind() Kind   { return KindMultiLineString2 }
func (MultiPolygon2[T]) Kind() Kind      { return KindMultiPolygon2 }
func (Rect[T]) Kind() Kind               { return KindRect }

func (Point[T]) isGeometry(T)              {}
func (Line[T]) isGeometry(T)               {}
func (LineString[T]) isGeometry(T)         {}
func (Polygon[T]) isGeometry(T)            {}
func (MultiPoint[T]) isGeometry(T)         {}
func (MultiLineString[T]) isGeometry(T)    {}
func (MultiPolygon[T]) isGeometry(T)       {}
func (GeometryCollection[T]) isGeometry(T) {}
func (Point2[T]) isGeometry(T)             {}
func (Line2[T]) isGeometry(T)              {}
func (LineString2[T]) isGeometry(T)        {}
func (Polygon2[T]) isGeometry(T)           {}
func (MultiPoint2[T]) isGeometry(T)        {}
func (MultiLineString2[T]) isGeometry(T)   {}
func (MultiPolygon2[T]) isGeometry(T)      {}
func (Rect[T]) isGeometry(T)               {}

// TypeName returns the Go type identifier of v, e.g. "geo.Point[float64]".
func TypeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// As extracts the concrete variant G from g. It fails with a
// *MismatchedGeometryError naming both types when g holds another variant.
//
//	poly, err := geo.As[geo.Polygon[float64]](g)
func As[G Geometry[T], T CoordNum](g Geometry[T]) (G, error) {
	if v, ok := g.(G); ok {
		return v, nil
	}
	var zero G
	return zero, &MismatchedGeometryError{
		Expected: TypeName(zero),
		Found:    TypeName(g),
	}
}

// Equal compares two geometries structurally. Nil and empty slices compare equal.
func Equal[T CoordNum](a, b Geometry[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case Point[T]:
		b, ok := b.(Point[T])
		return ok && a == b
	case Line[T]:
		b, ok := b.(Line[T])
		return ok && a == b
	case LineString[T]:
		b, ok := b.(LineString[T])
		return ok && slices.Equal(a, b)
	case Polygon[T]:
		b, ok := b.(Polygon[T])
		return ok && polygonEqual(a, b)
	case MultiPoint[T]:
		b, ok := b.(MultiPoint[T])
		return ok && slices.Equal(a, b)
	case MultiLineString[T]:
		b, ok := b.(MultiLineString[T])
		return ok && slices.EqualFunc(a, b, func(x, y LineString[T]) bool { return slices.Equal(x, y) })
	case MultiPolygon[T]:
		b, ok := b.(MultiPolygon[T])
		return ok && slices.EqualFunc(a, b, polygonEqual[T])
	case GeometryCollection[T]:
		b, ok := b.(GeometryCollection[T])
		return ok && slices.EqualFunc(a, b, Equal[T])
	case Point2[T]:
		b, ok := b.(Point2[T])
		return ok && a == b
	case Line2[T]:
		b, ok := b.(Line2[T])
		return ok && a == b
	case LineString2[T]:
		b, ok := b.(LineString2[T])
		return ok && slices.Equal(a, b)
	case Polygon2[T]:
		b, ok := b.(Polygon2[T])
		return ok && polygon2Equal(a, b)
	case MultiPoint2[T]:
		b, ok := b.(MultiPoint2[T])
		return ok && slices.Equal(a, b)
	case MultiLineString2[T]:
		b, ok := b.(MultiLineString2[T])
		return ok && slices.EqualFunc(a, b, func(x, y LineString2[T]) bool { return slices.Equal(x, y) })
	case MultiPolygon2[T]:
		b, ok := b.(MultiPolygon2[T])
		return ok && slices.EqualFunc(a, b, polygon2Equal[T])
	case Rect[T]:
		b, ok := b.(Rect[T])
		return ok && a == b
	}

	return false
}

func polygonEqual[T CoordNum](a, b Polygon[T]) bool {
	return slices.EqualFunc(a.Rings(), b.Rings(), func(x, y LineString[T]) bool { return slices.Equal(x, y) })
}

func polygon2Equal[T CoordNum](a, b Polygon2[T]) bool {
	return slices.EqualFunc(a.Rings(), b.Rings(), func(x, y LineString2[T]) bool { return slices.Equal(x, y) })
}

// EqualApprox is Equal with every pair of scalars allowed to differ by at
// most eps. Variants must still match and NaN never compares equal.
func EqualApprox[T CoordFloat](a, b Geometry[T], eps T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	c3 := func(x, y Coord[T]) bool {
		return near(x.X, y.X, eps) && near(x.Y, y.Y, eps) && near(x.Z, y.Z, eps)
	}
	c2 := func(x, y Coord2[T]) bool {
		return near(x.X, y.X, eps) && near(x.Y, y.Y, eps)
	}
	ls3 := func(x, y LineString[T]) bool { return slices.EqualFunc(x, y, c3) }
	ls2 := func(x, y LineString2[T]) bool { return slices.EqualFunc(x, y, c2) }
	poly3 := func(x, y Polygon[T]) bool { return slices.EqualFunc(x.Rings(), y.Rings(), ls3) }
	poly2 := func(x, y Polygon2[T]) bool { return slices.EqualFunc(x.Rings(), y.Rings(), ls2) }

	switch a := a.(type) {
	case Point[T]:
		b, ok := b.(Point[T])
		return ok && c3(a.Coord, b.Coord)
	case Line[T]:
		b, ok := b.(Line[T])
		return ok && c3(a.Start, b.Start) && c3(a.End, b.End)
	case LineString[T]:
		b, ok := b.(LineString[T])
		return ok && ls3(a, b)
	case Polygon[T]:
		b, ok := b.(Polygon[T])
		return ok && poly3(a, b)
	case MultiPoint[T]:
		b, ok := b.(MultiPoint[T])
		return ok && slices.EqualFunc(a, b, func(x, y Point[T]) bool { return c3(x.Coord, y.Coord) })
	case MultiLineString[T]:
		b, ok := b.(MultiLineString[T])
		return ok && slices.EqualFunc(a, b, ls3)
	case MultiPolygon[T]:
		b, ok := b.(MultiPolygon[T])
		return ok && slices.EqualFunc(a, b, poly3)
	case GeometryCollection[T]:
		b, ok := b.(GeometryCollection[T])
		return ok && slices.EqualFunc(a, b, func(x, y Geometry[T]) bool { return EqualApprox(x, y, eps) })
	case Point2[T]:
		b, ok := b.(Point2[T])
		return ok && c2(a.Coord2, b.Coord2)
	case Line2[T]:
		b, ok := b.(Line2[T])
		return ok && c2(a.Start, b.Start) && c2(a.End, b.End)
	case LineString2[T]:
		b, ok := b.(LineString2[T])
		return ok && ls2(a, b)
	case Polygon2[T]:
		b, ok := b.(Polygon2[T])
		return ok && poly2(a, b)
	case MultiPoint2[T]:
		b, ok := b.(MultiPoint2[T])
		return ok && slices.EqualFunc(a, b, func(x, y Point2[T]) bool { return c2(x.Coord2, y.Coord2) })
	case MultiLineString2[T]:
		b, ok := b.(MultiLineString2[T])
		return ok && slices.EqualFunc(a, b, ls2)
	case MultiPolygon2[T]:
		b, ok := b.(MultiPolygon2[T])
		return ok && slices.EqualFunc(a, b, poly2)
	case Rect[T]:
		b, ok := b.(Rect[T])
		return ok && c2(a.Min, b.Min) && c2(a.Max, b.Max)
	}

	return false
}

func near[T CoordFloat](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
