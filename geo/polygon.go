package geo

// Polygon is an exterior ring with optional holes.
//
// A polygon whose exterior is empty but which still has interiors is invalid
// but is carried through every conversion untouched.
type Polygon[T CoordNum] struct {
	Exterior  LineString[T]   `json:"exterior" yaml:"exterior"`
	Interiors []LineString[T] `json:"interiors" yaml:"interiors"`
}

// NewPolygon builds a polygon from its rings.
func NewPolygon[T CoordNum](exterior LineString[T], interiors ...LineString[T]) Polygon[T] {
	inner := make([]LineString[T], len(interiors))
	copy(inner, interiors)
	return Polygon[T]{Exterior: exterior, Interiors: inner}
}

// EmptyPolygon returns a polygon with an empty exterior and no interiors.
func EmptyPolygon[T CoordNum]() Polygon[T] {
	return Polygon[T]{Exterior: LineString[T]{}, Interiors: []LineString[T]{}}
}

// IsEmpty reports whether the polygon has neither exterior coordinates nor holes.
func (p Polygon[T]) IsEmpty() bool {
	return len(p.Exterior) == 0 && len(p.Interiors) == 0
}

// Rings flattens the polygon to [exterior, interior_0, interior_1, ...].
// Ring 0 is always present, even when the exterior is empty.
func (p Polygon[T]) Rings() []LineString[T] {
	rings := make([]LineString[T], 0, len(p.Interiors)+1)
	rings = append(rings, p.Exterior)
	return append(rings, p.Interiors...)
}

// PolygonFromRings is the inverse of Rings: ring 0 becomes the exterior and
// the rest become interiors in order. No rings yield the empty polygon.
func PolygonFromRings[T CoordNum](rings []LineString[T]) Polygon[T] {
	if len(rings) == 0 {
		return EmptyPolygon[T]()
	}
	interiors := make([]LineString[T], len(rings)-1)
	copy(interiors, rings[1:])
	return Polygon[T]{Exterior: rings[0], Interiors: interiors}
}

// Triangle is a three-vertex polygon shape.
type Triangle[T CoordNum] struct {
	A, B, C Coord[T]
}

// ToPolygon closes the triangle into a single four-coordinate ring.
func (t Triangle[T]) ToPolygon() Polygon[T] {
	return Polygon[T]{
		Exterior:  LineString[T]{t.A, t.B, t.C, t.A},
		Interiors: []LineString[T]{},
	}
}
