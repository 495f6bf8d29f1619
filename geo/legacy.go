package geo

// Two-axis counterparts of the entities, kept for producers and consumers
// that have no third axis. Decoders never produce them.

// Coord2 is a two-axis coordinate.
type Coord2[T CoordNum] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// WithZ lifts c onto the third axis at height z.
func (c Coord2[T]) WithZ(z T) Coord[T] {
	return Coord[T]{X: c.X, Y: c.Y, Z: z}
}

// Point2 is a two-axis point.
type Point2[T CoordNum] struct {
	Coord2[T]
}

// NewPoint2 builds a two-axis point.
func NewPoint2[T CoordNum](x, y T) Point2[T] {
	return Point2[T]{Coord2: Coord2[T]{X: x, Y: y}}
}

// Line2 is a two-axis segment.
type Line2[T CoordNum] struct {
	Start Coord2[T] `json:"start" yaml:"start"`
	End   Coord2[T] `json:"end" yaml:"end"`
}

// LineString2 is a two-axis line string.
type LineString2[T CoordNum] []Coord2[T]

// Polygon2 is a two-axis polygon.
type Polygon2[T CoordNum] struct {
	Exterior  LineString2[T]   `json:"exterior" yaml:"exterior"`
	Interiors []LineString2[T] `json:"interiors" yaml:"interiors"`
}

// Rings flattens the polygon exterior first.
func (p Polygon2[T]) Rings() []LineString2[T] {
	rings := make([]LineString2[T], 0, len(p.Interiors)+1)
	rings = append(rings, p.Exterior)
	return append(rings, p.Interiors...)
}

// MultiPoint2 is an ordered set of two-axis points.
type MultiPoint2[T CoordNum] []Point2[T]

// MultiLineString2 is an ordered set of two-axis line strings.
type MultiLineString2[T CoordNum] []LineString2[T]

// MultiPolygon2 is an ordered set of two-axis polygons.
type MultiPolygon2[T CoordNum] []Polygon2[T]

// Rect is an axis-aligned two-axis box.
type Rect[T CoordNum] struct {
	Min Coord2[T] `json:"min" yaml:"min"`
	Max Coord2[T] `json:"max" yaml:"max"`
}

// NewRect builds a box from two opposite corners in any order.
func NewRect[T CoordNum](a, b Coord2[T]) Rect[T] {
	return Rect[T]{
		Min: Coord2[T]{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Coord2[T]{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Width is the extent along X.
func (r Rect[T]) Width() T { return r.Max.X - r.Min.X }

// Height is the extent along Y.
func (r Rect[T]) Height() T { return r.Max.Y - r.Min.Y }

// ToPolygon returns the box as a closed counter-clockwise ring of five coordinates.
func (r Rect[T]) ToPolygon() Polygon2[T] {
	return Polygon2[T]{
		Exterior: LineString2[T]{
			{X: r.Min.X, Y: r.Min.Y},
			{X: r.Max.X, Y: r.Min.Y},
			{X: r.Max.X, Y: r.Max.Y},
			{X: r.Min.X, Y: r.Max.Y},
			{X: r.Min.X, Y: r.Min.Y},
		},
		Interiors: []LineString2[T]{},
	}
}
