package geo

// Point is a single location. It always holds a coordinate; exchange formats
// that allow empty points are rejected by the decoders, not here.
type Point[T CoordNum] struct {
	Coord[T]
}

// NewPoint builds a point from its components.
func NewPoint[T CoordNum](x, y, z T) Point[T] {
	return Point[T]{Coord: Coord[T]{X: x, Y: y, Z: z}}
}

// PointFromCoord wraps c.
func PointFromCoord[T CoordNum](c Coord[T]) Point[T] {
	return Point[T]{Coord: c}
}

// Lng is an alias for X when the point holds geographic coordinates.
func (p Point[T]) Lng() T { return p.X }

// Lat is an alias for Y.
func (p Point[T]) Lat() T { return p.Y }

// Alt is an alias for Z.
func (p Point[T]) Alt() T { return p.Z }

// Neg negates the point.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{Coord: p.Coord.Neg()}
}

// Add returns p + o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{Coord: p.Coord.Add(o.Coord)}
}

// Sub returns p - o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{Coord: p.Coord.Sub(o.Coord)}
}

// Mul scales the point by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{Coord: p.Coord.Mul(s)}
}

// Div divides the point by s.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{Coord: p.Coord.Div(s)}
}

// Dot returns the dot product of p and o treated as vectors.
func (p Point[T]) Dot(o Point[T]) T {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Cross returns the planar cross product of (b - p) and (c - p).
// It ignores the third axis and is positive when p, b, c turn counter-clockwise.
func (p Point[T]) Cross(b, c Point[T]) T {
	return (b.X-p.X)*(c.Y-p.Y) - (b.Y-p.Y)*(c.X-p.X)
}
