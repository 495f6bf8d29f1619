package geo

// Coord is a three-axis coordinate. It has no identity; two coordinates
// are equal when all of their components are.
type Coord[T CoordNum] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// NewCoord builds a coordinate from its components.
func NewCoord[T CoordNum](x, y, z T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: z}
}

// CoordFromArray builds a coordinate from an [x, y, z] array.
func CoordFromArray[T CoordNum](a [3]T) Coord[T] {
	return Coord[T]{X: a[0], Y: a[1], Z: a[2]}
}

// XYZ returns the components as a tuple.
func (c Coord[T]) XYZ() (x, y, z T) {
	return c.X, c.Y, c.Z
}

// Array returns the components as an [x, y, z] array.
func (c Coord[T]) Array() [3]T {
	return [3]T{c.X, c.Y, c.Z}
}

// XY drops the third axis.
func (c Coord[T]) XY() Coord2[T] {
	return Coord2[T]{X: c.X, Y: c.Y}
}

// Neg negates every component.
func (c Coord[T]) Neg() Coord[T] {
	return Coord[T]{X: -c.X, Y: -c.Y, Z: -c.Z}
}

// Add returns c + o.
func (c Coord[T]) Add(o Coord[T]) Coord[T] {
	return Coord[T]{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns c - o.
func (c Coord[T]) Sub(o Coord[T]) Coord[T] {
	return Coord[T]{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Mul scales every component by s.
func (c Coord[T]) Mul(s T) Coord[T] {
	return Coord[T]{X: c.X * s, Y: c.Y * s, Z: c.Z * s}
}

// Div divides every component by s.
func (c Coord[T]) Div(s T) Coord[T] {
	return Coord[T]{X: c.X / s, Y: c.Y / s, Z: c.Z / s}
}

// IsZero reports whether c is the zero coordinate.
func (c Coord[T]) IsZero() bool {
	return c == Coord[T]{}
}
