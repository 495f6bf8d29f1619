package geo

// Line is a segment between two coordinates.
type Line[T CoordNum] struct {
	Start Coord[T] `json:"start" yaml:"start"`
	End   Coord[T] `json:"end" yaml:"end"`
}

// NewLine builds a segment from start to end.
func NewLine[T CoordNum](start, end Coord[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Delta returns End - Start.
func (l Line[T]) Delta() Coord[T] {
	return l.End.Sub(l.Start)
}

// Dx is the change along X from start to end.
func (l Line[T]) Dx() T { return l.End.X - l.Start.X }

// Dy is the change along Y.
func (l Line[T]) Dy() T { return l.End.Y - l.Start.Y }

// Dz is the change along Z.
func (l Line[T]) Dz() T { return l.End.Z - l.Start.Z }

// Slope is dy/dx. For integer scalars a vertical segment panics with a
// division by zero, for floats it yields ±Inf or NaN.
func (l Line[T]) Slope() T {
	return l.Dy() / l.Dx()
}

// Determinant of the planar 2x2 matrix [start; end].
func (l Line[T]) Determinant() T {
	return l.Start.X*l.End.Y - l.Start.Y*l.End.X
}

// StartPoint returns the start as a point.
func (l Line[T]) StartPoint() Point[T] { return Point[T]{Coord: l.Start} }

// EndPoint returns the end as a point.
func (l Line[T]) EndPoint() Point[T] { return Point[T]{Coord: l.End} }

// Points returns both end points.
func (l Line[T]) Points() (Point[T], Point[T]) {
	return l.StartPoint(), l.EndPoint()
}
