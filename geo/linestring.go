package geo

// LineString is an ordered run of coordinates. An empty line string is valid
// and distinct from a closed ring; closure is a convention, not enforced.
type LineString[T CoordNum] []Coord[T]

// NewLineString copies coords into a new line string.
func NewLineString[T CoordNum](coords ...Coord[T]) LineString[T] {
	ls := make(LineString[T], len(coords))
	copy(ls, coords)
	return ls
}

// IsEmpty reports whether the line string has no coordinates.
func (ls LineString[T]) IsEmpty() bool {
	return len(ls) == 0
}

// IsClosed reports whether the first and last coordinates are equal.
// An empty line string counts as closed.
func (ls LineString[T]) IsClosed() bool {
	if len(ls) == 0 {
		return true
	}
	return ls[0] == ls[len(ls)-1]
}

// Close returns a copy that ends on its first coordinate.
func (ls LineString[T]) Close() LineString[T] {
	out := ls.Clone()
	if !ls.IsClosed() {
		out = append(out, ls[0])
	}
	return out
}

// Clone returns a copy that shares no storage with ls.
func (ls LineString[T]) Clone() LineString[T] {
	out := make(LineString[T], len(ls), len(ls)+1)
	copy(out, ls)
	return out
}

// Points returns every coordinate as a point.
func (ls LineString[T]) Points() []Point[T] {
	pts := make([]Point[T], len(ls))
	for i, c := range ls {
		pts[i] = Point[T]{Coord: c}
	}
	return pts
}

// Lines returns the consecutive segments.
func (ls LineString[T]) Lines() []Line[T] {
	if len(ls) < 2 {
		return nil
	}
	lines := make([]Line[T], 0, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		lines = append(lines, Line[T]{Start: ls[i-1], End: ls[i]})
	}
	return lines
}
