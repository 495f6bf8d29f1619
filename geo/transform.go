package geo

// Transform returns a copy of g with fn applied to every coordinate.
// Two-axis variants are lifted to z = 0 for the call and the returned z is dropped.
func Transform[T CoordNum](g Geometry[T], fn func(Coord[T]) Coord[T]) Geometry[T] {
	fn2 := func(c Coord2[T]) Coord2[T] { return fn(c.WithZ(0)).XY() }

	switch g := g.(type) {
	case Point[T]:
		return Point[T]{Coord: fn(g.Coord)}
	case Line[T]:
		return Line[T]{Start: fn(g.Start), End: fn(g.End)}
	case LineString[T]:
		return transformLineString(g, fn)
	case Polygon[T]:
		return transformPolygon(g, fn)
	case MultiPoint[T]:
		out := make(MultiPoint[T], len(g))
		for i, p := range g {
			out[i] = Point[T]{Coord: fn(p.Coord)}
		}
		return out
	case MultiLineString[T]:
		out := make(MultiLineString[T], len(g))
		for i, ls := range g {
			out[i] = transformLineString(ls, fn)
		}
		return out
	case MultiPolygon[T]:
		out := make(MultiPolygon[T], len(g))
		for i, p := range g {
			out[i] = transformPolygon(p, fn)
		}
		return out
	case GeometryCollection[T]:
		out := make(GeometryCollection[T], len(g))
		for i, member := range g {
			out[i] = Transform(member, fn)
		}
		return out
	case Point2[T]:
		return Point2[T]{Coord2: fn2(g.Coord2)}
	case Line2[T]:
		return Line2[T]{Start: fn2(g.Start), End: fn2(g.End)}
	case LineString2[T]:
		return transformLineString2(g, fn2)
	case Polygon2[T]:
		return transformPolygon2(g, fn2)
	case MultiPoint2[T]:
		out := make(MultiPoint2[T], len(g))
		for i, p := range g {
			out[i] = Point2[T]{Coord2: fn2(p.Coord2)}
		}
		return out
	case MultiLineString2[T]:
		out := make(MultiLineString2[T], len(g))
		for i, ls := range g {
			out[i] = transformLineString2(ls, fn2)
		}
		return out
	case MultiPolygon2[T]:
		out := make(MultiPolygon2[T], len(g))
		for i, p := range g {
			out[i] = transformPolygon2(p, fn2)
		}
		return out
	case Rect[T]:
		return NewRect(fn2(g.Min), fn2(g.Max))
	}
	return g
}

func transformLineString[T CoordNum](ls LineString[T], fn func(Coord[T]) Coord[T]) LineString[T] {
	out := make(LineString[T], len(ls))
	for i, c := range ls {
		out[i] = fn(c)
	}
	return out
}

func transformPolygon[T CoordNum](p Polygon[T], fn func(Coord[T]) Coord[T]) Polygon[T] {
	interiors := make([]LineString[T], len(p.Interiors))
	for i, ring := range p.Interiors {
		interiors[i] = transformLineString(ring, fn)
	}
	return Polygon[T]{Exterior: transformLineString(p.Exterior, fn), Interiors: interiors}
}

func transformLineString2[T CoordNum](ls LineString2[T], fn func(Coord2[T]) Coord2[T]) LineString2[T] {
	out := make(LineString2[T], len(ls))
	for i, c := range ls {
		out[i] = fn(c)
	}
	return out
}

func transformPolygon2[T CoordNum](p Polygon2[T], fn func(Coord2[T]) Coord2[T]) Polygon2[T] {
	interiors := make([]LineString2[T], len(p.Interiors))
	for i, ring := range p.Interiors {
		interiors[i] = transformLineString2(ring, fn)
	}
	return Polygon2[T]{Exterior: transformLineString2(p.Exterior, fn), Interiors: interiors}
}
