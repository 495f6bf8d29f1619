package geo

import "golang.org/x/sync/errgroup"

// MultiPoint is an ordered, possibly empty set of points.
type MultiPoint[T CoordNum] []Point[T]

// MultiLineString is an ordered, possibly empty set of line strings.
type MultiLineString[T CoordNum] []LineString[T]

// MultiPolygon is an ordered, possibly empty set of polygons.
type MultiPolygon[T CoordNum] []Polygon[T]

// GeometryCollection is an ordered, possibly empty set of geometries of any kind,
// including nested collections.
type GeometryCollection[T CoordNum] []Geometry[T]

// ParallelEach calls fn for every point on up to limit goroutines (unbounded when limit <= 0).
// Calls are not ordered; fn receives the index of the point it was given.
func (mp MultiPoint[T]) ParallelEach(limit int, fn func(i int, p Point[T])) {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range mp {
		g.Go(func() error {
			fn(i, p)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelMap maps every point through fn on up to limit goroutines.
// Result i corresponds to point i. The first error aborts and is returned
// without a partial result.
func ParallelMap[T CoordNum, R any](mp MultiPoint[T], limit int, fn func(Point[T]) (R, error)) ([]R, error) {
	out := make([]R, len(mp))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range mp {
		g.Go(func() error {
			r, err := fn(p)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
