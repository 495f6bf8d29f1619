// Package geojson converts geo geometries to and from GeoJSON values
// (github.com/paulmach/go.geojson).
//
// Encoding is total: every geometry has a GeoJSON form. Current variants
// produce three-element positions, two-axis variants produce two-element ones.
// Decoding is fallible and only ever produces current (three-axis) variants.
package geojson

import (
	"fmt"

	"github.com/woozymasta/geoz/geo"

	gj "github.com/paulmach/go.geojson"
)

// Encode converts any geometry to a GeoJSON geometry.
// It panics on a nil geometry, which is not a member of the variant set.
func Encode[T geo.CoordFloat](g geo.Geometry[T]) *gj.Geometry {
	switch g := g.(type) {
	case geo.Point[T]:
		return EncodePoint(g)
	case geo.Line[T]:
		return EncodeLine(g)
	case geo.LineString[T]:
		return EncodeLineString(g)
	case geo.Polygon[T]:
		return EncodePolygon(g)
	case geo.MultiPoint[T]:
		return EncodeMultiPoint(g)
	case geo.MultiLineString[T]:
		return EncodeMultiLineString(g)
	case geo.MultiPolygon[T]:
		return EncodeMultiPolygon(g)
	case geo.GeometryCollection[T]:
		return EncodeGeometryCollection(g)
	case geo.Point2[T]:
		return gj.NewPointGeometry(position2(g.Coord2))
	case geo.Line2[T]:
		return gj.NewLineStringGeometry([][]float64{position2(g.Start), position2(g.End)})
	case geo.LineString2[T]:
		return gj.NewLineStringGeometry(positions2(g))
	case geo.Polygon2[T]:
		return gj.NewPolygonGeometry(rings2(g))
	case geo.MultiPoint2[T]:
		coords := make([][]float64, 0, len(g))
		for _, p := range g {
			coords = append(coords, position2(p.Coord2))
		}
		return &gj.Geometry{Type: gj.GeometryMultiPoint, MultiPoint: coords}
	case geo.MultiLineString2[T]:
		lines := make([][][]float64, 0, len(g))
		for _, ls := range g {
			lines = append(lines, positions2(ls))
		}
		return &gj.Geometry{Type: gj.GeometryMultiLineString, MultiLineString: lines}
	case geo.MultiPolygon2[T]:
		polygons := make([][][][]float64, 0, len(g))
		for _, p := range g {
			polygons = append(polygons, rings2(p))
		}
		return &gj.Geometry{Type: gj.GeometryMultiPolygon, MultiPolygon: polygons}
	case geo.Rect[T]:
		return gj.NewPolygonGeometry(rings2(g.ToPolygon()))
	}

	panic(fmt.Sprintf("geojson: cannot encode %s", geo.TypeName(g)))
}

// EncodePoint converts a point to an [x, y, z] position.
func EncodePoint[T geo.CoordFloat](p geo.Point[T]) *gj.Geometry {
	return gj.NewPointGeometry(position(p.Coord))
}

// EncodeLine converts a segment to a two-position LineString.
func EncodeLine[T geo.CoordFloat](l geo.Line[T]) *gj.Geometry {
	return gj.NewLineStringGeometry([][]float64{position(l.Start), position(l.End)})
}

// EncodeLineString keeps the coordinate order.
func EncodeLineString[T geo.CoordFloat](ls geo.LineString[T]) *gj.Geometry {
	return gj.NewLineStringGeometry(positions(ls))
}

// EncodePolygon writes the exterior as ring 0, even when it is empty,
// followed by the interiors in order.
func EncodePolygon[T geo.CoordFloat](p geo.Polygon[T]) *gj.Geometry {
	return gj.NewPolygonGeometry(rings(p))
}

// EncodeTriangle writes a single ring closed by repeating the first vertex.
func EncodeTriangle[T geo.CoordFloat](t geo.Triangle[T]) *gj.Geometry {
	return EncodePolygon(t.ToPolygon())
}

// EncodeMultiPoint writes one position per point, in order.
func EncodeMultiPoint[T geo.CoordFloat](mp geo.MultiPoint[T]) *gj.Geometry {
	coords := make([][]float64, 0, len(mp))
	for _, p := range mp {
		coords = append(coords, position(p.Coord))
	}
	return &gj.Geometry{Type: gj.GeometryMultiPoint, MultiPoint: coords}
}

// EncodeMultiLineString writes one position list per line string, in order.
func EncodeMultiLineString[T geo.CoordFloat](mls geo.MultiLineString[T]) *gj.Geometry {
	lines := make([][][]float64, 0, len(mls))
	for _, ls := range mls {
		lines = append(lines, positions(ls))
	}
	return &gj.Geometry{Type: gj.GeometryMultiLineString, MultiLineString: lines}
}

// EncodeMultiPolygon writes the rings of every polygon as EncodePolygon does.
func EncodeMultiPolygon[T geo.CoordFloat](mp geo.MultiPolygon[T]) *gj.Geometry {
	polygons := make([][][][]float64, 0, len(mp))
	for _, p := range mp {
		polygons = append(polygons, rings(p))
	}
	return &gj.Geometry{Type: gj.GeometryMultiPolygon, MultiPolygon: polygons}
}

// EncodeGeometryCollection encodes every member recursively, in order.
func EncodeGeometryCollection[T geo.CoordFloat](gc geo.GeometryCollection[T]) *gj.Geometry {
	members := make([]*gj.Geometry, 0, len(gc))
	for _, g := range gc {
		members = append(members, Encode(g))
	}
	return &gj.Geometry{Type: gj.GeometryCollection, Geometries: members}
}

// EncodeFeatureCollection wraps every member of gc in its own feature.
func EncodeFeatureCollection[T geo.CoordFloat](gc geo.GeometryCollection[T]) *gj.FeatureCollection {
	fc := gj.NewFeatureCollection()
	fc.Features = make([]*gj.Feature, 0, len(gc))
	for _, g := range gc {
		fc.AddFeature(gj.NewFeature(Encode(g)))
	}
	return fc
}

func position[T geo.CoordFloat](c geo.Coord[T]) []float64 {
	return []float64{float64(c.X), float64(c.Y), float64(c.Z)}
}

func positions[T geo.CoordFloat](ls geo.LineString[T]) [][]float64 {
	out := make([][]float64, 0, len(ls))
	for _, c := range ls {
		out = append(out, position(c))
	}
	return out
}

func rings[T geo.CoordFloat](p geo.Polygon[T]) [][][]float64 {
	out := make([][][]float64, 0, len(p.Interiors)+1)
	for _, ring := range p.Rings() {
		out = append(out, positions(ring))
	}
	return out
}

func position2[T geo.CoordFloat](c geo.Coord2[T]) []float64 {
	return []float64{float64(c.X), float64(c.Y)}
}

func positions2[T geo.CoordFloat](ls geo.LineString2[T]) [][]float64 {
	out := make([][]float64, 0, len(ls))
	for _, c := range ls {
		out = append(out, position2(c))
	}
	return out
}

func rings2[T geo.CoordFloat](p geo.Polygon2[T]) [][][]float64 {
	out := make([][][]float64, 0, len(p.Interiors)+1)
	for _, ring := range p.Rings() {
		out = append(out, positions2(ring))
	}
	return out
}
