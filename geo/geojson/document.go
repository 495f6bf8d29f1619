package geojson

import (
	"encoding/json"
	"errors"

	"github.com/woozymasta/geoz/geo"

	gj "github.com/paulmach/go.geojson"
)

// Document is a top-level GeoJSON object. Exactly one field is set.
type Document struct {
	Geometry          *gj.Geometry
	Feature           *gj.Feature
	FeatureCollection *gj.FeatureCollection
}

// ErrEmptyDocument is returned for a document with no content.
var ErrEmptyDocument = errors.New("geojson: empty document")

// UnmarshalDocument decodes a geometry, a feature or a feature collection
// depending on the "type" member.
func UnmarshalDocument(data []byte) (*Document, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case "":
		return nil, errors.New("geojson: document has no type")
	case "Feature":
		f, err := gj.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		return &Document{Feature: f}, nil
	case "FeatureCollection":
		fc, err := gj.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		return &Document{FeatureCollection: fc}, nil
	}

	g, err := gj.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	return &Document{Geometry: g}, nil
}

// MarshalJSON writes whichever member is set.
func (d Document) MarshalJSON() ([]byte, error) {
	switch {
	case d.Geometry != nil:
		return json.Marshal(d.Geometry)
	case d.Feature != nil:
		return json.Marshal(d.Feature)
	case d.FeatureCollection != nil:
		return json.Marshal(d.FeatureCollection)
	}
	return nil, ErrEmptyDocument
}

// Type returns the GeoJSON type of the document root.
func (d *Document) Type() string {
	switch {
	case d == nil:
		return ""
	case d.Geometry != nil:
		return string(d.Geometry.Type)
	case d.Feature != nil:
		return "Feature"
	case d.FeatureCollection != nil:
		return "FeatureCollection"
	}
	return ""
}

// DecodeFeature decodes the geometry of f. A feature without geometry fails
// with *FeatureHasNoGeometryError.
func DecodeFeature[T geo.CoordFloat](f *gj.Feature) (geo.Geometry[T], error) {
	return DecodeFeatureAs(f, DecodeGeometry[T])
}

// DecodeFeatureAs decodes the geometry of f with a concrete decoder, e.g.
//
//	poly, err := geojson.DecodeFeatureAs(f, geojson.DecodePolygon[float64])
func DecodeFeatureAs[G any](f *gj.Feature, decode func(*gj.Geometry) (G, error)) (G, error) {
	if f == nil || f.Geometry == nil {
		var zero G
		return zero, &FeatureHasNoGeometryError{Feature: f}
	}
	return decode(f.Geometry)
}

// DecodeFeatureCollection collects the geometries of every feature in order.
// Features without geometry are skipped.
func DecodeFeatureCollection[T geo.CoordFloat](fc *gj.FeatureCollection) (geo.GeometryCollection[T], error) {
	if fc == nil {
		return geo.GeometryCollection[T]{}, nil
	}
	gc := make(geo.GeometryCollection[T], 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		g, err := DecodeGeometry[T](f.Geometry)
		if err != nil {
			return nil, err
		}
		gc = append(gc, g)
	}
	return gc, nil
}

// DecodeCollection reads any document as a geometry collection:
//   - a feature collection yields its feature geometries, skipping features without one;
//   - a feature yields a one-member collection, or an empty one when it has no geometry;
//   - a bare geometry yields a one-member collection.
func DecodeCollection[T geo.CoordFloat](d *Document) (geo.GeometryCollection[T], error) {
	switch {
	case d == nil:
		return nil, ErrEmptyDocument
	case d.FeatureCollection != nil:
		return DecodeFeatureCollection[T](d.FeatureCollection)
	case d.Feature != nil:
		if d.Feature.Geometry == nil {
			return geo.GeometryCollection[T]{}, nil
		}
		g, err := DecodeGeometry[T](d.Feature.Geometry)
		if err != nil {
			return nil, err
		}
		return geo.GeometryCollection[T]{g}, nil
	case d.Geometry != nil:
		g, err := DecodeGeometry[T](d.Geometry)
		if err != nil {
			return nil, err
		}
		return geo.GeometryCollection[T]{g}, nil
	}
	return nil, ErrEmptyDocument
}

// DecodeDocument reads a document as a single geometry. A feature must carry
// a geometry; a feature collection yields the wrapping GeometryCollection.
func DecodeDocument[T geo.CoordFloat](d *Document) (geo.Geometry[T], error) {
	switch {
	case d == nil:
		return nil, ErrEmptyDocument
	case d.Geometry != nil:
		return DecodeGeometry[T](d.Geometry)
	case d.Feature != nil:
		return DecodeFeature[T](d.Feature)
	case d.FeatureCollection != nil:
		gc, err := DecodeFeatureCollection[T](d.FeatureCollection)
		if err != nil {
			return nil, err
		}
		return gc, nil
	}
	return nil, ErrEmptyDocument
}
