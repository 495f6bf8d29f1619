package geojson

import (
	"fmt"

	gj "github.com/paulmach/go.geojson"
)

// InvalidGeometryConversionError is returned when a GeoJSON value of one
// type is decoded as another. No coercion between types is attempted.
type InvalidGeometryConversionError struct {
	Expected string
	Found    string
}

func (e *InvalidGeometryConversionError) Error() string {
	return fmt.Sprintf("Expected type: `%s`, but found `%s`", e.Expected, e.Found)
}

// FeatureHasNoGeometryError is returned when a feature without geometry is
// decoded where a geometry is mandatory.
type FeatureHasNoGeometryError struct {
	Feature *gj.Feature
}

func (e *FeatureHasNoGeometryError) Error() string {
	if e.Feature != nil && e.Feature.ID != nil {
		return fmt.Sprintf("feature %v has no geometry", e.Feature.ID)
	}
	return "feature has no geometry"
}

// InvalidPositionError is returned for a position with fewer than two elements.
type InvalidPositionError struct {
	Len int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("position needs at least 2 elements, got %d", e.Len)
}
