// Package processor converts geometry files between exchange formats.
package processor

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format names a file encoding of geometries.
type Format string

const (
	// FormatGeoJSON is a GeoJSON geometry, feature or feature collection.
	FormatGeoJSON Format = "geojson"
	// FormatWKT holds one literal per line.
	FormatWKT Format = "wkt"
	// FormatWKB holds one hex encoded WKB value per line.
	FormatWKB Format = "wkb"
	// FormatYAML is a GeoJSON document written as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatGeoJSON, FormatWKT, FormatWKB, FormatYAML}
}

var extensions = map[string]Format{
	".geojson": FormatGeoJSON,
	".json":    FormatGeoJSON,
	".wkt":     FormatWKT,
	".wkb":     FormatWKB,
	".hex":     FormatWKB,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q", name)
}

// InferFormat picks the format from the file extension of path.
func InferFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.Errorf("cannot infer format from %q", path)
}

// ResolveFormat returns the explicit format when set, otherwise infers it from path.
func ResolveFormat(explicit, path string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if path == "" {
		return "", errors.New("format is required when reading stdin or writing stdout")
	}
	return InferFormat(path)
}

// ContentType is the media type used by the HTTP API.
func (f Format) ContentType() string {
	switch f {
	case FormatGeoJSON:
		return "application/geo+json"
	case FormatYAML:
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}
