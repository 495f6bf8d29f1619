package processor

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/woozymasta/geoz/geo"
	"github.com/woozymasta/geoz/geo/geojson"
	"github.com/woozymasta/geoz/geo/wkb"
	"github.com/woozymasta/geoz/geo/wkt"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

const jsonMediaType = "application/json"

// Options tune how geometries are written.
type Options struct {
	// Minify compacts JSON output.
	Minify bool
	// Split writes the members of a collection as separate records: a
	// FeatureCollection for GeoJSON and YAML, one line each for WKT and WKB.
	Split bool
	// MercatorSize projects planar input on a square world of this size to
	// lon/lat degrees before writing. Zero disables the projection.
	MercatorSize float64
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(jsonMediaType, minjson.Minify)
	return m
}

// Convert decodes data in one format and encodes it in another.
func Convert(data []byte, from, to Format, opts Options) ([]byte, error) {
	g, err := Decode(data, from)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", from)
	}

	if opts.MercatorSize > 0 {
		size := opts.MercatorSize
		g = geo.Transform(g, func(c geo.Coord[float64]) geo.Coord[float64] {
			return geo.InverseMercator(c, size)
		})
	}

	out, err := Encode(g, to, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", to)
	}
	return out, nil
}

// Decode reads a single geometry. Line based formats with several records
// yield a GeometryCollection.
func Decode(data []byte, f Format) (geo.Geometry[float64], error) {
	switch f {
	case FormatGeoJSON:
		return decodeGeoJSON(data)
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return decodeGeoJSON(raw)
	case FormatWKT:
		return decodeLines(data, wkt.Parse[float64])
	case FormatWKB:
		return decodeLines(data, func(line string) (geo.Geometry[float64], error) {
			raw, err := hex.DecodeString(line)
			if err != nil {
				return nil, err
			}
			return wkb.Unmarshal[float64](raw)
		})
	}
	return nil, errors.Errorf("unknown format %q", f)
}

// Encode writes g in format f.
func Encode(g geo.Geometry[float64], f Format, opts Options) ([]byte, error) {
	if g == nil {
		return nil, errors.New("nothing to encode")
	}

	switch f {
	case FormatGeoJSON:
		return encodeGeoJSON(g, opts)
	case FormatYAML:
		raw, err := encodeGeoJSON(g, Options{Split: opts.Split, Minify: true})
		if err != nil {
			return nil, err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return yaml.Marshal(doc)
	case FormatWKT:
		return encodeLines(g, opts.Split, wkt.Marshal[float64])
	case FormatWKB:
		return encodeLines(g, opts.Split, func(g geo.Geometry[float64]) (string, error) {
			raw, err := wkb.Marshal(g, binary.LittleEndian)
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(raw), nil
		})
	}
	return nil, errors.Errorf("unknown format %q", f)
}

func decodeGeoJSON(data []byte) (geo.Geometry[float64], error) {
	doc, err := geojson.UnmarshalDocument(data)
	if err != nil {
		return nil, err
	}
	return geojson.DecodeDocument[float64](doc)
}

func encodeGeoJSON(g geo.Geometry[float64], opts Options) ([]byte, error) {
	var v any = geojson.Encode(g)
	if gc, ok := g.(geo.GeometryCollection[float64]); ok && opts.Split {
		v = geojson.EncodeFeatureCollection(gc)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if opts.Minify {
		if data, err = minifier.Bytes(jsonMediaType, data); err != nil {
			return nil, err
		}
	}
	return append(data, '\n'), nil
}

// decodeLines parses one record per line; blank lines and lines starting
// with '#' are skipped.
func decodeLines(data []byte, parse func(string) (geo.Geometry[float64], error)) (geo.Geometry[float64], error) {
	var gc geo.GeometryCollection[float64]
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		gc = append(gc, g)
	}

	switch len(gc) {
	case 0:
		return nil, errors.New("no geometries found")
	case 1:
		return gc[0], nil
	}
	return gc, nil
}

func encodeLines(g geo.Geometry[float64], split bool, marshal func(geo.Geometry[float64]) (string, error)) ([]byte, error) {
	records := []geo.Geometry[float64]{g}
	if gc, ok := g.(geo.GeometryCollection[float64]); ok && split {
		records = gc
	}

	var buf bytes.Buffer
	for _, r := range records {
		line, err := marshal(r)
		if err != nil {
			return nil, err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
