package processor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/geoz/geo"
	"github.com/woozymasta/geoz/geo/geojson"
	"github.com/woozymasta/geoz/geo/wkt"
)

const squareWKT = "POLYGON Z ((0 0 0, 1 0 0, 1 1 0, 0 0 0))"

func TestInferFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "a/b.geojson", want: FormatGeoJSON},
		{path: "b.JSON", want: FormatGeoJSON},
		{path: "c.wkt", want: FormatWKT},
		{path: "d.hex", want: FormatWKB},
		{path: "e.yml", want: FormatYAML},
	}
	for _, tc := range tests {
		got, err := InferFormat(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}

	_, err := InferFormat("f.shp")
	assert.Error(t, err)

	_, err = ResolveFormat("", "")
	assert.Error(t, err)

	f, err := ResolveFormat(" WKT ", "ignored.geojson")
	require.NoError(t, err)
	assert.Equal(t, FormatWKT, f)
}

func TestConvertEveryPair(t *testing.T) {
	want, err := wkt.Parse[float64](squareWKT)
	require.NoError(t, err)

	for _, from := range Formats() {
		for _, to := range Formats() {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				src, err := Encode(want, from, Options{})
				require.NoError(t, err)

				out, err := Convert(src, from, to, Options{})
				require.NoError(t, err)

				got, err := Decode(out, to)
				require.NoError(t, err)
				assert.True(t, geo.Equal(want, got), "got %v", got)
			})
		}
	}
}

func TestMinify(t *testing.T) {
	g := geo.Geometry[float64](geo.NewPoint(1.0, 2.0, 3.0))

	pretty, err := Encode(g, FormatGeoJSON, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")

	compact, err := Encode(g, FormatGeoJSON, Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(compact), "\n"))
	assert.JSONEq(t, string(pretty), string(compact))
}

func TestSplitCollections(t *testing.T) {
	src := "# two records\nPOINT Z (1 2 3)\n\nLINESTRING Z (0 0 0, 1 1 1)\n"

	g, err := Decode([]byte(src), FormatWKT)
	require.NoError(t, err)
	gc, err := geo.As[geo.GeometryCollection[float64]](g)
	require.NoError(t, err)
	require.Len(t, gc, 2)

	lines, err := Encode(g, FormatWKT, Options{Split: true})
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (1 2 3)\nLINESTRING Z (0 0 0, 1 1 1)\n", string(lines))

	joined, err := Encode(g, FormatWKT, Options{})
	require.NoError(t, err)
	assert.Equal(t, "GEOMETRYCOLLECTION (POINT Z (1 2 3), LINESTRING Z (0 0 0, 1 1 1))\n", string(joined))

	fc, err := Encode(g, FormatGeoJSON, Options{Split: true})
	require.NoError(t, err)
	var head struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(fc, &head))
	assert.Equal(t, "FeatureCollection", head.Type)
	assert.Len(t, head.Features, 2)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("POINT Z (1 2 3)\nPOINT Z EMPTY\n"), FormatWKT)
	require.ErrorIs(t, err, wkt.ErrEmptyPoint)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Decode([]byte("\n# nothing\n"), FormatWKT)
	assert.Error(t, err)

	_, err = Decode([]byte("zz"), FormatWKB)
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type":"Feature","geometry":null,"properties":null}`), FormatGeoJSON)
	var noGeom *geojson.FeatureHasNoGeometryError
	assert.ErrorAs(t, err, &noGeom)
}

func TestMercatorProjection(t *testing.T) {
	out, err := Convert([]byte("POINT Z (8192 8192 12)"), FormatWKT, FormatWKT, Options{MercatorSize: 16384})
	require.NoError(t, err)
	assert.Equal(t, "POINT Z (0 0 12)\n", string(out))
}
