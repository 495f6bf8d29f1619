package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/geoz/geo"

	gj "github.com/paulmach/go.geojson"
)

const featureCollection = `{"type":"FeatureCollection","features":[
	{"type":"Feature","id":"a","geometry":{"type":"Point","coordinates":[1,2,3]},"properties":{}},
	{"type":"Feature","id":"b","geometry":null,"properties":{}},
	{"type":"Feature","id":"c","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{}}
]}`

func TestUnmarshalDocumentSniffsType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `{"type":"Point","coordinates":[1,2]}`, want: "Point"},
		{raw: `{"type":"Feature","geometry":null,"properties":null}`, want: "Feature"},
		{raw: featureCollection, want: "FeatureCollection"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			d, err := UnmarshalDocument([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Type())
		})
	}

	_, err := UnmarshalDocument([]byte(`{"coordinates":[1,2]}`))
	assert.Error(t, err)

	_, err = UnmarshalDocument([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeFeatureWithoutGeometry(t *testing.T) {
	f := gj.NewFeature(nil)
	f.ID = "road-7"

	_, err := DecodeFeature[float64](f)
	var noGeom *FeatureHasNoGeometryError
	require.ErrorAs(t, err, &noGeom)
	assert.Equal(t, "feature road-7 has no geometry", err.Error())

	_, err = DecodeFeatureAs(nil, DecodePoint[float64])
	require.ErrorAs(t, err, &noGeom)
	assert.Equal(t, "feature has no geometry", err.Error())
}

func TestDecodeFeatureAs(t *testing.T) {
	f := gj.NewFeature(gj.NewPointGeometry([]float64{4, 5, 6}))

	p, err := DecodeFeatureAs(f, DecodePoint[float64])
	require.NoError(t, err)
	assert.Equal(t, geo.NewPoint(4.0, 5.0, 6.0), p)

	_, err = DecodeFeatureAs(f, DecodePolygon[float64])
	var convErr *InvalidGeometryConversionError
	assert.ErrorAs(t, err, &convErr)
}

func TestDecodeCollectionSkipsEmptyFeatures(t *testing.T) {
	d, err := UnmarshalDocument([]byte(featureCollection))
	require.NoError(t, err)

	gc, err := DecodeCollection[float64](d)
	require.NoError(t, err)
	require.Len(t, gc, 2)
	assert.Equal(t, geo.KindPoint, gc[0].Kind())
	assert.Equal(t, geo.KindLineString, gc[1].Kind())

	g, err := DecodeDocument[float64](d)
	require.NoError(t, err)
	assert.True(t, geo.Equal(geo.Geometry[float64](gc), g))
}

func TestFeatureDocumentAsymmetry(t *testing.T) {
	d, err := UnmarshalDocument([]byte(`{"type":"Feature","geometry":null,"properties":null}`))
	require.NoError(t, err)

	gc, err := DecodeCollection[float64](d)
	require.NoError(t, err)
	assert.Empty(t, gc)

	_, err = DecodeDocument[float64](d)
	var noGeom *FeatureHasNoGeometryError
	assert.ErrorAs(t, err, &noGeom)
}

func TestDecodeCollectionWrapsBareGeometry(t *testing.T) {
	d, err := UnmarshalDocument([]byte(`{"type":"Point","coordinates":[1,2,3]}`))
	require.NoError(t, err)

	gc, err := DecodeCollection[float64](d)
	require.NoError(t, err)
	require.Len(t, gc, 1)
	assert.Equal(t, geo.Geometry[float64](geo.NewPoint(1.0, 2.0, 3.0)), gc[0])
}

func TestDocumentMarshalJSON(t *testing.T) {
	d := Document{Geometry: EncodePoint(geo.NewPoint(1.0, 2.0, 3.0))}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[1,2,3]}`, string(raw))

	_, err = json.Marshal(Document{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestEmptyDocument(t *testing.T) {
	_, err := DecodeCollection[float64](nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = DecodeDocument[float64](&Document{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
