package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples holds one value of every variant.
func samples() map[Kind]Geometry[float64] {
	ring := LineString[float64]{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}}
	ring2 := LineString2[float64]{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	return map[Kind]Geometry[float64]{
		KindPoint:              NewPoint(1.0, 2.0, 3.0),
		KindLine:               NewLine(NewCoord(0.0, 0.0, 0.0), NewCoord(1.0, 1.0, 1.0)),
		KindLineString:         ring,
		KindPolygon:            NewPolygon(ring),
		KindMultiPoint:         MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0)},
		KindMultiLineString:    MultiLineString[float64]{ring},
		KindMultiPolygon:       MultiPolygon[float64]{NewPolygon(ring)},
		KindGeometryCollection: GeometryCollection[float64]{NewPoint(1.0, 2.0, 3.0)},
		KindPoint2:             NewPoint2(1.0, 2.0),
		KindLine2:              Line2[float64]{Start: Coord2[float64]{X: 0, Y: 0}, End: Coord2[float64]{X: 1, Y: 1}},
		KindLineString2:        ring2,
		KindPolygon2:           Polygon2[float64]{Exterior: ring2},
		KindMultiPoint2:        MultiPoint2[float64]{NewPoint2(1.0, 2.0)},
		KindMultiLineString2:   MultiLineString2[float64]{ring2},
		KindMultiPolygon2:      MultiPolygon2[float64]{{Exterior: ring2}},
		KindRect:               NewRect(Coord2[float64]{X: 2, Y: 3}, Coord2[float64]{X: 0, Y: 1}),
	}
}

func TestKindsAreCovered(t *testing.T) {
	all := samples()
	require.Len(t, all, len(Kinds()))
	for _, k := range Kinds() {
		g, ok := all[k]
		require.True(t, ok, "no sample for %s", k)
		assert.Equal(t, k, g.Kind())
	}
}

func TestAsMatchingVariant(t *testing.T) {
	var g Geometry[float64] = NewPoint(1.0, 2.0, 3.0)
	p, err := As[Point[float64]](g)
	require.NoError(t, err)
	assert.Equal(t, NewPoint(1.0, 2.0, 3.0), p)
}

func TestAsMismatchNamesBothTypes(t *testing.T) {
	all := samples()
	for _, held := range Kinds() {
		for _, want := range Kinds() {
			if held == want {
				continue
			}
			g := all[held]
			err := asKind(want, g)
			require.Error(t, err, "%s as %s", held, want)

			var mismatch *MismatchedGeometryError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, TypeName(all[want]), mismatch.Expected)
			assert.Equal(t, TypeName(g), mismatch.Found)
		}
	}
}

func TestMismatchedGeometryMessage(t *testing.T) {
	var g Geometry[float64] = NewPoint(1.0, 2.0, 3.0)
	_, err := As[Polygon[float64]](g)
	require.EqualError(t, err, "Expected a geo.Polygon[float64], but found a geo.Point[float64]")
}

// asKind downcasts g to the variant named by k.
func asKind(k Kind, g Geometry[float64]) error {
	var err error
	switch k {
	case KindPoint:
		_, err = As[Point[float64]](g)
	case KindLine:
		_, err = As[Line[float64]](g)
	case KindLineString:
		_, err = As[LineString[float64]](g)
	case KindPolygon:
		_, err = As[Polygon[float64]](g)
	case KindMultiPoint:
		_, err = As[MultiPoint[float64]](g)
	case KindMultiLineString:
		_, err = As[MultiLineString[float64]](g)
	case KindMultiPolygon:
		_, err = As[MultiPolygon[float64]](g)
	case KindGeometryCollection:
		_, err = As[GeometryCollection[float64]](g)
	case KindPoint2:
		_, err = As[Point2[float64]](g)
	case KindLine2:
		_, err = As[Line2[float64]](g)
	case KindLineString2:
		_, err = As[LineString2[float64]](g)
	case KindPolygon2:
		_, err = As[Polygon2[float64]](g)
	case KindMultiPoint2:
		_, err = As[MultiPoint2[float64]](g)
	case KindMultiLineString2:
		_, err = As[MultiLineString2[float64]](g)
	case KindMultiPolygon2:
		_, err = As[MultiPolygon2[float64]](g)
	case KindRect:
		_, err = As[Rect[float64]](g)
	}
	return err
}

func TestEqual(t *testing.T) {
	all := samples()
	for k, g := range all {
		assert.True(t, Equal(g, g), "%s equals itself", k)
	}

	assert.True(t, Equal[float64](LineString[float64](nil), LineString[float64]{}))
	assert.True(t, Equal[float64](Polygon[float64]{}, EmptyPolygon[float64]()))
	assert.False(t, Equal(all[KindLineString], all[KindLineString2]))
	assert.False(t, Equal[float64](NewPoint(1.0, 2.0, 3.0), NewPoint(1.0, 2.0, 4.0)))
	assert.True(t, Equal[float64](nil, nil))
	assert.False(t, Equal[float64](nil, NewPoint(1.0, 2.0, 3.0)))

	nested := GeometryCollection[float64]{GeometryCollection[float64]{all[KindPolygon]}, all[KindMultiPoint]}
	clone := GeometryCollection[float64]{GeometryCollection[float64]{all[KindPolygon]}, all[KindMultiPoint]}
	assert.True(t, Equal[float64](nested, clone))
	assert.False(t, Equal[float64](nested, clone[:1]))
}

func TestEqualApprox(t *testing.T) {
	const eps = 1e-6

	tests := []struct {
		desc string
		a, b Geometry[float64]
		want bool
	}{
		{
			desc: "point within eps",
			a:    NewPoint(40.02, 116.34, 0.0),
			b:    NewPoint(40.0200004, 116.3399996, 0.0000009),
			want: true,
		},
		{
			desc: "point beyond eps",
			a:    NewPoint(40.02, 116.34, 0.0),
			b:    NewPoint(40.02, 116.34, 0.00001),
		},
		{
			desc: "line within eps",
			a:    NewLine(NewCoord(0.0, 0.0, 0.0), NewCoord(1.0, 1.0, 1.0)),
			b:    NewLine(NewCoord(0.0000005, 0.0, 0.0), NewCoord(1.0, 0.9999995, 1.0)),
			want: true,
		},
		{
			desc: "line beyond eps",
			a:    NewLine(NewCoord(0.0, 0.0, 0.0), NewCoord(1.0, 1.0, 1.0)),
			b:    NewLine(NewCoord(0.0, 0.0, 0.0), NewCoord(1.0, 1.0, 1.001)),
		},
		{
			desc: "multipoint within eps",
			a:    MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0), NewPoint(4.0, 5.0, 6.0)},
			b:    MultiPoint[float64]{NewPoint(1.0000001, 2.0, 3.0), NewPoint(4.0, 5.0, 5.9999999)},
			want: true,
		},
		{
			desc: "multipoint beyond eps",
			a:    MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0), NewPoint(4.0, 5.0, 6.0)},
			b:    MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0), NewPoint(4.1, 5.0, 6.0)},
		},
		{
			desc: "multipoint length differs",
			a:    MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0)},
			b:    MultiPoint[float64]{NewPoint(1.0, 2.0, 3.0), NewPoint(1.0, 2.0, 3.0)},
		},
		{
			desc: "nested collection within eps",
			a:    GeometryCollection[float64]{GeometryCollection[float64]{NewPoint(1.0, 2.0, 3.0)}},
			b:    GeometryCollection[float64]{GeometryCollection[float64]{NewPoint(1.0, 2.0000002, 3.0)}},
			want: true,
		},
		{
			desc: "nested collection beyond eps",
			a:    GeometryCollection[float64]{GeometryCollection[float64]{NewPoint(1.0, 2.0, 3.0)}},
			b:    GeometryCollection[float64]{GeometryCollection[float64]{NewPoint(1.0, 2.0, 3.01)}},
		},
		{
			desc: "variants differ",
			a:    NewPoint(1.0, 2.0, 0.0),
			b:    NewPoint2(1.0, 2.0),
		},
		{
			desc: "nan",
			a:    NewPoint(math.NaN(), 0.0, 0.0),
			b:    NewPoint(math.NaN(), 0.0, 0.0),
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, EqualApprox(tc.a, tc.b, eps))
			assert.Equal(t, tc.want, EqualApprox(tc.b, tc.a, eps))
		})
	}

	for k, g := range samples() {
		assert.True(t, EqualApprox(g, g, 0), "%s equals itself", k)
	}
}

func TestLegacyKinds(t *testing.T) {
	for k, g := range samples() {
		assert.Equal(t, k.IsLegacy(), g.Kind().IsLegacy())
	}
	assert.True(t, KindRect.IsLegacy())
	assert.False(t, KindGeometryCollection.IsLegacy())
}

func TestRectToPolygon(t *testing.T) {
	r := NewRect(Coord2[float64]{X: 2, Y: 3}, Coord2[float64]{X: 0, Y: 1})
	assert.Equal(t, 2.0, r.Width())
	assert.Equal(t, 2.0, r.Height())

	p := r.ToPolygon()
	require.Len(t, p.Exterior, 5)
	assert.Equal(t, p.Exterior[0], p.Exterior[4])
	if diff := cmp.Diff(Coord2[float64]{X: 0, Y: 1}, p.Exterior[0]); diff != "" {
		t.Fatalf("unexpected first corner (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]LineString2[float64]{}, p.Interiors, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected interiors (-want +got):\n%s", diff)
	}
}
