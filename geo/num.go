// Package geo holds three-axis vector geometries that are generic over their coordinate scalar.
//
// Every entity is a plain value tree. Converters to and from exchange formats live in the
// sub-packages geojson, wkt and wkb and always build new trees.
package geo

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// CoordNum is the capability every coordinate scalar must have:
// copy, arithmetic, ordering, zero and one.
type CoordNum interface {
	constraints.Integer | constraints.Float
}

// CoordFloat is the narrower capability required by exchange-format converters
// and trigonometric helpers.
type CoordFloat interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T CoordNum]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T CoordNum]() T {
	return 1
}

// ToFloat64 widens a scalar to float64.
func ToFloat64[T CoordNum](v T) float64 {
	return float64(v)
}

// FromFloat64 narrows a float64 into T.
// Narrowing to float32 rounds to nearest; magnitudes past the float32 range become ±Inf.
func FromFloat64[T CoordFloat](f float64) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 && math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
		return T(math.Inf(int(math.Copysign(1, f))))
	}
	return T(f)
}

// IsIntegral reports whether the scalar type T truncates fractions.
func IsIntegral[T CoordNum]() bool {
	half := 0.5
	return T(half) == 0
}
