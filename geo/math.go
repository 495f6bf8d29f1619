package geo

import "math"

// MaxMercatorLat is the latitude where a square Web Mercator world is clipped.
const MaxMercatorLat = 85.05112878

// ToRadians converts a value in degrees.
func ToRadians[T CoordFloat](deg T) T {
	return T(float64(deg) * math.Pi / 180.0)
}

// ToDegrees converts a value in radians.
func ToDegrees[T CoordFloat](rad T) T {
	return T(float64(rad) * 180.0 / math.Pi)
}

// PointToRadians converts the planar components of a geographic point; Z is kept.
func PointToRadians[T CoordFloat](p Point[T]) Point[T] {
	return NewPoint(ToRadians(p.X), ToRadians(p.Y), p.Z)
}

// PointToDegrees is the inverse of PointToRadians.
func PointToDegrees[T CoordFloat](p Point[T]) Point[T] {
	return NewPoint(ToDegrees(p.X), ToDegrees(p.Y), p.Z)
}

// Hypot returns the euclidean length of the segment in all three axes.
func Hypot[T CoordFloat](l Line[T]) T {
	dx, dy, dz := float64(l.Dx()), float64(l.Dy()), float64(l.Dz())
	return T(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// InverseMercator maps a planar coordinate on a square world of the given
// size (0..size on both axes) to lon/lat degrees using the inverse Mercator
// projection. Latitude is clamped to ±MaxMercatorLat; Z passes through.
func InverseMercator[T CoordFloat](c Coord[T], size float64) Coord[T] {
	// x: [0..size] -> lon: [-180..180]
	lon := float64(c.X)*(360.0/size) - 180.0

	// y: [0..size] -> mercatorY: [-PI..PI]
	mercatorY := float64(c.Y)*((2.0*math.Pi)/size) - math.Pi
	latRad := (2.0 * math.Atan(math.Exp(mercatorY))) - (math.Pi * 0.5)
	lat := latRad * (180.0 / math.Pi)

	lat = max(-MaxMercatorLat, min(MaxMercatorLat, lat))

	return Coord[T]{X: T(lon), Y: T(lat), Z: c.Z}
}

// Mercator is the forward projection matching InverseMercator.
func Mercator[T CoordFloat](c Coord[T], size float64) Coord[T] {
	lat := max(-MaxMercatorLat, min(MaxMercatorLat, float64(c.Y)))

	x := (float64(c.X) + 180.0) * (size / 360.0)
	mercatorY := math.Log(math.Tan(math.Pi/4 + lat*math.Pi/360.0))
	y := (mercatorY + math.Pi) * (size / (2.0 * math.Pi))

	return Coord[T]{X: T(x), Y: T(y), Z: c.Z}
}
