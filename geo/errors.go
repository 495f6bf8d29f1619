package geo

import "fmt"

// MismatchedGeometryError is returned by As when a geometry holds a variant
// other than the requested one.
type MismatchedGeometryError struct {
	Expected string
	Found    string
}

func (e *MismatchedGeometryError) Error() string {
	return fmt.Sprintf("Expected a %s, but found a %s", e.Expected, e.Found)
}
