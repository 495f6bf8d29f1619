package wkt

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPoint is returned for POINT EMPTY, which has no Point value.
	ErrEmptyPoint = errors.New("EMPTY points are not supported")
	// ErrEmptyParens is returned for an empty list where EMPTY is required.
	ErrEmptyParens = errors.New("use EMPTY instead of () for an empty collection")
	// ErrUnexpectedToken is returned for input that does not fit the grammar.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrNumber is returned for a malformed number or one that does not fit the scalar type.
	ErrNumber = errors.New("invalid number")
)

// SyntaxError describes where a literal stopped making sense.
type SyntaxError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("wkt: syntax error at offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MismatchedLiteralError is returned by the typed entry points when the
// literal describes another kind of geometry.
type MismatchedLiteralError struct {
	Expected string
	Found    string
}

func (e *MismatchedLiteralError) Error() string {
	return fmt.Sprintf("wkt: expected %s literal, but found %s", e.Expected, e.Found)
}

// UnsupportedGeometryError is returned by Marshal for geometries that have
// no three-axis literal form.
type UnsupportedGeometryError struct {
	Type string
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("wkt: cannot marshal %s", e.Type)
}

// NonFiniteError is returned by Marshal for a NaN or infinite component,
// which has no literal form.
type NonFiniteError struct {
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("wkt: cannot marshal non-finite number %v", e.Value)
}
