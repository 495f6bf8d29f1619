package wkt

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/woozymasta/geoz/geo"
)

const (
	kwPoint              = "POINT"
	kwLineString         = "LINESTRING"
	kwPolygon            = "POLYGON"
	kwMultiPoint         = "MULTIPOINT"
	kwMultiLineString    = "MULTILINESTRING"
	kwMultiPolygon       = "MULTIPOLYGON"
	kwGeometryCollection = "GEOMETRYCOLLECTION"
	kwZ                  = "Z"
	kwEmpty              = "EMPTY"
)

type parser[T geo.CoordNum] struct {
	lex *lexer
}

func newParser[T geo.CoordNum](src string) *parser[T] {
	return &parser[T]{lex: newLexer(src)}
}

// geometry parses one tagged literal: KEYWORD [Z] (EMPTY | list).
func (p *parser[T]) geometry() (geo.Geometry[T], error) {
	t, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if t.kind != tokWord {
		return nil, unexpected(t, "geometry keyword")
	}
	if err := p.skipZ(); err != nil {
		return nil, err
	}

	switch t.text {
	case kwPoint:
		pt, err := p.point()
		if err != nil {
			return nil, err
		}
		return pt, nil
	case kwLineString:
		ls, err := p.lineString()
		if err != nil {
			return nil, err
		}
		return ls, nil
	case kwPolygon:
		poly, err := p.polygon()
		if err != nil {
			return nil, err
		}
		return poly, nil
	case kwMultiPoint:
		mp, err := p.multiPoint()
		if err != nil {
			return nil, err
		}
		return mp, nil
	case kwMultiLineString:
		mls, err := p.multiLineString()
		if err != nil {
			return nil, err
		}
		return mls, nil
	case kwMultiPolygon:
		mp, err := p.multiPolygon()
		if err != nil {
			return nil, err
		}
		return mp, nil
	case kwGeometryCollection:
		gc, err := p.collection()
		if err != nil {
			return nil, err
		}
		return gc, nil
	}

	return nil, &SyntaxError{
		Offset: t.offset,
		Msg: fmt.Sprintf("unknown type %q, must be one of %s, %s, %s, %s, %s, %s or %s", t.text,
			kwPoint, kwLineString, kwPolygon, kwMultiPoint, kwMultiLineString, kwMultiPolygon, kwGeometryCollection),
		Err: ErrUnexpectedToken,
	}
}

// end fails unless all input was consumed.
func (p *parser[T]) end() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	if t.kind != tokEOF {
		return unexpected(t, "end of input")
	}
	return nil
}

func (p *parser[T]) skipZ() error {
	t, err := p.lex.Peek()
	if err != nil {
		return err
	}
	if t.kind == tokWord && t.text == kwZ {
		_, err = p.lex.Next()
	}
	return err
}

// empty consumes EMPTY if it comes next.
func (p *parser[T]) empty() (bool, error) {
	t, err := p.lex.Peek()
	if err != nil {
		return false, err
	}
	if t.kind != tokWord || t.text != kwEmpty {
		return false, nil
	}
	_, err = p.lex.Next()
	return true, err
}

// open consumes '(' and reports whether the list is "()", consuming the ')' too.
func (p *parser[T]) open() (token, bool, error) {
	t, err := p.expect(tokLParen)
	if err != nil {
		return t, false, err
	}
	next, err := p.lex.Peek()
	if err != nil {
		return t, false, err
	}
	if next.kind != tokRParen {
		return t, false, nil
	}
	_, err = p.lex.Next()
	return t, true, err
}

// seq calls each for every comma separated element up to the closing ')'.
// A trailing comma is allowed.
func (p *parser[T]) seq(each func() error) error {
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return err
		}
		if t.kind == tokRParen {
			_, err = p.lex.Next()
			return err
		}
		if err := each(); err != nil {
			return err
		}

		t, err = p.lex.Next()
		if err != nil {
			return err
		}
		switch t.kind {
		case tokRParen:
			return nil
		case tokComma:
			continue
		}
		return unexpected(t, "',' or ')'")
	}
}

func (p *parser[T]) expect(kind tokenKind) (token, error) {
	t, err := p.lex.Next()
	if err != nil {
		return t, err
	}
	if t.kind != kind {
		return t, unexpected(t, kind.String())
	}
	return t, nil
}

func (p *parser[T]) point() (geo.Point[T], error) {
	t, err := p.lex.Peek()
	if err != nil {
		return geo.Point[T]{}, err
	}
	if ok, err := p.empty(); err != nil || ok {
		if err == nil {
			err = &SyntaxError{Offset: t.offset, Msg: ErrEmptyPoint.Error(), Err: ErrEmptyPoint}
		}
		return geo.Point[T]{}, err
	}

	if _, err := p.expect(tokLParen); err != nil {
		return geo.Point[T]{}, err
	}
	c, err := p.coord()
	if err != nil {
		return geo.Point[T]{}, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return geo.Point[T]{}, err
	}
	return geo.PointFromCoord(c), nil
}

// lineString parses EMPTY or a coordinate list. "()" is an empty line string.
// The same production is used for polygon rings.
func (p *parser[T]) lineString() (geo.LineString[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.LineString[T]{}, err
	}
	if _, isEmpty, err := p.open(); err != nil || isEmpty {
		return geo.LineString[T]{}, err
	}

	ls := geo.LineString[T]{}
	err := p.seq(func() error {
		c, err := p.coord()
		if err != nil {
			return err
		}
		ls = append(ls, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (p *parser[T]) polygon() (geo.Polygon[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.EmptyPolygon[T](), err
	}
	if err := p.openNonEmpty(); err != nil {
		return geo.Polygon[T]{}, err
	}

	var rings []geo.LineString[T]
	err := p.seq(func() error {
		ring, err := p.lineString()
		if err != nil {
			return err
		}
		rings = append(rings, ring)
		return nil
	})
	if err != nil {
		return geo.Polygon[T]{}, err
	}
	return geo.PolygonFromRings(rings), nil
}

func (p *parser[T]) multiPoint() (geo.MultiPoint[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.MultiPoint[T]{}, err
	}
	if err := p.openNonEmpty(); err != nil {
		return nil, err
	}

	mp := geo.MultiPoint[T]{}
	err := p.seq(func() error {
		t, err := p.lex.Peek()
		if err != nil {
			return err
		}
		// Both "(x y z)" and the bare "x y z" form are accepted.
		wrapped := t.kind == tokLParen
		if wrapped {
			if _, err := p.lex.Next(); err != nil {
				return err
			}
		}
		c, err := p.coord()
		if err != nil {
			return err
		}
		if wrapped {
			if _, err := p.expect(tokRParen); err != nil {
				return err
			}
		}
		mp = append(mp, geo.PointFromCoord(c))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mp, nil
}

func (p *parser[T]) multiLineString() (geo.MultiLineString[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.MultiLineString[T]{}, err
	}
	if _, isEmpty, err := p.open(); err != nil || isEmpty {
		return geo.MultiLineString[T]{}, err
	}

	mls := geo.MultiLineString[T]{}
	err := p.seq(func() error {
		ls, err := p.lineString()
		if err != nil {
			return err
		}
		mls = append(mls, ls)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mls, nil
}

func (p *parser[T]) multiPolygon() (geo.MultiPolygon[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.MultiPolygon[T]{}, err
	}
	if err := p.openNonEmpty(); err != nil {
		return nil, err
	}

	mp := geo.MultiPolygon[T]{}
	err := p.seq(func() error {
		poly, err := p.polygon()
		if err != nil {
			return err
		}
		mp = append(mp, poly)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mp, nil
}

func (p *parser[T]) collection() (geo.GeometryCollection[T], error) {
	if ok, err := p.empty(); err != nil || ok {
		return geo.GeometryCollection[T]{}, err
	}
	if err := p.openNonEmpty(); err != nil {
		return nil, err
	}

	gc := geo.GeometryCollection[T]{}
	err := p.seq(func() error {
		g, err := p.geometry()
		if err != nil {
			return err
		}
		gc = append(gc, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gc, nil
}

// openNonEmpty consumes '(' and rejects "()".
func (p *parser[T]) openNonEmpty() error {
	t, isEmpty, err := p.open()
	if err != nil {
		return err
	}
	if isEmpty {
		return &SyntaxError{Offset: t.offset, Msg: ErrEmptyParens.Error(), Err: ErrEmptyParens}
	}
	return nil
}

// coord parses exactly three numbers.
func (p *parser[T]) coord() (geo.Coord[T], error) {
	var xyz [3]T
	for i := range xyz {
		t, err := p.expect(tokNumber)
		if err != nil {
			return geo.Coord[T]{}, err
		}
		if xyz[i], err = parseNumber[T](t); err != nil {
			return geo.Coord[T]{}, err
		}
	}
	return geo.CoordFromArray(xyz), nil
}

// parseNumber reads a float literal for float scalars and an integer literal
// that fits the type for integer scalars.
func parseNumber[T geo.CoordNum](t token) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	var (
		v   T
		err error
	)
	switch {
	case !geo.IsIntegral[T]():
		var f float64
		f, err = strconv.ParseFloat(t.text, bits)
		v = T(f)
	case isSigned[T]():
		var i int64
		i, err = strconv.ParseInt(t.text, 10, bits)
		v = T(i)
	default:
		var u uint64
		u, err = strconv.ParseUint(t.text, 10, bits)
		v = T(u)
	}
	if err != nil {
		return zero, &SyntaxError{
			Offset: t.offset,
			Msg:    fmt.Sprintf("%q is not a valid %T", t.text, zero),
			Err:    ErrNumber,
		}
	}
	return v, nil
}

func isSigned[T geo.CoordNum]() bool {
	var v T
	v--
	return v < 0
}

func unexpected(t token, want string) error {
	return &SyntaxError{
		Offset: t.offset,
		Msg:    fmt.Sprintf("expected %s, found %s", want, t),
		Err:    ErrUnexpectedToken,
	}
}
