package wkt

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokNumber
	tokLParen
	tokRParen
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokWord:
		return "keyword"
	case tokNumber:
		return "number"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) String() string {
	switch t.kind {
	case tokWord, tokNumber:
		return fmt.Sprintf("%q", t.text)
	}
	return t.kind.String()
}

// lexer splits a literal into tokens. Keywords are runs of ASCII letters,
// numbers start with a digit, a sign or a dot.
type lexer struct {
	src  string
	pos  int
	peek *token
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) Peek() (token, error) {
	if l.peek == nil {
		t, err := l.scan()
		if err != nil {
			return token{}, err
		}
		l.peek = &t
	}
	return *l.peek, nil
}

func (l *lexer) Next() (token, error) {
	t, err := l.Peek()
	if err != nil {
		return token{}, err
	}
	l.peek = nil
	return t, nil
}

func (l *lexer) scan() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: start}, nil
	}

	switch c := l.src[l.pos]; {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", offset: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", offset: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", offset: start}, nil
	case isLetter(c):
		for l.pos < len(l.src) && isLetter(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokWord, text: l.src[start:l.pos], offset: start}, nil
	case isNumberStart(c):
		l.pos++
		for l.pos < len(l.src) && isNumberPart(l.src[l.pos], l.src[l.pos-1]) {
			l.pos++
		}
		// A number must be followed by a separator, so "1-2" is not two numbers.
		if l.pos < len(l.src) && !isSpace(l.src[l.pos]) && !isDelimiter(l.src[l.pos]) {
			return token{}, &SyntaxError{
				Offset: l.pos,
				Msg:    fmt.Sprintf("unexpected character %q after number %q", l.src[l.pos], l.src[start:l.pos]),
				Err:    ErrUnexpectedToken,
			}
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], offset: start}, nil
	}

	return token{}, &SyntaxError{
		Offset: start,
		Msg:    fmt.Sprintf("unexpected character %q", l.src[start]),
		Err:    ErrUnexpectedToken,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == ','
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

// isNumberPart accepts digits, a dot, an exponent marker and a sign right
// after the exponent marker. Malformed runs are rejected by strconv later.
func isNumberPart(c, prev byte) bool {
	switch {
	case isDigit(c), c == '.', c == 'e', c == 'E':
		return true
	case c == '-' || c == '+':
		return prev == 'e' || prev == 'E'
	}
	return false
}
