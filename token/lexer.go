package token

import (
	"bytes"
	"fmt"

	"github.com/protoson/go-pson/debug"
)

// Lexer scans JSON tokens from an in-memory document.
//
//	lx := token.NewLexer(d)
//	for lx.Scan() != token.TEOF {
//		if lx.Type() == token.TError {
//			return lx.Err()
//		}
//		...
//	}
//
// Once an error has been found Scan keeps returning TError.
type Lexer struct {
	d   []byte
	i   int
	doc *PosDoc
	tok Token
	str []byte
	err error
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{d: d, doc: NewPosDoc(d)}
}

// Scan advances to the next token and returns its type.
func (l *Lexer) Scan() TokenType {
	if l.err != nil {
		return TError
	}
	l.skipSpace()
	start := l.i
	l.tok = Token{Pos: l.doc.Pos(start)}
	if l.i >= len(l.d) {
		l.tok.Type = TEOF
		return TEOF
	}
	var t TokenType
	switch c := l.d[l.i]; c {
	case '{':
		t = TBeginObject
		l.i++
	case '}':
		t = TEndObject
		l.i++
	case '[':
		t = TBeginArray
		l.i++
	case ']':
		t = TEndArray
		l.i++
	case ':':
		t = TNameSep
		l.i++
	case ',':
		t = TValueSep
		l.i++
	case '"':
		end, str, err := scanString(l.d, l.i, l.str[:0])
		l.str = str
		if err != nil {
			return l.fail(err, end)
		}
		t = TString
		l.i = end
	case 't':
		t = TTrue
		if !l.literal("true") {
			return l.fail(ErrLiteral, start)
		}
	case 'f':
		t = TFalse
		if !l.literal("false") {
			return l.fail(ErrLiteral, start)
		}
	case 'n':
		t = TNull
		if !l.literal("null") {
			return l.fail(ErrLiteral, start)
		}
	default:
		if c != '-' && !asciiDigit(c) {
			return l.fail(fmt.Errorf("%w %q", ErrUnexpected, c), start)
		}
		end, _, err := scanNumber(l.d, l.i)
		if err != nil {
			return l.fail(err, end)
		}
		t = TNumber
		l.i = end
	}
	l.tok.Type = t
	l.tok.Bytes = l.d[start:l.i]
	if debug.Parse() {
		debug.Logf("token %s %q at %d\n", t, l.tok.Bytes, start)
	}
	return t
}

func (l *Lexer) skipSpace() {
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case ' ', '\t', '\r', '\n':
			l.i++
		default:
			return
		}
	}
}

func (l *Lexer) literal(lit string) bool {
	if !bytes.HasPrefix(l.d[l.i:], []byte(lit)) {
		return false
	}
	l.i += len(lit)
	return true
}

func (l *Lexer) fail(err error, at int) TokenType {
	l.err = NewTokenizeErr(err, l.doc.Pos(at))
	l.tok.Type = TError
	l.tok.Bytes = l.d[l.tok.Pos.I:min(at+1, len(l.d))]
	return TError
}

// Type returns the type of the current token.
func (l *Lexer) Type() TokenType {
	return l.tok.Type
}

// Token returns the current token.
func (l *Lexer) Token() *Token {
	return &l.tok
}

// Bytes returns the raw text of the current token.
func (l *Lexer) Bytes() []byte {
	return l.tok.Bytes
}

// StringBytes returns the unescaped contents of the current string token.
// The slice is reused by the next call to Scan.
func (l *Lexer) StringBytes() []byte {
	if l.tok.Type != TString {
		return nil
	}
	return l.str
}

// String returns the unescaped contents of the current string token.
func (l *Lexer) String() (string, error) {
	if l.tok.Type != TString {
		return "", fmt.Errorf("%w: %s", ErrNotString, l.tok.Type)
	}
	return string(l.str), nil
}

// Number converts the current number token.
func (l *Lexer) Number() (Number, error) {
	if l.tok.Type != TNumber {
		return Number{}, fmt.Errorf("%w: %s is not a number", ErrNumber, l.tok.Type)
	}
	n, err := ParseNumber(l.tok.Bytes)
	if err != nil {
		return Number{}, NewTokenizeErr(err, l.tok.Pos)
	}
	return n, nil
}

// Pos returns the position of the current token.
func (l *Lexer) Pos() *Pos {
	return l.tok.Pos
}

// Offset returns the offset just past the current token.
func (l *Lexer) Offset() int {
	return l.i
}

// Err returns the error which made Scan return TError.
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize scans all of d.
func Tokenize(d []byte) ([]Token, error) {
	lx := NewLexer(d)
	var res []Token
	for {
		switch lx.Scan() {
		case TEOF:
			return res, nil
		case TError:
			return res, lx.Err()
		}
		res = append(res, *lx.Token())
	}
}
