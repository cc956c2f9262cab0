package parse

import (
	"errors"
	"fmt"

	"github.com/protoson/go-pson/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrDepth = fmt.Errorf("%w: nesting too deep", ErrParse)
)

// Error describes where and why parsing stopped.
type Error struct {
	// Token is the offending token, TError for lexical errors.
	Token token.TokenType
	// Text is the raw text of the offending token.
	Text []byte
	// Expected describes what the parser was looking for.
	Expected string
	Pos      token.Pos
	// Err is ErrParse or an error wrapping it.
	Err error
}

func (e *Error) Error() string {
	if e.Token == token.TError {
		return e.Err.Error()
	}
	if e.Expected == "" {
		return fmt.Sprintf("%s: %s at %s", e.Err, e.Token.Describe(), e.Pos.String())
	}
	return fmt.Sprintf("%s: unexpected %s %q, expected %s at %s",
		e.Err, e.Token.Describe(), e.Text, e.Expected, e.Pos.String())
}

func (e *Error) Unwrap() error {
	return e.Err
}
