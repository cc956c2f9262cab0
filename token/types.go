package token

import "fmt"

type TokenType int

const (
	TUninitialized TokenType = iota
	TBeginObject
	TEndObject
	TBeginArray
	TEndArray
	TNameSep
	TValueSep
	TString
	TNumber
	TTrue
	TFalse
	TNull
	TEOF
	TError
)

var tokenNames = map[TokenType]string{
	TUninitialized: "TUninitialized",
	TBeginObject:   "TBeginObject",
	TEndObject:     "TEndObject",
	TBeginArray:    "TBeginArray",
	TEndArray:      "TEndArray",
	TNameSep:       "TNameSep",
	TValueSep:      "TValueSep",
	TString:        "TString",
	TNumber:        "TNumber",
	TTrue:          "TTrue",
	TFalse:         "TFalse",
	TNull:          "TNull",
	TEOF:           "TEOF",
	TError:         "TError",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Describe returns the human readable name used in error messages.
func (t TokenType) Describe() string {
	switch t {
	case TBeginObject:
		return "'{'"
	case TEndObject:
		return "'}'"
	case TBeginArray:
		return "'['"
	case TEndArray:
		return "']'"
	case TNameSep:
		return "':'"
	case TValueSep:
		return "','"
	case TString:
		return "string"
	case TNumber:
		return "number"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNull:
		return "null"
	case TEOF:
		return "end of input"
	case TError:
		return "invalid token"
	default:
		return "nothing"
	}
}

// IsValue reports whether a token of type t can begin a value.
func (t TokenType) IsValue() bool {
	switch t {
	case TBeginObject, TBeginArray, TString, TNumber, TTrue, TFalse, TNull:
		return true
	}
	return false
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
