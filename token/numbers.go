package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// scanNumber returns the end of the JSON number starting at d[i]:
//
//	-? (0 | [1-9][0-9]*) (\.[0-9]+)? ([eE][+-]?[0-9]+)?
func scanNumber(d []byte, i int) (int, bool, error) {
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i, false, ErrNumberLeadingZero
	}
	i += digits
	isFloat := false
	if i < len(d) && d[i] == '.' {
		i++
		n := asciiDigits(d[i:])
		if n == 0 {
			return i, false, ErrNumber
		}
		i += n
		isFloat = true
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		n := asciiDigits(d[i:])
		if n == 0 {
			return i, false, ErrNumber
		}
		i += n
		isFloat = true
	}
	return i, isFloat, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberUint
	NumberFloat
)

// Number is a converted number token.
type Number struct {
	Kind  NumberKind
	Int   int64
	Uint  uint64
	Float float64
}

// ParseNumber converts a JSON number. Integer tokens are converted exactly
// when they fit in an int64 (negative) or a uint64, other numbers are
// converted to the nearest float64. Numbers too large for a float64 are an
// error.
func ParseNumber(d []byte) (Number, error) {
	end, isFloat, err := scanNumber(d, 0)
	if err != nil {
		return Number{}, err
	}
	if end != len(d) {
		return Number{}, fmt.Errorf("%w: trailing %q", ErrNumber, d[end:])
	}
	s := string(d)
	if !isFloat {
		if d[0] == '-' {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Number{Kind: NumberInt, Int: i}, nil
			}
		} else if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Number{Kind: NumberUint, Uint: u}, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) || math.IsInf(f, 0) {
			return Number{}, fmt.Errorf("%w: %q out of range", ErrNumber, s)
		}
	}
	return Number{Kind: NumberFloat, Float: f}, nil
}

// AppendFloat appends the shortest representation of f that round-trips at
// the given bit size (32 or 64). Plain notation is used for magnitudes in
// [1e-6, 1e21), exponent notation otherwise. NaN and infinities have no
// JSON literal and are written as null.
func AppendFloat(b []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(b, "null"...)
	}
	abs := math.Abs(f)
	fmtByte := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmtByte = 'e'
		}
	}
	b = strconv.AppendFloat(b, f, fmtByte, -1, bits)
	if fmtByte == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}
