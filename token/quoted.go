package token

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// AppendQuote appends s as a JSON string literal. '"' and '\' are escaped,
// control bytes use the \b \f \n \r \t shorthands where one exists and
// \u00XX otherwise. All other bytes are copied verbatim.
func AppendQuote(b []byte, s []byte) []byte {
	b = append(b, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		b = append(b, s[start:i]...)
		switch c {
		case '"', '\\':
			b = append(b, '\\', c)
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	b = append(b, s[start:]...)
	return append(b, '"')
}

// Quote returns s as a JSON string literal.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), []byte(s)))
}

// Unquote decodes a complete JSON string literal.
func Unquote(v string) (string, error) {
	n, d, err := scanString([]byte(v), 0, nil)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return string(d), nil
}

// QuotedLen returns the length of the JSON string literal at the start of
// v, quotes included.
func QuotedLen(v string) (int, error) {
	n, _, err := scanString([]byte(v), 0, nil)
	return n, err
}

// scanString decodes the string literal starting at d[i], which must be a
// double quote, appending the unescaped contents to dst. It returns the
// offset just past the closing quote. On error the offset is that of the
// offending byte.
func scanString(d []byte, i int, dst []byte) (int, []byte, error) {
	if i >= len(d) || d[i] != '"' {
		return i, dst, ErrUnterminated
	}
	i++
	start := i
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			dst = append(dst, d[start:i]...)
			return i + 1, dst, nil
		case c < 0x20:
			return i, dst, ErrUnicodeControl
		case c != '\\':
			i++
			continue
		}
		dst = append(dst, d[start:i]...)
		if i+1 >= len(d) {
			return i, dst, ErrUnterminated
		}
		switch d[i+1] {
		case '"', '\\', '/':
			dst = append(dst, d[i+1])
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			r, n, err := unicodeEscape(d[i:])
			if err != nil {
				return i, dst, err
			}
			dst = utf8.AppendRune(dst, r)
			i += n
			start = i
			continue
		default:
			return i, dst, ErrBadEscape
		}
		i += 2
		start = i
	}
	return i, dst, ErrUnterminated
}

// unicodeEscape decodes a \uXXXX escape at the start of d, combining a
// high surrogate with the \uXXXX low surrogate that must follow it.
func unicodeEscape(d []byte) (rune, int, error) {
	hi, ok := hex4(d)
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	switch {
	case hi >= 0xDC00 && hi <= 0xDFFF:
		return 0, 0, ErrSurrogate
	case hi < 0xD800 || hi > 0xDBFF:
		return hi, 6, nil
	}
	if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
		return 0, 0, ErrSurrogate
	}
	lo, ok := hex4(d[6:])
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, 0, ErrSurrogate
	}
	return (hi << 10) + lo - 0x35FDC00, 12, nil
}

// hex4 parses the 4 hex digits of a \uXXXX escape at the start of d.
func hex4(d []byte) (rune, bool) {
	if len(d) < 6 {
		return 0, false
	}
	var r rune
	for _, c := range d[2:6] {
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c -= 'a' - 10
		case c >= 'A' && c <= 'F':
			c -= 'A' - 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}
