package format

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/protoson/go-pson/frame"
)

type Format int

const (
	PSONFormat Format = iota
	JSONFormat
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":    PSONFormat,
		"pson": PSONFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PSONFormat:
		return []byte("pson"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsPSON() bool { return f == PSONFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsCBOR() bool { return f == CBORFormat }

// IsBinary reports whether documents of format f are not text.
func (f Format) IsBinary() bool { return f == PSONFormat || f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PSONFormat:
		return ".pson"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PSONFormat, JSONFormat, YAMLFormat, CBORFormat}
}

// Detect guesses whether d holds PSON or JSON. Framed data and data which
// is not UTF-8 text are PSON, and so is anything not starting like JSON.
// Some JSON first bytes are also PSON tags ('"' for an object, '5' and '9'
// for floats), so a text starting with a quote or a digit is JSON only
// when it ends like a string or consists of number characters.
func Detect(d []byte) Format {
	if frame.IsFramed(d) || !utf8.Valid(d) {
		return PSONFormat
	}
	t := bytes.TrimSpace(d)
	if len(t) == 0 {
		return JSONFormat
	}
	switch c := t[0]; {
	case c == '{' || c == '[':
		return JSONFormat
	case c == '-' || (c >= '0' && c <= '9'):
		if len(bytes.Trim(t, "0123456789+-.eE")) == 0 {
			return JSONFormat
		}
	case c == '/' && len(t) > 1 && (t[1] == '/' || t[1] == '*'):
		return JSONFormat
	case bytes.Equal(t, []byte("true")) || bytes.Equal(t, []byte("false")) || bytes.Equal(t, []byte("null")):
		return JSONFormat
	case c == '"':
		if len(t) > 1 && t[len(t)-1] == '"' && len(t) == len(d) {
			return JSONFormat
		}
	}
	return PSONFormat
}
