package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/protoson/go-pson/token"
)

var ErrSyntax = errors.New("kpath syntax")

// KPath is a linked list of path segments. Exactly one of Field and Index
// is set in each segment.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// Append returns a copy of p with q appended.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q
	}
	res := &KPath{Field: p.Field, Index: p.Index}
	res.Next = p.Next.Append(q)
	return res
}

func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			continue
		}
		if x.Field == nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(quoteField(*x.Field))
	}
	return buf.String()
}

// SegmentString returns the representation of p's first segment only.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Index != nil {
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	if p.Field != nil {
		return quoteField(*p.Field)
	}
	return ""
}

func quoteField(f string) string {
	if NeedsQuote(f) {
		return token.Quote(f)
	}
	return f
}

// NeedsQuote reports whether a member name must be quoted in a path.
func NeedsQuote(f string) bool {
	if f == "" {
		return true
	}
	for i := 0; i < len(f); i++ {
		switch c := f[i]; {
		case c <= ' ', c == '.', c == '[', c == ']', c == '"', c == '\\', c == 0x7f:
			return true
		}
	}
	return false
}

// Parse parses a path. The empty path denotes the root and yields nil.
func Parse(kp string) (*KPath, error) {
	if kp == "" {
		return nil, nil
	}
	var (
		head, tail *KPath
		i          int
	)
	push := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	for i < len(kp) {
		switch c := kp[i]; {
		case c == '[':
			j := strings.IndexByte(kp[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at %d in %q", ErrSyntax, i, kp)
			}
			n, err := strconv.Atoi(kp[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, kp[i+1:i+j], kp)
			}
			push(Index(n))
			i += j + 1
		case c == '.':
			if head == nil || i+1 == len(kp) {
				return nil, fmt.Errorf("%w: misplaced '.' at %d in %q", ErrSyntax, i, kp)
			}
			i++
			name, n, err := parseField(kp[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, kp)
			}
			push(Field(name))
			i += n
		default:
			if head != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrSyntax, i, kp)
			}
			name, n, err := parseField(kp)
			if err != nil {
				return nil, fmt.Errorf("%w at 0 in %q", err, kp)
			}
			push(Field(name))
			i += n
		}
	}
	return head, nil
}

func parseField(s string) (string, int, error) {
	if s[0] == '"' {
		n, err := token.QuotedLen(s)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		name, err := token.Unquote(s[:n])
		if err != nil {
			return "", 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return name, n, nil
	}
	n := strings.IndexAny(s, ".[")
	if n < 0 {
		n = len(s)
	}
	if n == 0 {
		return "", 0, fmt.Errorf("%w: empty field", ErrSyntax)
	}
	return s[:n], n, nil
}
