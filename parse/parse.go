package parse

import (
	"fmt"
	"io"

	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/token"
)

// Parse parses one JSON document. Anything but whitespace after the value is
// an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := makeOpts(opts)
	v := ir.NewWith(pOpts.alloc)
	if err := parseInto(d, v, pOpts); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseInto parses one JSON document into v, replacing its contents. On
// error v holds whatever was parsed before the error.
func ParseInto(d []byte, v *ir.Value, opts ...ParseOption) error {
	return parseInto(d, v, makeOpts(opts))
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

func parseInto(d []byte, v *ir.Value, opts *parseOpts) error {
	p := &parser{lx: token.NewLexer(d), opts: opts}
	p.next()
	if err := p.value(v); err != nil {
		return err
	}
	if p.next() != token.TEOF {
		return p.unexpected("end of input")
	}
	return nil
}

type parser struct {
	lx    *token.Lexer
	opts  *parseOpts
	depth int
}

func (p *parser) next() token.TokenType {
	return p.lx.Scan()
}

func (p *parser) unexpected(expected string) error {
	tok := p.lx.Token()
	e := &Error{
		Token:    tok.Type,
		Text:     tok.Bytes,
		Expected: expected,
		Pos:      *tok.Pos,
		Err:      ErrParse,
	}
	if tok.Type == token.TError {
		e.Err = fmt.Errorf("%w: %w", ErrParse, p.lx.Err())
	}
	return e
}

func (p *parser) expect(t token.TokenType) error {
	if p.lx.Type() != t {
		return p.unexpected(t.Describe())
	}
	return nil
}

// value parses the value starting at the current token into v.
func (p *parser) value(v *ir.Value) error {
	switch p.lx.Type() {
	case token.TBeginObject:
		return p.object(v)
	case token.TBeginArray:
		return p.array(v)
	case token.TString:
		v.SetString(string(p.lx.StringBytes()))
	case token.TNumber:
		n, err := p.lx.Number()
		if err != nil {
			tok := p.lx.Token()
			return &Error{Token: tok.Type, Text: tok.Bytes, Pos: *tok.Pos,
				Err: fmt.Errorf("%w: %w", ErrParse, err)}
		}
		switch n.Kind {
		case token.NumberInt:
			v.SetInt(n.Int)
		case token.NumberUint:
			v.SetUint(n.Uint)
		default:
			v.SetFloat64(n.Float)
		}
	case token.TTrue:
		v.SetBool(true)
	case token.TFalse:
		v.SetBool(false)
	case token.TNull:
		v.SetNull()
	default:
		return p.unexpected("value")
	}
	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		tok := p.lx.Token()
		return &Error{Token: tok.Type, Text: tok.Bytes, Pos: *tok.Pos, Err: ErrDepth}
	}
	return nil
}

func (p *parser) object(v *ir.Value) error {
	if err := p.enter(); err != nil {
		return err
	}
	defer func() { p.depth-- }()
	v.SetNull()
	obj := v.Object()
	if p.next() == token.TEndObject {
		return nil
	}
	for {
		if err := p.expect(token.TString); err != nil {
			return err
		}
		name := string(p.lx.StringBytes())
		p.next()
		if err := p.expect(token.TNameSep); err != nil {
			return err
		}
		member := obj.Field(name)
		member.SetNull()
		p.next()
		if err := p.value(member); err != nil {
			return err
		}
		switch p.next() {
		case token.TValueSep:
			p.next()
		case token.TEndObject:
			return nil
		default:
			return p.unexpected("',' or '}'")
		}
	}
}

func (p *parser) array(v *ir.Value) error {
	if err := p.enter(); err != nil {
		return err
	}
	defer func() { p.depth-- }()
	v.SetNull()
	arr := v.Array()
	if p.next() == token.TEndArray {
		return nil
	}
	for {
		if err := p.value(arr.Append()); err != nil {
			return err
		}
		switch p.next() {
		case token.TValueSep:
			p.next()
		case token.TEndArray:
			return nil
		default:
			return p.unexpected("',' or ']'")
		}
	}
}
