package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/protoson/go-pson/debug"
	"github.com/protoson/go-pson/ir"
)

// Encoder writes PSON records to an io.Writer.
type Encoder struct {
	w       io.Writer
	n       int64
	scratch []byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, scratch: make([]byte, 0, 16)}
}

// BytesWritten returns the number of bytes written so far.
func (e *Encoder) BytesWritten() int64 {
	return e.n
}

// Encode writes v as one record.
func (e *Encoder) Encode(v *ir.Value) error {
	start := e.n
	if err := e.value(v); err != nil {
		return err
	}
	if debug.Wire() {
		debug.Logf("wire: encoded %s in %d bytes\n", v.Type(), e.n-start)
	}
	return nil
}

func (e *Encoder) write(d []byte) error {
	n, err := e.w.Write(d)
	e.n += int64(n)
	return err
}

func (e *Encoder) tagged(c Code, payloadLen int) error {
	e.scratch = AppendVarint(e.scratch[:0], uint64(Tag(c, c.WireType())))
	if payloadLen >= 0 {
		e.scratch = AppendVarint(e.scratch, uint64(payloadLen))
	}
	return e.write(e.scratch)
}

func (e *Encoder) value(v *ir.Value) error {
	c := CodeOf(v.Type())
	switch v.Type() {
	case ir.NullType, ir.EmptyType, ir.TrueType, ir.FalseType, ir.ZeroType, ir.OneType:
		return e.tagged(c, -1)
	case ir.SignedType, ir.UnsignedType:
		if err := e.tagged(c, -1); err != nil {
			return err
		}
		return e.write(v.Payload())
	case ir.FloatType, ir.DoubleType:
		size := 4
		if v.Type() == ir.DoubleType {
			size = 8
		}
		p := v.Payload()
		if len(p) != size {
			return fmt.Errorf("pson: %s payload of %d bytes", v.Type(), len(p))
		}
		if err := e.tagged(c, -1); err != nil {
			return err
		}
		return e.write(p)
	case ir.StringType, ir.BytesType:
		p := v.Payload()
		if err := e.tagged(c, len(p)); err != nil {
			return err
		}
		return e.write(p)
	case ir.ObjectType:
		if err := e.tagged(c, int(bodySize(v))); err != nil {
			return err
		}
		for p := range v.Object().All() {
			name := p.NameBytes()
			e.scratch = AppendVarint(e.scratch[:0], uint64(len(name)))
			if err := e.write(e.scratch); err != nil {
				return err
			}
			if err := e.write(name); err != nil {
				return err
			}
			if err := e.value(p.Value()); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		if err := e.tagged(c, int(bodySize(v))); err != nil {
			return err
		}
		for item := range v.Array().All() {
			if err := e.value(item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("pson: cannot encode %s", v.Type())
	}
}

// counter is the throwaway sink used to measure submessages.
type counter struct{}

func (counter) Write(d []byte) (int, error) {
	return len(d), nil
}

// bodySize measures the children of an object or array by encoding them
// into a counter.
func bodySize(v *ir.Value) int64 {
	e := &Encoder{w: counter{}, scratch: make([]byte, 0, 16)}
	switch v.Type() {
	case ir.ObjectType:
		for p := range v.Object().All() {
			name := p.NameBytes()
			e.n += int64(VarintLen(uint64(len(name))) + len(name))
			e.value(p.Value())
		}
	case ir.ArrayType:
		for item := range v.Array().All() {
			e.value(item)
		}
	}
	return e.n
}

// Size returns the number of bytes Encode would write for v.
func Size(v *ir.Value) int64 {
	e := &Encoder{w: counter{}, scratch: make([]byte, 0, 16)}
	e.value(v)
	return e.n
}

// Marshal encodes v into a new byte slice.
func Marshal(v *ir.Value) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size(v)))
	if err := NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
