package wire

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/protoson/go-pson/debug"
	"github.com/protoson/go-pson/ir"
)

// DefaultMaxDepth bounds object and array nesting when no WithMaxDepth
// option is given.
const DefaultMaxDepth = 1024

// blobChunk is the largest string or bytes payload allocated before its
// contents have actually been read.
const blobChunk = 64 << 10

type decodeOpts struct {
	maxDepth int
}

type Option func(*decodeOpts)

// WithMaxDepth bounds object and array nesting. n <= 0 means
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *decodeOpts) { o.maxDepth = n }
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Decoder reads PSON records from an io.Reader. A reader which is not an
// io.ByteReader is buffered, so the Decoder may read past the end of the
// last record it decodes.
type Decoder struct {
	r    byteReader
	n    int64
	opts decodeOpts
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	if d.opts.maxDepth <= 0 {
		d.opts.maxDepth = DefaultMaxDepth
	}
	if br, ok := r.(byteReader); ok {
		d.r = br
	} else {
		d.r = bufio.NewReader(r)
	}
	return d
}

// BytesRead returns the number of bytes consumed so far.
func (d *Decoder) BytesRead() int64 {
	return d.n
}

// Decode reads one record into v, replacing its contents. On error the
// returned *Error carries the offset of the failure, and v holds whatever
// was decoded before it.
func (d *Decoder) Decode(v *ir.Value) error {
	if err := d.value(v, -1, 0); err != nil {
		if debug.Wire() {
			debug.Logf("wire: decode failed at %d: %v\n", d.n, err)
		}
		return &Error{Offset: d.n, Err: err}
	}
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, truncated(err)
	}
	d.n++
	return b, nil
}

func (d *Decoder) readFull(p []byte) error {
	n, err := io.ReadFull(d.r, p)
	d.n += int64(n)
	return truncated(err)
}

// varint reads a base-128 varint of at most bits bits.
func (d *Decoder) varint(bits uint) (uint64, error) {
	var x uint64
	var shift uint
	for {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if shift+7 > bits && b>>(bits-shift) != 0 {
			return 0, ErrVarintOverflow
		}
		x |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return x, nil
		}
		shift += 7
		if shift >= bits {
			return 0, ErrVarintOverflow
		}
	}
}

// rawVarint reads a 64 bit varint and returns its encoded bytes.
func (d *Decoder) rawVarint(buf []byte) ([]byte, error) {
	buf = buf[:0]
	for i := 0; ; i++ {
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if i == 9 && b > 1 {
			return nil, ErrVarintOverflow
		}
		buf = append(buf, b)
		if b < 0x80 {
			return buf, nil
		}
		if i == 9 {
			return nil, ErrVarintOverflow
		}
	}
}

// length reads a length prefix and checks it against the bytes left in the
// enclosing record, end < 0 meaning unbounded.
func (d *Decoder) length(end int64) (int, error) {
	n, err := d.varint(32)
	if err != nil {
		return 0, err
	}
	if end >= 0 && int64(n) > end-d.n {
		return 0, fmt.Errorf("%w: length %d with %d bytes left", ErrOverrun, n, end-d.n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: length %d", ErrOverrun, n)
	}
	return int(n), nil
}

// blob reads n bytes into a block obtained from alloc. Large payloads are
// read before allocating so that a bogus length on an unbounded stream
// cannot force a huge allocation.
func (d *Decoder) blob(n int, alloc func(int) []byte) error {
	if n <= blobChunk {
		return d.readFull(alloc(n))
	}
	var buf bytes.Buffer
	m, err := io.CopyN(&buf, d.r, int64(n))
	d.n += m
	if err != nil {
		return truncated(err)
	}
	copy(alloc(n), buf.Bytes())
	return nil
}

func (d *Decoder) skip(n int64) error {
	m, err := io.CopyN(io.Discard, d.r, n)
	d.n += m
	return truncated(err)
}

func (d *Decoder) value(v *ir.Value, end int64, depth int) error {
	tag, err := d.varint(32)
	if err != nil {
		return err
	}
	code, wt := SplitTag(uint32(tag))
	if !wt.Valid() {
		return fmt.Errorf("%w: %d", ErrWireType, wt)
	}
	t, known := code.Type()
	if !known {
		if debug.Wire() {
			debug.Logf("wire: skipping code %d (%s) at %d\n", code, wt, d.n)
		}
		v.SetNull()
		return d.skipPayload(wt, end)
	}
	if wt != code.WireType() {
		return fmt.Errorf("%w: %s record with %s wire type", ErrWireType, code, wt)
	}

	switch t {
	case ir.SignedType, ir.UnsignedType:
		var buf [10]byte
		raw, err := d.rawVarint(buf[:])
		if err != nil {
			return err
		}
		v.SetRaw(t, raw)
	case ir.FloatType, ir.DoubleType:
		size := 4
		if t == ir.DoubleType {
			size = 8
		}
		if end >= 0 && int64(size) > end-d.n {
			return fmt.Errorf("%w: %s with %d bytes left", ErrOverrun, t, end-d.n)
		}
		if err := d.readFull(v.AllocPayload(t, size)); err != nil {
			return err
		}
	case ir.StringType, ir.BytesType:
		n, err := d.length(end)
		if err != nil {
			return err
		}
		if err := d.blob(n, func(n int) []byte { return v.AllocPayload(t, n) }); err != nil {
			return err
		}
	case ir.ObjectType:
		n, err := d.length(end)
		if err != nil {
			return err
		}
		if depth >= d.opts.maxDepth {
			return fmt.Errorf("%w: %d", ErrDepth, depth+1)
		}
		v.SetNull()
		return d.object(v.Object(), d.n+int64(n), depth+1)
	case ir.ArrayType:
		n, err := d.length(end)
		if err != nil {
			return err
		}
		if depth >= d.opts.maxDepth {
			return fmt.Errorf("%w: %d", ErrDepth, depth+1)
		}
		v.SetNull()
		return d.array(v.Array(), d.n+int64(n), depth+1)
	default:
		v.SetRaw(t, nil)
	}
	if end >= 0 && d.n > end {
		return ErrOverrun
	}
	return nil
}

func (d *Decoder) object(obj *ir.Object, end int64, depth int) error {
	for d.n < end {
		p := obj.AppendPair()
		n, err := d.length(end)
		if err != nil {
			return err
		}
		if err := d.blob(n, p.AllocName); err != nil {
			return err
		}
		if err := d.value(p.Value(), end, depth); err != nil {
			return err
		}
	}
	if d.n != end {
		return ErrOverrun
	}
	return nil
}

func (d *Decoder) array(arr *ir.Array, end int64, depth int) error {
	for d.n < end {
		if err := d.value(arr.Append(), end, depth); err != nil {
			return err
		}
	}
	if d.n != end {
		return ErrOverrun
	}
	return nil
}

func (d *Decoder) skipPayload(wt WireType, end int64) error {
	var err error
	switch wt {
	case Varint:
		var buf [10]byte
		_, err = d.rawVarint(buf[:])
	case Fixed32:
		err = d.skip(4)
	case Fixed64:
		err = d.skip(8)
	case LengthDelimited:
		var n int
		n, err = d.length(end)
		if err == nil {
			err = d.skip(int64(n))
		}
	}
	if err != nil {
		return err
	}
	if end >= 0 && d.n > end {
		return ErrOverrun
	}
	return nil
}

// Unmarshal decodes the single record in data into v. Bytes after the
// record are an error.
func Unmarshal(data []byte, v *ir.Value, opts ...Option) error {
	d := NewDecoder(bytes.NewReader(data), opts...)
	if err := d.Decode(v); err != nil {
		return err
	}
	if d.n != int64(len(data)) {
		return &Error{Offset: d.n, Err: fmt.Errorf("%d trailing bytes", int64(len(data))-d.n)}
	}
	return nil
}
