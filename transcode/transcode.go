package transcode

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/protoson/go-pson/debug"
	"github.com/protoson/go-pson/stream"
	"github.com/protoson/go-pson/token"
	"github.com/protoson/go-pson/wire"
)

var (
	ErrTruncated      = wire.ErrTruncated
	ErrVarintOverflow = wire.ErrVarintOverflow
	ErrOverrun        = wire.ErrOverrun
	ErrWireType       = wire.ErrWireType
	ErrDepth          = wire.ErrDepth

	ErrTrailing = errors.New("trailing bytes after record")
)

// chunk bounds how much of a string payload is buffered before its bytes
// have been read.
const chunk = 64 << 10

type transcodeOpts struct {
	maxDepth int
}

type Option func(*transcodeOpts)

// WithMaxDepth bounds object and array nesting. n <= 0 means
// wire.DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *transcodeOpts) { o.maxDepth = n }
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Transcoder turns PSON records read from r into JSON written to w.
type Transcoder struct {
	r       byteReader
	w       io.Writer
	n       int64
	enc     *stream.Encoder
	opts    transcodeOpts
	scratch []byte
}

func New(r io.Reader, w io.Writer, opts ...Option) *Transcoder {
	t := &Transcoder{
		w:       w,
		enc:     stream.NewEncoder(w),
		scratch: make([]byte, 0, 64),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	if t.opts.maxDepth <= 0 {
		t.opts.maxDepth = wire.DefaultMaxDepth
	}
	if br, ok := r.(byteReader); ok {
		t.r = br
	} else {
		t.r = bufio.NewReader(r)
	}
	return t
}

// BytesRead returns the number of PSON bytes consumed so far.
func (t *Transcoder) BytesRead() int64 {
	return t.n
}

// Value transcodes one record and flushes its JSON text. Successive texts
// are written back to back. On error the output may hold a prefix of the
// text.
func (t *Transcoder) Value() error {
	t.enc.Reset(t.w)
	if err := t.value(-1, 0); err != nil {
		if debug.Transcode() {
			debug.Logf("transcode: failed at %d: %v\n", t.n, err)
		}
		return &wire.Error{Offset: t.n, Err: err}
	}
	return t.enc.Flush()
}

// Transcode converts the single record read from r into JSON written to w.
// Input after the record is an error.
func Transcode(r io.Reader, w io.Writer, opts ...Option) error {
	t := New(r, w, opts...)
	if err := t.Value(); err != nil {
		return err
	}
	if _, err := t.r.ReadByte(); err != io.EOF {
		return &wire.Error{Offset: t.n, Err: ErrTrailing}
	}
	return nil
}

func (t *Transcoder) readByte() (byte, error) {
	b, err := t.r.ReadByte()
	if err != nil {
		return 0, truncated(err)
	}
	t.n++
	return b, nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}

func (t *Transcoder) varint(bits uint) (uint64, error) {
	var x uint64
	var shift uint
	for {
		b, err := t.readByte()
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

func (t *Transcoder) length(end int64) (int, error) {
	n, err := t.varint(32)
	if err != nil {
		return 0, err
	}
	if end >= 0 && int64(n) > end-t.n {
		return 0, fmt.Errorf("%w: length %d with %d bytes left", ErrOverrun, n, end-t.n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: length %d", ErrOverrun, n)
	}
	return int(n), nil
}

// read reads n bytes into the scratch buffer, growing it only as data
// arrives.
func (t *Transcoder) read(n int) ([]byte, error) {
	t.scratch = t.scratch[:0]
	for n > 0 {
		step := min(n, chunk)
		start := len(t.scratch)
		t.scratch = append(t.scratch, make([]byte, step)...)
		m, err := io.ReadFull(t.r, t.scratch[start:])
		t.n += int64(m)
		if err != nil {
			return nil, truncated(err)
		}
		n -= step
	}
	return t.scratch, nil
}

func (t *Transcoder) skip(n int64) error {
	m, err := io.CopyN(io.Discard, t.r, n)
	t.n += m
	return truncated(err)
}

func (t *Transcoder) fixed(size int, end int64) ([]byte, error) {
	if end >= 0 && int64(size) > end-t.n {
		return nil, fmt.Errorf("%w: fixed%d with %d bytes left", ErrOverrun, size*8, end-t.n)
	}
	return t.read(size)
}

func (t *Transcoder) value(end int64, depth int) error {
	tag, err := t.varint(32)
	if err != nil {
		return err
	}
	code, wt := wire.SplitTag(uint32(tag))
	if !wt.Valid() {
		return fmt.Errorf("%w: %d", ErrWireType, wt)
	}
	if _, known := code.Type(); !known {
		if err := t.skipPayload(wt, end); err != nil {
			return err
		}
		return t.enc.WriteNull()
	}
	if wt != code.WireType() {
		return fmt.Errorf("%w: %s record with %s wire type", ErrWireType, code, wt)
	}

	switch code {
	case wire.CodeNull:
		err = t.enc.WriteNull()
	case wire.CodeTrue:
		err = t.enc.WriteBool(true)
	case wire.CodeFalse:
		err = t.enc.WriteBool(false)
	case wire.CodeZero:
		err = t.enc.WriteRaw([]byte{'0'})
	case wire.CodeOne:
		err = t.enc.WriteRaw([]byte{'1'})
	case wire.CodeUnsigned, wire.CodeSigned:
		var m uint64
		m, err = t.varint(64)
		if err != nil {
			return err
		}
		var buf [24]byte
		b := buf[:0]
		if code == wire.CodeSigned {
			b = append(b, '-')
		}
		err = t.enc.WriteRaw(strconv.AppendUint(b, m, 10))
	case wire.CodeFloat:
		var p []byte
		if p, err = t.fixed(4, end); err != nil {
			return err
		}
		f := math.Float32frombits(binary.NativeEndian.Uint32(p))
		var buf [32]byte
		err = t.enc.WriteRaw(token.AppendFloat(buf[:0], float64(f), 32))
	case wire.CodeDouble:
		var p []byte
		if p, err = t.fixed(8, end); err != nil {
			return err
		}
		f := math.Float64frombits(binary.NativeEndian.Uint64(p))
		var buf [32]byte
		err = t.enc.WriteRaw(token.AppendFloat(buf[:0], f, 64))
	case wire.CodeString, wire.CodeBytes:
		var n int
		if n, err = t.length(end); err != nil {
			return err
		}
		var p []byte
		if p, err = t.read(n); err != nil {
			return err
		}
		if code == wire.CodeBytes {
			p = nil
		}
		err = t.enc.WriteString(p)
	case wire.CodeObject, wire.CodeArray:
		var n int
		if n, err = t.length(end); err != nil {
			return err
		}
		if depth >= t.opts.maxDepth {
			return fmt.Errorf("%w: %d", ErrDepth, depth+1)
		}
		if code == wire.CodeObject {
			err = t.object(t.n+int64(n), depth+1)
		} else {
			err = t.array(t.n+int64(n), depth+1)
		}
	}
	if err != nil {
		return err
	}
	if end >= 0 && t.n > end {
		return ErrOverrun
	}
	return nil
}

func (t *Transcoder) object(end int64, depth int) error {
	if err := t.enc.BeginObject(); err != nil {
		return err
	}
	for t.n < end {
		n, err := t.length(end)
		if err != nil {
			return err
		}
		name, err := t.read(n)
		if err != nil {
			return err
		}
		if err := t.enc.WriteKey(name); err != nil {
			return err
		}
		if err := t.value(end, depth); err != nil {
			return err
		}
	}
	if t.n != end {
		return ErrOverrun
	}
	return t.enc.EndObject()
}

func (t *Transcoder) array(end int64, depth int) error {
	if err := t.enc.BeginArray(); err != nil {
		return err
	}
	for t.n < end {
		if err := t.value(end, depth); err != nil {
			return err
		}
	}
	if t.n != end {
		return ErrOverrun
	}
	return t.enc.EndArray()
}

func (t *Transcoder) skipPayload(wt wire.WireType, end int64) error {
	var err error
	switch wt {
	case wire.Varint:
		_, err = t.varint(64)
	case wire.Fixed32:
		err = t.skip(4)
	case wire.Fixed64:
		err = t.skip(8)
	case wire.LengthDelimited:
		var n int
		if n, err = t.length(end); err == nil {
			err = t.skip(int64(n))
		}
	}
	if err != nil {
		return err
	}
	if end >= 0 && t.n > end {
		return ErrOverrun
	}
	return nil
}
