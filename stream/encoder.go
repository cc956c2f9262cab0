package stream

import (
	"io"

	"github.com/protoson/go-pson/token"
)

// flushSize is the buffered output size above which the Encoder writes
// through.
const flushSize = 4096

// Encoder writes JSON text with explicit stack management.
type Encoder struct {
	writer  io.Writer
	state   *State
	buf     []byte
	offset  int64
	flushed int64
	err     error
}

// NewEncoder creates a new Encoder writing to w. Output is buffered until
// Flush.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		writer: w,
		state:  NewState(),
		buf:    make([]byte, 0, 512),
	}
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// CurrentPath returns the path of the most recent key or item.
func (e *Encoder) CurrentPath() string {
	return e.state.CurrentPath()
}

func (e *Encoder) IsInObject() bool {
	return e.state.IsInObject()
}

func (e *Encoder) IsInArray() bool {
	return e.state.IsInArray()
}

// Offset returns the number of bytes of output produced, buffered or not.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Done reports whether a complete top-level value has been written.
func (e *Encoder) Done() bool {
	return e.state.Done()
}

func (e *Encoder) BeginObject() error {
	return e.open(EventBeginObject, '{')
}

func (e *Encoder) EndObject() error {
	return e.close(EventEndObject, '}')
}

func (e *Encoder) BeginArray() error {
	return e.open(EventBeginArray, '[')
}

func (e *Encoder) EndArray() error {
	return e.close(EventEndArray, ']')
}

// WriteKey writes an object key, quoted and escaped.
func (e *Encoder) WriteKey(key []byte) error {
	if e.err != nil {
		return e.err
	}
	sep := e.state.IsInObject() && e.state.Count() > 0
	if err := e.state.ProcessEvent(&Event{Type: EventKey, Key: string(key)}); err != nil {
		return err
	}
	if sep {
		e.buf = append(e.buf, ',')
	}
	e.buf = token.AppendQuote(e.buf, key)
	e.buf = append(e.buf, ':')
	return e.wrote()
}

// WriteString writes a string value, quoted and escaped.
func (e *Encoder) WriteString(s []byte) error {
	if err := e.beginValue(); err != nil {
		return err
	}
	e.buf = token.AppendQuote(e.buf, s)
	return e.wrote()
}

// WriteRaw writes a scalar already rendered as JSON text.
func (e *Encoder) WriteRaw(text []byte) error {
	if err := e.beginValue(); err != nil {
		return err
	}
	e.buf = append(e.buf, text...)
	return e.wrote()
}

func (e *Encoder) WriteBool(value bool) error {
	if value {
		return e.WriteRaw([]byte("true"))
	}
	return e.WriteRaw([]byte("false"))
}

func (e *Encoder) WriteNull() error {
	return e.WriteRaw([]byte("null"))
}

// Flush writes any buffered output.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if len(e.buf) == 0 {
		return nil
	}
	_, e.err = e.writer.Write(e.buf)
	e.flushed += int64(len(e.buf))
	e.buf = e.buf[:0]
	return e.err
}

// Reset resets the encoder to write to a new writer, discarding buffered
// output and state.
func (e *Encoder) Reset(w io.Writer) {
	e.writer = w
	e.state = NewState()
	e.buf = e.buf[:0]
	e.offset = 0
	e.flushed = 0
	e.err = nil
}

func (e *Encoder) beginValue() error {
	if e.err != nil {
		return e.err
	}
	sep := e.state.IsInArray() && e.state.Count() > 0
	if err := e.state.ProcessEvent(&Event{Type: EventValue}); err != nil {
		return err
	}
	if sep {
		e.buf = append(e.buf, ',')
	}
	return nil
}

func (e *Encoder) open(t EventType, c byte) error {
	if e.err != nil {
		return e.err
	}
	sep := e.state.IsInArray() && e.state.Count() > 0
	if err := e.state.ProcessEvent(&Event{Type: t}); err != nil {
		return err
	}
	if sep {
		e.buf = append(e.buf, ',')
	}
	e.buf = append(e.buf, c)
	return e.wrote()
}

func (e *Encoder) close(t EventType, c byte) error {
	if e.err != nil {
		return e.err
	}
	if err := e.state.ProcessEvent(&Event{Type: t}); err != nil {
		return err
	}
	e.buf = append(e.buf, c)
	return e.wrote()
}

// wrote accounts for output appended since the last call and writes
// through once the buffer is large.
func (e *Encoder) wrote() error {
	e.offset = e.flushed + int64(len(e.buf))
	if len(e.buf) < flushSize {
		return nil
	}
	return e.Flush()
}
