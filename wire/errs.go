package wire

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrTruncated      = errors.New("truncated input")
	ErrVarintOverflow = errors.New("varint overflow")
	ErrOverrun        = errors.New("record overruns its container")
	ErrWireType       = errors.New("bad wire type")
	ErrDepth          = errors.New("nesting too deep")
)

// Error reports a decoding failure at a byte offset.
type Error struct {
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pson: offset %d: %s", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}
