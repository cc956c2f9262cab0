package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
)

const Magic = "PSF1"

// headerSize is the fixed part of the header, before the length varint.
const headerSize = len(Magic) + 1 + DigestSize

const DigestSize = 32

// MaxBodySize bounds the declared body length accepted by Unwrap.
const MaxBodySize = math.MaxInt32

var (
	ErrNotFramed   = errors.New("not a frame")
	ErrTruncated   = errors.New("truncated frame")
	ErrCompression = errors.New("unknown compression")
	ErrDigest      = errors.New("digest mismatch")
	ErrCorrupt     = errors.New("corrupt frame body")
)

type Compression uint8

const (
	None Compression = 0
	LZ4  Compression = 1
	Zstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" or "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrCompression, name)
	}
}

type Header struct {
	Compression Compression
	Digest      [DigestSize]byte
	Size        int
	// Stored is the number of body bytes following the header.
	Stored      int
}

func Digest(body []byte) [DigestSize]byte {
	return blake3.Sum256(body)
}

// IsFramed reports whether d starts with the frame magic.
func IsFramed(d []byte) bool {
	return bytes.HasPrefix(d, []byte(Magic))
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("frame: zstd encoder: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBodySize))
	if err != nil {
		panic("frame: zstd decoder: " + err.Error())
	}
}

// Wrap frames body using compression c. When compression would not make
// the body smaller it is stored as is and the header says None.
func Wrap(body []byte, c Compression) ([]byte, error) {
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("frame: body of %d bytes too large", len(body))
	}
	stored, c, err := compress(body, c)
	if err != nil {
		return nil, err
	}
	digest := Digest(body)
	out := make([]byte, 0, headerSize+binary.MaxVarintLen64+len(stored))
	out = append(out, Magic...)
	out = append(out, byte(c))
	out = append(out, digest[:]...)
	out = binary.AppendUvarint(out, uint64(len(body)))
	return append(out, stored...), nil
}

func compress(body []byte, c Compression) ([]byte, Compression, error) {
	switch c {
	case None:
		return body, None, nil
	case LZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(body)))
		n, err := lz4.CompressBlock(body, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(body) {
			return body, None, nil
		}
		return dst[:n], LZ4, nil
	case Zstd:
		dst := zstdEncoder.EncodeAll(body, nil)
		if len(dst) >= len(body) {
			return body, None, nil
		}
		return dst, Zstd, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrCompression, uint8(c))
	}
}

// ReadHeader parses the header at the start of d and returns it with the
// offset of the stored body.
func ReadHeader(d []byte) (Header, int, error) {
	var h Header
	if !IsFramed(d) {
		if len(d) < len(Magic) && bytes.HasPrefix([]byte(Magic), d) {
			return h, 0, ErrTruncated
		}
		return h, 0, ErrNotFramed
	}
	if len(d) < headerSize {
		return h, 0, ErrTruncated
	}
	h.Compression = Compression(d[len(Magic)])
	if h.Compression > Zstd {
		return h, 0, fmt.Errorf("%w: %d", ErrCompression, d[len(Magic)])
	}
	copy(h.Digest[:], d[len(Magic)+1:headerSize])
	size, n := binary.Uvarint(d[headerSize:])
	switch {
	case n == 0:
		return h, 0, ErrTruncated
	case n < 0 || size > MaxBodySize:
		return h, 0, fmt.Errorf("%w: body length overflows", ErrCorrupt)
	}
	h.Size = int(size)
	off := headerSize + n
	h.Stored = len(d) - off
	return h, off, nil
}

// Unwrap checks and returns the PSON body of the frame d.
func Unwrap(d []byte) ([]byte, Header, error) {
	h, off, err := ReadHeader(d)
	if err != nil {
		return nil, h, err
	}
	body, err := decompress(d[off:], h)
	if err != nil {
		return nil, h, err
	}
	if Digest(body) != h.Digest {
		return nil, h, ErrDigest
	}
	return body, h, nil
}

func decompress(stored []byte, h Header) ([]byte, error) {
	switch h.Compression {
	case LZ4:
		// lz4 cannot expand a block by more than 255 to 1
		if h.Size > 255*len(stored)+16 {
			return nil, fmt.Errorf("%w: lz4 body of %d bytes cannot expand to %d", ErrCorrupt, len(stored), h.Size)
		}
		body := make([]byte, h.Size)
		n, err := lz4.UncompressBlock(stored, body)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if n != h.Size {
			return nil, fmt.Errorf("%w: lz4 body is %d bytes, header says %d", ErrCorrupt, n, h.Size)
		}
		return body, nil
	case Zstd:
		body, err := zstdDecoder.DecodeAll(stored, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if len(body) != h.Size {
			return nil, fmt.Errorf("%w: zstd body is %d bytes, header says %d", ErrCorrupt, len(body), h.Size)
		}
		return body, nil
	default:
		if len(stored) != h.Size {
			if len(stored) < h.Size {
				return nil, ErrTruncated
			}
			return nil, fmt.Errorf("%w: %d bytes after a body of %d", ErrCorrupt, len(stored)-h.Size, h.Size)
		}
		return stored, nil
	}
}
