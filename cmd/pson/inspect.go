package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/protoson/go-pson/frame"
	"github.com/protoson/go-pson/token"
	"github.com/protoson/go-pson/wire"

	"github.com/scott-cotton/cli"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		cfg.Inspect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: inspect takes at most one file", cli.ErrUsage)
	}
	d, err := readFile(cc, fileArgs(args)[0])
	if err != nil {
		return err
	}
	return dumpDoc(cc.Out, d)
}

// dumpDoc writes the frame header, if any, the digest of the PSON body and
// one line per record.
func dumpDoc(w io.Writer, d []byte) error {
	if frame.IsFramed(d) {
		body, h, err := frame.Unwrap(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "frame: compression=%s size=%d stored=%d\n", h.Compression, h.Size, h.Stored)
		d = body
	}
	digest := frame.Digest(d)
	fmt.Fprintf(w, "blake3: %s\n", hex.EncodeToString(digest[:]))
	fmt.Fprintf(w, "%6s  %-16s%s\n", "offset", "record", "payload")
	r := &recordDumper{w: w, d: d}
	if err := r.record(len(d), 0, ""); err != nil {
		return fmt.Errorf("at offset %d: %w", r.i, err)
	}
	if r.i != len(d) {
		return fmt.Errorf("%d trailing bytes after the record", len(d)-r.i)
	}
	return nil
}

type recordDumper struct {
	w io.Writer
	d []byte
	i int
}

var errShort = errors.New("record runs past its container")

func (r *recordDumper) uvarint(end int) (uint64, error) {
	x, n := binary.Uvarint(r.d[r.i:end])
	if n == 0 {
		return 0, errShort
	}
	if n < 0 {
		return 0, wire.ErrVarintOverflow
	}
	r.i += n
	return x, nil
}

func (r *recordDumper) take(n uint64, end int) ([]byte, error) {
	if n > uint64(end-r.i) {
		return nil, errShort
	}
	b := r.d[r.i : r.i+int(n)]
	r.i += int(n)
	return b, nil
}

func (r *recordDumper) record(end, depth int, name string) error {
	start := r.i
	tag, err := r.uvarint(end)
	if err != nil {
		return err
	}
	if tag > math.MaxUint32 {
		return wire.ErrVarintOverflow
	}
	code, wt := wire.SplitTag(uint32(tag))
	if !wt.Valid() {
		return fmt.Errorf("%w: %d", wire.ErrWireType, wt)
	}
	label := strings.Repeat("  ", depth) + name + code.String()
	t, known := code.Type()
	if known && wt != code.WireType() {
		return fmt.Errorf("%w: %s record with %s wire type", wire.ErrWireType, code, wt)
	}
	if known && !t.HasPayload() && code != wire.CodeObject && code != wire.CodeArray {
		fmt.Fprintf(r.w, "%6d  %s\n", start, label)
		return nil
	}

	var payload string
	switch wt {
	case wire.Varint:
		x, err := r.uvarint(end)
		if err != nil {
			return err
		}
		switch code {
		case wire.CodeSigned:
			payload = fmt.Sprintf("-%d", x)
		default:
			payload = fmt.Sprint(x)
		}
	case wire.Fixed32:
		b, err := r.take(4, end)
		if err != nil {
			return err
		}
		f := math.Float32frombits(binary.NativeEndian.Uint32(b))
		payload = string(token.AppendFloat(nil, float64(f), 32))
	case wire.Fixed64:
		b, err := r.take(8, end)
		if err != nil {
			return err
		}
		payload = string(token.AppendFloat(nil, math.Float64frombits(binary.NativeEndian.Uint64(b)), 64))
	case wire.LengthDelimited:
		n, err := r.uvarint(end)
		if err != nil {
			return err
		}
		if n > uint64(end-r.i) {
			return errShort
		}
		payload = fmt.Sprintf("len=%d", n)
		switch code {
		case wire.CodeString:
			b, _ := r.take(n, end)
			payload += " " + preview(b)
		case wire.CodeObject, wire.CodeArray:
			fmt.Fprintf(r.w, "%6d  %-16s%s\n", start, label, payload)
			return r.members(r.i+int(n), depth+1, code == wire.CodeObject)
		default:
			r.take(n, end)
		}
	}
	fmt.Fprintf(r.w, "%6d  %-16s%s\n", start, label, payload)
	return nil
}

func (r *recordDumper) members(end, depth int, named bool) error {
	for r.i < end {
		name := ""
		if named {
			n, err := r.uvarint(end)
			if err != nil {
				return err
			}
			b, err := r.take(n, end)
			if err != nil {
				return err
			}
			name = token.Quote(string(b)) + ": "
		}
		if err := r.record(end, depth, name); err != nil {
			return err
		}
	}
	return nil
}

const previewLen = 40

func preview(b []byte) string {
	if len(b) <= previewLen {
		return token.Quote(string(b))
	}
	return token.Quote(string(b[:previewLen])) + "..."
}
