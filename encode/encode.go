package encode

import (
	"io"
	"strconv"

	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/token"
)

// flushSize is the buffered output size above which Encode writes through.
const flushSize = 4096

type EncState struct {
	depth, indent int

	w   io.Writer
	buf []byte
	err error

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w as JSON.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w}
	for _, opt := range opts {
		opt(es)
	}
	es.value(v)
	es.flush()
	return es.err
}

func (es *EncState) flush() {
	if es.err != nil || len(es.buf) == 0 {
		return
	}
	_, es.err = es.w.Write(es.buf)
	es.buf = es.buf[:0]
}

func (es *EncState) maybeFlush() {
	if len(es.buf) >= flushSize {
		es.flush()
	}
}

// emit appends text, colored as attribute a of type t when colors are on.
func (es *EncState) emit(t ir.Type, a ColorAttr, text []byte) {
	if es.Color == nil {
		es.buf = append(es.buf, text...)
		return
	}
	es.buf = append(es.buf, es.Color(t, a, string(text))...)
}

func (es *EncState) sep(t ir.Type, s string) {
	es.emit(t, SepColor, []byte(s))
}

func (es *EncState) newline() {
	if es.indent <= 0 {
		return
	}
	es.buf = append(es.buf, '\n')
	for range es.depth * es.indent {
		es.buf = append(es.buf, ' ')
	}
}

func (es *EncState) value(v *ir.Value) {
	if es.err != nil {
		return
	}
	switch t := v.Type(); t {
	case ir.ObjectType:
		es.object(v.Object())
	case ir.ArrayType:
		es.array(v.Array())
	default:
		var scratch [64]byte
		es.emit(t, ValueColor, AppendScalar(scratch[:0], v))
	}
	es.maybeFlush()
}

func (es *EncState) object(obj *ir.Object) {
	es.sep(ir.ObjectType, "{")
	if obj.Len() == 0 {
		es.sep(ir.ObjectType, "}")
		return
	}
	es.depth++
	first := true
	var scratch []byte
	for p := range obj.All() {
		if !first {
			es.sep(ir.ObjectType, ",")
		}
		first = false
		es.newline()
		scratch = token.AppendQuote(scratch[:0], p.NameBytes())
		es.emit(ir.ObjectType, FieldColor, scratch)
		if es.indent > 0 {
			es.sep(ir.ObjectType, ": ")
		} else {
			es.sep(ir.ObjectType, ":")
		}
		es.value(p.Value())
	}
	es.depth--
	es.newline()
	es.sep(ir.ObjectType, "}")
}

func (es *EncState) array(arr *ir.Array) {
	es.sep(ir.ArrayType, "[")
	if arr.Len() == 0 {
		es.sep(ir.ArrayType, "]")
		return
	}
	es.depth++
	first := true
	for item := range arr.All() {
		if !first {
			es.sep(ir.ArrayType, ",")
		}
		first = false
		es.newline()
		es.value(item)
	}
	es.depth--
	es.newline()
	es.sep(ir.ArrayType, "]")
}

// AppendScalar appends the JSON text of a non-container value to b.
func AppendScalar(b []byte, v *ir.Value) []byte {
	switch v.Type() {
	case ir.TrueType:
		return append(b, "true"...)
	case ir.FalseType:
		return append(b, "false"...)
	case ir.ZeroType:
		return append(b, '0')
	case ir.OneType:
		return append(b, '1')
	case ir.SignedType:
		b = append(b, '-')
		return strconv.AppendUint(b, v.Magnitude(), 10)
	case ir.UnsignedType:
		return strconv.AppendUint(b, v.Magnitude(), 10)
	case ir.FloatType:
		return token.AppendFloat(b, float64(v.Float32()), 32)
	case ir.DoubleType:
		return token.AppendFloat(b, v.Float64(), 64)
	case ir.StringType:
		return token.AppendQuote(b, v.Payload())
	case ir.BytesType:
		return append(b, `""`...)
	default:
		return append(b, "null"...)
	}
}
