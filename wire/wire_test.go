package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/protoson/go-pson/alloc"
	"github.com/protoson/go-pson/ir"
)

func f32(f float32) []byte {
	return binary.NativeEndian.AppendUint32(nil, math.Float32bits(f))
}

func f64(f float64) []byte {
	return binary.NativeEndian.AppendUint64(nil, math.Float64bits(f))
}

func cat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestEncodeBitExact(t *testing.T) {
	tests := []struct {
		name string
		set  func(v *ir.Value)
		want []byte
	}{
		{"null", func(v *ir.Value) { v.SetNull() }, []byte{0x60}},
		{"true", func(v *ir.Value) { v.SetBool(true) }, []byte{0x40}},
		{"false", func(v *ir.Value) { v.SetBool(false) }, []byte{0x48}},
		{"zero", func(v *ir.Value) { v.SetFloat64(0) }, []byte{0x50}},
		{"one", func(v *ir.Value) { v.SetUint(1) }, []byte{0x58}},
		{"unsigned", func(v *ir.Value) { v.SetInt(255) }, []byte{0x10, 0xff, 0x01}},
		{"signed", func(v *ir.Value) { v.SetInt(-300) }, []byte{0x18, 0xac, 0x02}},
		{"signed -1", func(v *ir.Value) { v.SetInt(-1) }, []byte{0x18, 0x01}},
		{"string", func(v *ir.Value) { v.SetString("hi") }, []byte{0x0a, 0x02, 'h', 'i'}},
		{"empty string", func(v *ir.Value) { v.SetString("") }, []byte{0x0a, 0x00}},
		{"bytes", func(v *ir.Value) { v.SetBytes([]byte{0, 1}) }, []byte{0x6a, 0x02, 0, 1}},
		{"float", func(v *ir.Value) { v.SetFloat32(33.25) }, cat([]byte{0x35}, f32(33.25))},
		{"double", func(v *ir.Value) { v.SetFloat64(123456789.123) }, cat([]byte{0x39}, f64(123456789.123))},
		{"object", func(v *ir.Value) { v.Field("a").SetInt(1) }, []byte{0x22, 0x03, 0x01, 'a', 0x58}},
		{"empty object", func(v *ir.Value) { v.Object() }, []byte{0x22, 0x00}},
		{"array", func(v *ir.Value) {
			arr := v.Array()
			arr.Add(0)
			arr.Add(true)
		}, []byte{0x2a, 0x02, 0x50, 0x40}},
		{"nested", func(v *ir.Value) {
			v.Field("x").Array().AddObject()
		}, []byte{0x22, 0x06, 0x01, 'x', 0x2a, 0x02, 0x22, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ir.New()
			tt.set(v)
			got, err := Marshal(v)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("encoding (-want +got):\n%s", diff)
			}
			if Size(v) != int64(len(got)) {
				t.Errorf("Size %d, encoded %d", Size(v), len(got))
			}
		})
	}
}

func TestEmptyEncodesAsNull(t *testing.T) {
	got, err := Marshal(ir.Empty())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x60}) {
		t.Errorf("got % x", got)
	}
}

func sampleDoc() *ir.Value {
	v := ir.New()
	v.Field("int").SetInt(255)
	v.Field("float").SetFloat64(222.5)
	v.Field("bool").SetBool(false)
	v.Field("string").SetString("hello!")
	v.Field("null").SetNull()
	v.Field("neg").SetInt(math.MinInt64)
	v.Field("big").SetUint(math.MaxUint64)
	v.Field("f32").SetFloat32(33.25)
	v.Field("d").SetFloat64(220.222)
	v.Field("dd").SetFloat64(-123456789.123)
	v.Field("bytes").SetBytes([]byte{0xde, 0xad})
	arr := v.Field("arr").Array()
	arr.Add(0)
	arr.Add(1)
	arr.Add("x")
	arr.AddArray()
	arr.AddObject().Field("deep").SetString("é\"q")
	return v
}

func TestRoundTrip(t *testing.T) {
	v := sampleDoc()
	data, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	got := ir.New()
	if err := Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v.Interface(), got.Interface()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	again, err := Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("re-encoding differs:\n% x\n% x", data, again)
	}
}

func TestScalarsRoundTripExactly(t *testing.T) {
	v := ir.New()
	v.SetFloat32(33.25)
	data, _ := Marshal(v)
	got := ir.New()
	if err := Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if got.Type() != ir.FloatType || got.Float32() != 33.25 {
		t.Errorf("got %s %v", got.Type(), got.Float32())
	}

	v.SetFloat64(123456789.123)
	data, _ = Marshal(v)
	if err := Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if got.Type() != ir.DoubleType || got.Float64() != 123456789.123 {
		t.Errorf("got %s %v", got.Type(), got.Float64())
	}
}

func TestCanonicalSurvivesRoundTrip(t *testing.T) {
	for _, set := range []func(*ir.Value){
		func(v *ir.Value) { v.SetInt(0) },
		func(v *ir.Value) { v.SetInt(1) },
		func(v *ir.Value) { v.SetFloat32(1) },
		func(v *ir.Value) { v.SetFloat64(0) },
	} {
		v := ir.New()
		set(v)
		data, _ := Marshal(v)
		if len(data) != 1 {
			t.Errorf("canonical value encoded in %d bytes", len(data))
		}
		got := ir.New()
		if err := Unmarshal(data, got); err != nil {
			t.Fatal(err)
		}
		if got.Type() != v.Type() {
			t.Errorf("got %s, want %s", got.Type(), v.Type())
		}
	}
}

func TestDecodeStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := range 3 {
		v := ir.New()
		v.SetInt(int64(i * 100))
		if err := enc.Encode(v); err != nil {
			t.Fatal(err)
		}
	}
	if enc.BytesWritten() != int64(buf.Len()) {
		t.Errorf("BytesWritten %d, buffer %d", enc.BytesWritten(), buf.Len())
	}
	dec := NewDecoder(&buf)
	for i := range 3 {
		v := ir.New()
		if err := dec.Decode(v); err != nil {
			t.Fatal(err)
		}
		if v.Int() != int64(i*100) {
			t.Errorf("record %d = %d", i, v.Int())
		}
	}
	if err := dec.Decode(ir.New()); !errors.Is(err, ErrTruncated) {
		t.Errorf("decode past end: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short varint", []byte{0x10, 0x80}, ErrTruncated},
		{"short float", []byte{0x35, 0x00, 0x00}, ErrTruncated},
		{"short string", []byte{0x0a, 0x05, 'a'}, ErrTruncated},
		{"long tag", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, ErrVarintOverflow},
		{"long magnitude", cat([]byte{0x10}, bytes.Repeat([]byte{0xff}, 10), []byte{0x01}), ErrVarintOverflow},
		{"magnitude above 64 bits", cat([]byte{0x10}, bytes.Repeat([]byte{0xff}, 9), []byte{0x02}), ErrVarintOverflow},
		{"undefined wire type", []byte{0x0b}, ErrWireType},
		{"mismatched wire type", []byte{0x0d, 0, 0, 0, 0}, ErrWireType},
		{"child overruns object", []byte{0x22, 0x02, 0x01, 'a', 0x58}, ErrOverrun},
		{"string overruns array", []byte{0x2a, 0x02, 0x0a, 0x05, 'a', 'b'}, ErrOverrun},
		{"float overruns array", []byte{0x2a, 0x02, 0x35, 0, 0, 0, 0}, ErrOverrun},
		{"huge length", []byte{0x0a, 0xff, 0xff, 0xff, 0xff, 0x0f}, ErrOverrun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(tt.in, ir.New())
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			var werr *Error
			if !errors.As(err, &werr) {
				t.Errorf("%T is not *Error", err)
			}
		})
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	err := Unmarshal([]byte{0x60, 0x60}, ir.New())
	if err == nil {
		t.Error("want error for trailing bytes")
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	// [ code 14 varint 300, code 15 length-delimited "xy", one ]
	in := []byte{0x2a, 0x08, 14 << 3, 0xac, 0x02, 15<<3 | 2, 0x02, 'x', 'y', 0x58}
	v := ir.New()
	if err := Unmarshal(in, v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{nil, nil, int64(1)}, v.Interface()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodePartialTree(t *testing.T) {
	v := sampleDoc()
	data, _ := Marshal(v)
	got := ir.New()
	err := Unmarshal(data[:len(data)/2], got)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v", err)
	}
	if !got.IsObject() || got.Get("int").Int() != 255 {
		t.Errorf("partial tree lost its first member")
	}
}

func TestMaxDepth(t *testing.T) {
	v := ir.New()
	cur := v
	for range 10 {
		cur = cur.Array().Append()
	}
	data, _ := Marshal(v)
	if err := Unmarshal(data, ir.New(), WithMaxDepth(5)); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v", err)
	}
	if err := Unmarshal(data, ir.New(), WithMaxDepth(10)); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestLargeBlob(t *testing.T) {
	s := bytes.Repeat([]byte("abcdefgh"), blobChunk/4)
	v := ir.New()
	v.SetBytes(s)
	data, _ := Marshal(v)
	got := ir.New()
	if err := Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Bytes(), s) {
		t.Error("large blob differs")
	}
	if err := Unmarshal(data[:len(data)-1], ir.New()); !errors.Is(err, ErrTruncated) {
		t.Errorf("got %v", err)
	}
}

func TestDecodeReleasesWithAllocator(t *testing.T) {
	data, _ := Marshal(sampleDoc())
	d := alloc.NewDynamic()
	v := ir.NewWith(d)
	if err := Unmarshal(data, v); err != nil {
		t.Fatal(err)
	}
	if d.InUse() == 0 {
		t.Fatal("decode did not allocate from the bound allocator")
	}
	v.Release()
	if d.InUse() != 0 {
		t.Errorf("in use %d after release", d.InUse())
	}
}

func TestDecodeIntoCircular(t *testing.T) {
	data, _ := Marshal(sampleDoc())
	c := alloc.NewCircular(1024)
	v := ir.NewWith(c)
	if err := Unmarshal(data, v); err != nil {
		t.Fatal(err)
	}
	if v.Get("string").Str() != "hello!" {
		t.Errorf("got %q", v.Get("string").Str())
	}
}

func TestDecodeReplacesContainer(t *testing.T) {
	first, _ := Marshal(valueOf(map[string]any{"a": 5}))
	second, _ := Marshal(valueOf(map[string]any{"b": 7}))
	v := ir.New()
	if err := Unmarshal(first, v); err != nil {
		t.Fatal(err)
	}
	if err := Unmarshal(second, v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"b": int64(7)}, v.Interface()); diff != "" {
		t.Errorf("object (-want +got):\n%s", diff)
	}
	if v.Object().Len() != 1 || !v.Get("a").IsEmpty() {
		t.Errorf("stale members survived: len %d", v.Object().Len())
	}

	arr1, _ := Marshal(valueOf([]any{1}))
	arr2, _ := Marshal(valueOf([]any{"x"}))
	if err := Unmarshal(arr1, v); err != nil {
		t.Fatal(err)
	}
	if err := Unmarshal(arr2, v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"x"}, v.Interface()); diff != "" {
		t.Errorf("array (-want +got):\n%s", diff)
	}
}

func valueOf(x any) *ir.Value {
	v := ir.New()
	if err := ir.FromAny(v, x); err != nil {
		panic(err)
	}
	return v
}
