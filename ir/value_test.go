package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/protoson/go-pson/alloc"
)

func TestCanonicalNumbers(t *testing.T) {
	tests := []struct {
		name string
		set  func(v *Value)
		want Type
	}{
		{"int 0", func(v *Value) { v.SetInt(0) }, ZeroType},
		{"int 1", func(v *Value) { v.SetInt(1) }, OneType},
		{"uint 0", func(v *Value) { v.SetUint(0) }, ZeroType},
		{"uint 1", func(v *Value) { v.SetUint(1) }, OneType},
		{"float32 0", func(v *Value) { v.SetFloat32(0) }, ZeroType},
		{"float32 1", func(v *Value) { v.SetFloat32(1) }, OneType},
		{"float64 0", func(v *Value) { v.SetFloat64(0) }, ZeroType},
		{"float64 1", func(v *Value) { v.SetFloat64(1) }, OneType},
		{"float64 -0", func(v *Value) { v.SetFloat64(math.Copysign(0, -1)) }, ZeroType},
		{"int -1", func(v *Value) { v.SetInt(-1) }, SignedType},
		{"int 2", func(v *Value) { v.SetInt(2) }, UnsignedType},
		{"integral float32", func(v *Value) { v.SetFloat32(-12) }, SignedType},
		{"integral float64", func(v *Value) { v.SetFloat64(1e6) }, UnsignedType},
		{"float32", func(v *Value) { v.SetFloat32(33.25) }, FloatType},
		{"demoted float64", func(v *Value) { v.SetFloat64(222.5) }, FloatType},
		{"near float32", func(v *Value) { v.SetFloat64(220.222) }, FloatType},
		{"double", func(v *Value) { v.SetFloat64(123456789.123) }, DoubleType},
		{"huge double", func(v *Value) { v.SetFloat64(1e300) }, DoubleType},
		{"nan", func(v *Value) { v.SetFloat64(math.NaN()) }, DoubleType},
		{"set any 1.0", func(v *Value) { v.Set(1.0) }, OneType},
		{"set any uint8", func(v *Value) { v.Set(uint8(200)) }, UnsignedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tt.set(v)
			if v.Type() != tt.want {
				t.Errorf("type %s, want %s", v.Type(), tt.want)
			}
			if !v.Type().HasPayload() && v.Payload() != nil {
				t.Errorf("%s carries a payload", v.Type())
			}
		})
	}
}

func TestSignedMagnitude(t *testing.T) {
	v := New()
	v.SetInt(-300)
	if got, want := v.Payload(), []byte{0xac, 0x02}; !cmp.Equal(got, want) {
		t.Errorf("payload % x, want % x", got, want)
	}
	if v.Int() != -300 || v.Magnitude() != 300 {
		t.Errorf("Int %d Magnitude %d", v.Int(), v.Magnitude())
	}
	v.SetInt(math.MinInt64)
	if v.Int() != math.MinInt64 {
		t.Errorf("min int64 read back as %d", v.Int())
	}
}

func TestLenientReads(t *testing.T) {
	v := New()
	v.SetString("x")
	if v.Int() != 0 || v.Float64() != 0 || v.Bool() || v.Bytes() != nil {
		t.Errorf("mismatched reads on a string should be zero")
	}
	v.SetBool(true)
	if v.Int() != 1 || v.Str() != "" {
		t.Errorf("true reads as %d %q", v.Int(), v.Str())
	}
	v.SetFloat32(2.5)
	if v.Float64() != 2.5 || v.Int() != 2 || !v.Bool() {
		t.Errorf("float reads %v %d %v", v.Float64(), v.Int(), v.Bool())
	}
	v.SetUint(math.MaxUint64)
	if v.Uint() != math.MaxUint64 {
		t.Errorf("uint read %d", v.Uint())
	}
}

func TestEmptySentinel(t *testing.T) {
	v := New()
	v.Field("a").SetInt(3)

	miss := v.Get("b")
	if !miss.IsEmpty() || miss != Empty() {
		t.Fatalf("miss returned %s", miss.Type())
	}
	miss.SetString("ignored")
	miss.Object().Field("x").SetInt(5)
	if !Empty().IsEmpty() || Empty().Payload() != nil {
		t.Fatalf("sentinel was modified")
	}
	if v.Object().Len() != 1 {
		t.Errorf("read miss allocated: len %d", v.Object().Len())
	}
	if !v.Get("a").Get("deeper").IsEmpty() {
		t.Errorf("lookup on a scalar should miss")
	}
	if v.Get("a").Int() != 3 {
		t.Errorf("got %d", v.Get("a").Int())
	}
}

func TestFieldWriteThrough(t *testing.T) {
	v := New()
	v.Field("k").SetInt(2)
	v.Field("k").SetInt(3)
	if v.Object().Len() != 1 || v.Get("k").Int() != 3 {
		t.Errorf("len %d value %d", v.Object().Len(), v.Get("k").Int())
	}
	// first match wins on duplicates
	v.Object().Append("k").SetInt(9)
	if v.Get("k").Int() != 3 {
		t.Errorf("duplicate shadowed the first member")
	}
}

func TestCoercionReplaces(t *testing.T) {
	d := alloc.NewDynamic()
	v := NewWith(d)
	v.SetString("payload")
	v.Array().Add("item")
	if v.Type() != ArrayType || v.Array().Len() != 1 {
		t.Fatalf("type %s len %d", v.Type(), v.Array().Len())
	}
	if d.InUse() != len("item") {
		t.Errorf("in use %d, string payload not released", d.InUse())
	}
	v.Object()
	if v.Type() != ObjectType || d.InUse() != 0 {
		t.Errorf("type %s in use %d", v.Type(), d.InUse())
	}
}

func TestReleaseReturnsAllBlocks(t *testing.T) {
	d := alloc.NewDynamic()
	v := NewWith(d)
	v.Field("int").SetInt(255)
	v.Field("float").SetFloat64(222.5)
	v.Field("double").SetFloat64(123456789.123)
	v.Field("string").SetString("hello!")
	v.Field("bytes").SetBytes([]byte{1, 2, 3})
	arr := v.Field("arr").Array()
	arr.Add(-5)
	arr.AddObject().Field("deep").SetString("x")
	arr.AddArray().Add("y")
	if d.InUse() == 0 {
		t.Fatal("nothing allocated")
	}
	v.Release()
	if d.InUse() != 0 || d.Blocks() != 0 {
		t.Errorf("in use %d blocks %d after Release", d.InUse(), d.Blocks())
	}
	if !v.IsNull() {
		t.Errorf("released value is %s", v.Type())
	}
}

func TestChildrenInheritAllocator(t *testing.T) {
	c := alloc.NewCircular(64)
	v := NewWith(c)
	item := v.Field("a").Array().Append()
	if item.Allocator() != alloc.Allocator(c) {
		t.Errorf("child allocator %T", item.Allocator())
	}
	item.SetString("abc")
	if c.Offset() == 0 {
		t.Errorf("child did not allocate from the ring")
	}
}

func TestCircularAliasing(t *testing.T) {
	c := alloc.NewCircular(8)
	a := NewWith(c)
	a.SetString("aaaaaa")
	b := NewWith(c)
	b.SetString("bbbb")
	if a.Str() != "bbbbaa" {
		t.Errorf("older value = %q, want it overwritten by the wrapped allocation", a.Str())
	}
}

func TestSetRaw(t *testing.T) {
	v := New()
	v.SetRaw(UnsignedType, []byte{0xff, 0x01})
	if v.Uint() != 255 {
		t.Errorf("got %d", v.Uint())
	}
	v.SetRaw(TrueType, []byte{1})
	if !v.Bool() || v.Payload() != nil {
		t.Errorf("true with payload %v", v.Payload())
	}
}

func TestSetRawContainer(t *testing.T) {
	v := New()
	v.Field("stale").SetInt(3)
	v.SetRaw(ObjectType, nil)
	if v.Object().Len() != 0 {
		t.Errorf("object len %d", v.Object().Len())
	}
	if diff := cmp.Diff(map[string]any{}, v.Interface()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	v.SetRaw(ArrayType, []byte{1, 2})
	if diff := cmp.Diff([]any{}, v.Interface()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := v.GetPath("[0]"); !errors.Is(err, ErrPath) {
		t.Errorf("got %v", err)
	}
}

func TestIterationOrder(t *testing.T) {
	v := New()
	for _, k := range []string{"z", "a", "m"} {
		v.Field(k).SetNull()
	}
	var names []string
	for p := range v.Object().All() {
		names = append(names, p.Name())
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, names); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	n := 0
	for it := v.Object().Begin(); it.Valid(); it.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("iterator visited %d", n)
	}
}
