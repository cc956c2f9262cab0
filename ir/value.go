package ir

import (
	"encoding/binary"
	"math"

	"github.com/protoson/go-pson/alloc"
)

// Value is a PSON tagged union. The zero Value is Null and uses the
// process default allocator.
//
// A Value exclusively owns its payload: scalar payload bytes come from its
// allocator and are returned to it when the value is reassigned or
// released; objects and arrays release their children recursively.
type Value struct {
	typ     Type
	payload []byte
	obj     *Object
	arr     *Array
	alloc   alloc.Allocator
}

var empty = &Value{typ: EmptyType}

// Empty returns the shared immutable placeholder returned by lookups of
// missing members. Setters called on it do nothing and coercions on it return
// detached containers.
func Empty() *Value {
	return empty
}

// New returns a Null value bound to the process default allocator.
func New() *Value {
	return &Value{alloc: alloc.Default()}
}

// NewWith returns a Null value bound to a. Every child created under it uses
// the same allocator.
func NewWith(a alloc.Allocator) *Value {
	return &Value{alloc: a}
}

func (v *Value) allocator() alloc.Allocator {
	if v.alloc == nil {
		v.alloc = alloc.Default()
	}
	return v.alloc
}

// Allocator returns the allocator backing v's payloads.
func (v *Value) Allocator() alloc.Allocator {
	return v.allocator()
}

func (v *Value) Type() Type {
	return v.typ
}

func (v *Value) IsNull() bool    { return v.typ == NullType }
func (v *Value) IsBool() bool    { return v.typ == TrueType || v.typ == FalseType }
func (v *Value) IsNumber() bool  { return v.typ.IsNumber() }
func (v *Value) IsString() bool  { return v.typ == StringType }
func (v *Value) IsBytes() bool   { return v.typ == BytesType }
func (v *Value) IsObject() bool  { return v.typ == ObjectType }
func (v *Value) IsArray() bool   { return v.typ == ArrayType }
func (v *Value) IsEmpty() bool   { return v.typ == EmptyType }
func (v *Value) immutable() bool { return v == empty }

// Release returns all payload blocks held by v, recursively, and resets v
// to Null.
func (v *Value) Release() {
	if v.immutable() {
		return
	}
	v.release()
	v.typ = NullType
}

func (v *Value) release() {
	switch v.typ {
	case ObjectType:
		if v.obj != nil {
			v.obj.release()
		}
	case ArrayType:
		if v.arr != nil {
			v.arr.release()
		}
	default:
		if v.payload != nil {
			v.allocator().Deallocate(v.payload)
		}
	}
	v.obj, v.arr, v.payload = nil, nil, nil
}

// setTag replaces v with a payload-free tag.
func (v *Value) setTag(t Type) {
	if v.immutable() {
		return
	}
	v.release()
	v.typ = t
}

// AllocPayload releases v's current contents, retags v as t and returns a
// fresh payload block of n bytes for the caller to fill.
func (v *Value) AllocPayload(t Type, n int) []byte {
	if v.immutable() {
		return make([]byte, n)
	}
	v.release()
	v.typ = t
	v.payload = v.allocator().Allocate(n)
	return v.payload
}

// Payload returns the raw payload block: the varint magnitude of integers,
// native-order float bits, or string and bytes contents.
func (v *Value) Payload() []byte {
	return v.payload
}

// SetRaw retags v as t and stores a copy of payload, which must already be
// in stored form (see Payload). Object and array types ignore payload and
// leave v an empty container.
func (v *Value) SetRaw(t Type, payload []byte) {
	switch {
	case t == ObjectType:
		v.SetNull()
		v.Object()
		return
	case t == ArrayType:
		v.SetNull()
		v.Array()
		return
	case !t.HasPayload():
		v.setTag(t)
		return
	}
	copy(v.AllocPayload(t, len(payload)), payload)
}

func (v *Value) SetNull() {
	v.setTag(NullType)
}

func (v *Value) SetBool(b bool) {
	if b {
		v.setTag(TrueType)
		return
	}
	v.setTag(FalseType)
}

func (v *Value) SetInt(i int64) {
	switch {
	case i == 0:
		v.setTag(ZeroType)
	case i == 1:
		v.setTag(OneType)
	case i < 0:
		v.setVarint(SignedType, uint64(-i))
	default:
		v.setVarint(UnsignedType, uint64(i))
	}
}

func (v *Value) SetUint(u uint64) {
	switch u {
	case 0:
		v.setTag(ZeroType)
	case 1:
		v.setTag(OneType)
	default:
		v.setVarint(UnsignedType, u)
	}
}

func (v *Value) setVarint(t Type, mag uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], mag)
	copy(v.AllocPayload(t, n), tmp[:n])
}

// SetFloat32 stores f, re-tagging integral values as integers.
func (v *Value) SetFloat32(f float32) {
	if i, ok := integral(float64(f)); ok {
		v.SetInt(i)
		return
	}
	binary.NativeEndian.PutUint32(v.AllocPayload(FloatType, 4), math.Float32bits(f))
}

// SetFloat64 stores d, re-tagging integral values as integers and demoting
// values within 1e-5 of their float32 rounding to Float.
func (v *Value) SetFloat64(d float64) {
	if i, ok := integral(d); ok {
		v.SetInt(i)
		return
	}
	if math.Abs(d-float64(float32(d))) <= floatTolerance {
		v.SetFloat32(float32(d))
		return
	}
	binary.NativeEndian.PutUint64(v.AllocPayload(DoubleType, 8), math.Float64bits(d))
}

func (v *Value) SetString(s string) {
	copy(v.AllocPayload(StringType, len(s)), s)
}

func (v *Value) SetBytes(b []byte) {
	copy(v.AllocPayload(BytesType, len(b)), b)
}

// Object returns v's object, first replacing v's contents with an empty
// object if v holds anything else.
func (v *Value) Object() *Object {
	if v.immutable() {
		return &Object{}
	}
	if v.typ != ObjectType || v.obj == nil {
		v.release()
		v.typ = ObjectType
		v.obj = &Object{}
		v.obj.alloc = v.allocator()
	}
	return v.obj
}

// Array returns v's array, first replacing v's contents with an empty array
// if v holds anything else.
func (v *Value) Array() *Array {
	if v.immutable() {
		return &Array{}
	}
	if v.typ != ArrayType || v.arr == nil {
		v.release()
		v.typ = ArrayType
		v.arr = &Array{}
		v.arr.alloc = v.allocator()
	}
	return v.arr
}

// Get looks up a member without allocating. Non-objects and misses yield the
// Empty sentinel.
func (v *Value) Get(name string) *Value {
	if v.typ != ObjectType {
		return Empty()
	}
	return v.obj.Get(name)
}

// Field looks up a member, coercing v to an object and creating the member
// when needed.
func (v *Value) Field(name string) *Value {
	return v.Object().Field(name)
}

func (v *Value) Bool() bool {
	switch v.typ {
	case TrueType, OneType:
		return true
	case SignedType, UnsignedType, FloatType, DoubleType:
		return v.Float64() != 0
	default:
		return false
	}
}

func (v *Value) Int() int64 {
	switch v.typ {
	case OneType, TrueType:
		return 1
	case UnsignedType:
		return int64(v.magnitude())
	case SignedType:
		return -int64(v.magnitude())
	case FloatType:
		return int64(v.float32())
	case DoubleType:
		return int64(v.float64())
	default:
		return 0
	}
}

func (v *Value) Uint() uint64 {
	switch v.typ {
	case OneType, TrueType:
		return 1
	case UnsignedType:
		return v.magnitude()
	case SignedType:
		return -v.magnitude()
	case FloatType:
		return uint64(v.float32())
	case DoubleType:
		return uint64(v.float64())
	default:
		return 0
	}
}

func (v *Value) Float64() float64 {
	switch v.typ {
	case OneType, TrueType:
		return 1
	case UnsignedType:
		return float64(v.magnitude())
	case SignedType:
		return -float64(v.magnitude())
	case FloatType:
		return float64(v.float32())
	case DoubleType:
		return v.float64()
	default:
		return 0
	}
}

func (v *Value) Float32() float32 {
	if v.typ == FloatType {
		return v.float32()
	}
	return float32(v.Float64())
}

// Str returns the string payload, or "" for any other kind.
func (v *Value) Str() string {
	if v.typ != StringType {
		return ""
	}
	return string(v.payload)
}

// Bytes returns the bytes payload without copying, or nil for any other
// kind.
func (v *Value) Bytes() []byte {
	if v.typ != BytesType {
		return nil
	}
	return v.payload
}

func (v *Value) magnitude() uint64 {
	m, n := binary.Uvarint(v.payload)
	if n <= 0 {
		return 0
	}
	return m
}

func (v *Value) float32() float32 {
	if len(v.payload) < 4 {
		return 0
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(v.payload))
}

func (v *Value) float64() float64 {
	if len(v.payload) < 8 {
		return 0
	}
	return math.Float64frombits(binary.NativeEndian.Uint64(v.payload))
}

// Magnitude returns the unsigned magnitude of an integer value; the sign is
// given by the type.
func (v *Value) Magnitude() uint64 {
	switch v.typ {
	case OneType:
		return 1
	case SignedType, UnsignedType:
		return v.magnitude()
	default:
		return 0
	}
}
