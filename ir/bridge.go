package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
)

// Set assigns a Go scalar to v: nil, bool, any integer or float kind,
// string, []byte, or json.Number. Composite Go values go through FromAny.
func (v *Value) Set(x any) error {
	switch t := x.(type) {
	case nil:
		v.SetNull()
	case bool:
		v.SetBool(t)
	case int:
		v.SetInt(int64(t))
	case int8:
		v.SetInt(int64(t))
	case int16:
		v.SetInt(int64(t))
	case int32:
		v.SetInt(int64(t))
	case int64:
		v.SetInt(t)
	case uint:
		v.SetUint(uint64(t))
	case uint8:
		v.SetUint(uint64(t))
	case uint16:
		v.SetUint(uint64(t))
	case uint32:
		v.SetUint(uint64(t))
	case uint64:
		v.SetUint(t)
	case float32:
		v.SetFloat32(t)
	case float64:
		v.SetFloat64(t)
	case string:
		v.SetString(t)
	case []byte:
		v.SetBytes(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			v.SetInt(i)
			return nil
		}
		f, err := t.Float64()
		if err != nil {
			return fmt.Errorf("%w: number %q: %w", ErrUnsupported, t, err)
		}
		v.SetFloat64(f)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
	return nil
}

// FromAny replaces v with the tree described by x. Maps become objects with
// members in sorted key order; slices become arrays.
func FromAny(v *Value, x any) error {
	switch t := x.(type) {
	case map[string]any:
		v.SetNull()
		obj := v.Object()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if err := FromAny(obj.Field(k), t[k]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		return nil
	case []any:
		v.SetNull()
		arr := v.Array()
		for i, item := range t {
			if err := FromAny(arr.Append(), item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = val
		}
		return FromAny(v, m)
	default:
		return v.Set(x)
	}
}

// Interface converts v to plain Go values: objects to map[string]any,
// arrays to []any, integers to int64 (uint64 when too large), Float to
// float32, Double to float64, Bytes to []byte, Null and Empty to nil.
func (v *Value) Interface() any {
	switch v.typ {
	case TrueType:
		return true
	case FalseType:
		return false
	case ZeroType:
		return int64(0)
	case OneType:
		return int64(1)
	case UnsignedType:
		m := v.magnitude()
		if m > math.MaxInt64 {
			return m
		}
		return int64(m)
	case SignedType:
		m := v.magnitude()
		if m > 1<<63 {
			return -float64(m)
		}
		return -int64(m)
	case FloatType:
		return v.float32()
	case DoubleType:
		return v.float64()
	case StringType:
		return string(v.payload)
	case BytesType:
		return slices.Clone(v.payload)
	case ObjectType:
		res := make(map[string]any, v.obj.Len())
		for p := range v.obj.All() {
			name := string(p.name)
			if _, dup := res[name]; dup {
				continue
			}
			res[name] = p.value.Interface()
		}
		return res
	case ArrayType:
		res := make([]any, 0, v.arr.Len())
		for item := range v.arr.All() {
			res = append(res, item.Interface())
		}
		return res
	default:
		return nil
	}
}
