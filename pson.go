package pson

import (
	"bytes"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/frame"
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/parse"
	"github.com/protoson/go-pson/transcode"
	"github.com/protoson/go-pson/wire"
)

// Marshal returns the PSON encoding of v.
func Marshal(v *ir.Value) ([]byte, error) {
	return wire.Marshal(v)
}

// MarshalFramed returns the PSON encoding of v wrapped in a frame with
// compression c.
func MarshalFramed(v *ir.Value, c frame.Compression) ([]byte, error) {
	d, err := wire.Marshal(v)
	if err != nil {
		return nil, err
	}
	return frame.Wrap(d, c)
}

// Unmarshal decodes the single PSON record in data, framed or not, into v.
func Unmarshal(data []byte, v *ir.Value, opts ...wire.Option) error {
	data, err := unframe(data)
	if err != nil {
		return err
	}
	return wire.Unmarshal(data, v, opts...)
}

// MarshalAny converts x with ir.FromAny and encodes the result.
func MarshalAny(x any) ([]byte, error) {
	v := ir.New()
	defer v.Release()
	if err := ir.FromAny(v, x); err != nil {
		return nil, err
	}
	return wire.Marshal(v)
}

// UnmarshalAny decodes data into plain Go values, as (*ir.Value).Interface
// returns them.
func UnmarshalAny(data []byte) (any, error) {
	v := ir.New()
	defer v.Release()
	if err := Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// ToJSON renders v as JSON text.
func ToJSON(v *ir.Value, opts ...encode.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromJSON parses JSON text into a new value tree.
func FromJSON(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(d, opts...)
}

// JSONToPSON converts JSON text to PSON.
func JSONToPSON(d []byte, opts ...parse.ParseOption) ([]byte, error) {
	v, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	defer v.Release()
	return wire.Marshal(v)
}

// Transcode converts PSON, framed or not, to JSON text without building a
// value tree.
func Transcode(data []byte, opts ...transcode.Option) ([]byte, error) {
	data, err := unframe(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := transcode.Transcode(bytes.NewReader(data), &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unframe(data []byte) ([]byte, error) {
	if !frame.IsFramed(data) {
		return data, nil
	}
	body, _, err := frame.Unwrap(data)
	return body, err
}
