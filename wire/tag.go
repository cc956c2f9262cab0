package wire

import (
	"encoding/binary"

	"github.com/protoson/go-pson/ir"
)

// WireType is the payload shape carried in the low 3 bits of a tag.
type WireType uint8

const (
	Varint          WireType = 0
	Fixed64         WireType = 1
	LengthDelimited WireType = 2
	Fixed32         WireType = 5
)

func (w WireType) String() string {
	switch w {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case LengthDelimited:
		return "length-delimited"
	case Fixed32:
		return "fixed32"
	default:
		return "undefined"
	}
}

// Valid reports whether w is one of the defined wire types.
func (w WireType) Valid() bool {
	switch w {
	case Varint, Fixed64, LengthDelimited, Fixed32:
		return true
	}
	return false
}

// Code is the value kind carried in the upper bits of a tag.
type Code uint8

const (
	CodeString   Code = 1
	CodeUnsigned Code = 2
	CodeSigned   Code = 3
	CodeObject   Code = 4
	CodeArray    Code = 5
	CodeFloat    Code = 6
	CodeDouble   Code = 7
	CodeTrue     Code = 8
	CodeFalse    Code = 9
	CodeZero     Code = 10
	CodeOne      Code = 11
	CodeNull     Code = 12
	CodeBytes    Code = 13
)

var codeTypes = map[Code]ir.Type{
	CodeString:   ir.StringType,
	CodeUnsigned: ir.UnsignedType,
	CodeSigned:   ir.SignedType,
	CodeObject:   ir.ObjectType,
	CodeArray:    ir.ArrayType,
	CodeFloat:    ir.FloatType,
	CodeDouble:   ir.DoubleType,
	CodeTrue:     ir.TrueType,
	CodeFalse:    ir.FalseType,
	CodeZero:     ir.ZeroType,
	CodeOne:      ir.OneType,
	CodeNull:     ir.NullType,
	CodeBytes:    ir.BytesType,
}

var typeCodes = func() map[ir.Type]Code {
	m := make(map[ir.Type]Code, len(codeTypes))
	for c, t := range codeTypes {
		m[t] = c
	}
	m[ir.EmptyType] = CodeNull
	return m
}()

// CodeOf returns the code used to encode values of type t. Empty encodes as
// null.
func CodeOf(t ir.Type) Code {
	return typeCodes[t]
}

// Type returns the value type of c and whether c is a known code.
func (c Code) Type() (ir.Type, bool) {
	t, ok := codeTypes[c]
	return t, ok
}

func (c Code) String() string {
	if t, ok := codeTypes[c]; ok {
		return t.String()
	}
	return "reserved"
}

// WireType returns the wire type records of code c are written with.
func (c Code) WireType() WireType {
	switch c {
	case CodeString, CodeObject, CodeArray, CodeBytes:
		return LengthDelimited
	case CodeFloat:
		return Fixed32
	case CodeDouble:
		return Fixed64
	default:
		return Varint
	}
}

// Tag packs a code and a wire type.
func Tag(c Code, w WireType) uint32 {
	return uint32(c)<<3 | uint32(w)
}

// SplitTag is the inverse of Tag.
func SplitTag(tag uint32) (Code, WireType) {
	return Code(tag >> 3), WireType(tag & 7)
}

// AppendVarint appends the base-128 encoding of x to b.
func AppendVarint(b []byte, x uint64) []byte {
	return binary.AppendUvarint(b, x)
}

// VarintLen returns the encoded size of x.
func VarintLen(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}
