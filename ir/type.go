package ir

import "fmt"

// Type is the discriminant of a Value.
type Type int

const (
	NullType Type = iota
	TrueType
	FalseType
	ZeroType
	OneType
	SignedType
	UnsignedType
	FloatType
	DoubleType
	StringType
	BytesType
	ObjectType
	ArrayType
	// EmptyType marks an unset placeholder, such as the sentinel returned
	// for a missing object member.
	EmptyType
)

var typeNames = map[Type]string{
	NullType:     "Null",
	TrueType:     "True",
	FalseType:    "False",
	ZeroType:     "Zero",
	OneType:      "One",
	SignedType:   "Signed",
	UnsignedType: "Unsigned",
	FloatType:    "Float",
	DoubleType:   "Double",
	StringType:   "String",
	BytesType:    "Bytes",
	ObjectType:   "Object",
	ArrayType:    "Array",
	EmptyType:    "Empty",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		TrueType,
		FalseType,
		ZeroType,
		OneType,
		SignedType,
		UnsignedType,
		FloatType,
		DoubleType,
		StringType,
		BytesType,
		ObjectType,
		ArrayType,
		EmptyType,
	}
}

// IsLeaf reports whether values of type t have no children.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// HasPayload reports whether values of type t own payload bytes.
func (t Type) HasPayload() bool {
	switch t {
	case SignedType, UnsignedType, FloatType, DoubleType, StringType, BytesType:
		return true
	default:
		return false
	}
}

// IsNumber reports whether t is one of the numeric tags.
func (t Type) IsNumber() bool {
	switch t {
	case ZeroType, OneType, SignedType, UnsignedType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}
