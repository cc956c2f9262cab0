// Package wire implements the PSON binary encoding.
//
// # Format
//
// A document is a single record. A record is a varint tag followed by an
// optional payload:
//
//	record = varint(code<<3 | wiretype) [payload]
//
// The code names the value kind (see Code) and the wire type gives the
// payload shape:
//
//   - Varint: a base-128 varint. Integers store their magnitude; the sign is
//     the code (CodeSigned or CodeUnsigned), there is no zig-zag step.
//   - Fixed32, Fixed64: 4 or 8 raw float bytes in native byte order.
//   - LengthDelimited: varint(n) followed by n bytes. Strings and bytes carry
//     their contents; objects carry a sequence of (varint name length, name,
//     record) members and arrays a sequence of records.
//
// Null, true, false, zero and one are tags with no payload at all.
//
// The length of an object or array body is learned by encoding it once into
// a counting sink before it is written for real.
//
// # Decoding untrusted input
//
// The Decoder never panics on malformed input. Varints are bounded by their
// bit width, lengths are checked against the enclosing record before any
// allocation, and nesting depth is bounded (see WithMaxDepth). On failure
// Decode returns an error and leaves whatever part of the tree it built in
// place.
package wire
