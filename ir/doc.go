// Package ir provides the in-memory value tree for PSON documents.
//
// # Overview
//
// A Value is a tagged union over the PSON kinds: null, true, false, zero,
// one, signed and unsigned integers, 32 and 64 bit floats, strings, bytes,
// objects and arrays. The wire codec, the JSON decoder and the JSON encoder
// all operate on Value trees.
//
// Scalar payloads are stored in the form the wire format carries them:
// integers as a base-128 varint of their magnitude (the sign is the tag),
// floats as raw native-order bits, strings and bytes verbatim. Every payload
// block comes from an alloc.Allocator.
//
// # Canonical numbers
//
// Numeric assignment is canonicalizing and the coercions are not
// reversible:
//
//   - 0 and 1 are stored as the payload-free Zero and One tags;
//   - a float equal to its integer truncation is stored as an integer;
//   - a double within 1e-5 of its float32 rounding is stored as a Float.
//
// Peer implementations apply the same rules, so encoded output is
// bit-identical.
//
// # Objects and Arrays
//
// Objects and arrays are append-only singly linked lists (Container). Object
// lookup is linear and the first member with a matching name wins.
//
//	v := ir.New()
//	v.Field("name").SetString("probe")
//	v.Field("temp").SetFloat64(21.5)
//	arr := v.Field("readings").Array()
//	arr.Add(3)
//	arr.Add(-7)
//
// Get never allocates. A miss, or a lookup on a non-object, returns the
// shared Empty sentinel, on which setters are no-ops:
//
//	v.Get("missing").Get("deeper").IsEmpty() // true
//
// Field is write-through and creates the member on a miss.
//
// # Ownership
//
// Ownership is strictly tree-shaped. Reassigning a value releases its
// previous payload, and Release returns every block of a subtree to its
// allocator. Children inherit the allocator of their parent.
//
// # Thread Safety
//
// Values are not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/protoson/go-pson/wire - binary encoding of value trees
//   - github.com/protoson/go-pson/parse - JSON text to value trees
//   - github.com/protoson/go-pson/encode - value trees to JSON text
//   - github.com/protoson/go-pson/ir/kpath - path syntax used by GetPath
package ir
