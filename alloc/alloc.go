// Package alloc provides the memory allocation capability used by PSON value
// payloads.
//
// Every payload byte held by an ir.Value (varint magnitudes, float bits,
// string and bytes contents, object member names) comes from an Allocator.
// Two variants are provided:
//
//   - Dynamic: the general Go heap, with accounting of outstanding blocks.
//   - Circular: a bump allocator over one fixed buffer which wraps to offset
//     0 when exhausted and never frees individual blocks.
//
// # Circular aliasing
//
// Once a Circular allocator wraps, new allocations overwrite memory that may
// still be referenced by older values which were never released. This is the
// intended policy for short-lived, small documents on devices without a heap:
// build a document, encode it, drop it. Values that must outlive a wrap have
// to be built on a Dynamic allocator.
//
// # Process default
//
// Values constructed without an explicit allocator use Default(). Bind the
// process-wide allocator with SetDefault once, before any value is
// constructed. The binding is not synchronized.
package alloc

// Allocator hands out and takes back payload blocks.
type Allocator interface {
	// Allocate returns a block of exactly size bytes. It never fails.
	Allocate(size int) []byte
	// Deallocate returns a block obtained from Allocate.
	Deallocate(block []byte)
}

var theDefault Allocator = NewDynamic()

// Default returns the process-wide allocator.
func Default() Allocator {
	return theDefault
}

// SetDefault binds the process-wide allocator. It must be called before any
// value using the default is constructed and must not be called concurrently
// with anything else.
func SetDefault(a Allocator) {
	if a == nil {
		a = NewDynamic()
	}
	theDefault = a
}
