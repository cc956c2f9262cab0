// Package parse parses JSON text into PSON value trees.
//
// # Usage
//
//	v, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse into an existing value, bound to its own allocator
//	v := ir.NewWith(alloc.NewCircular(4096))
//	err := parse.ParseInto(data, v)
//
// The parser is a recursive descent parser with one token of lookahead.
// Numbers are canonicalized as they are stored (see package ir): 0 and 1
// become the Zero and One tags, integral floats become integers. When an
// object repeats a key, the later value replaces the earlier one in the
// earlier member's position.
//
// Errors are *Error values carrying the offending token, what was expected
// and the position.
//
// # Related Packages
//
//   - github.com/protoson/go-pson/ir - value trees
//   - github.com/protoson/go-pson/encode - value trees to JSON text
//   - github.com/protoson/go-pson/token - lexing
package parse
