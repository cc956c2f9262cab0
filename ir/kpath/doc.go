// Package kpath parses and prints paths into a PSON value tree.
//
// A path is a sequence of segments:
//   - name or "quoted name" - object member access (".name" after the first segment)
//   - [index] - array item access
//
// # Usage
//
//	kp, err := kpath.Parse(`users[0]."display name"`)
//	fmt.Println(kp) // users[0]."display name"
//
// Names that are empty or contain `.`, `[`, `"`, whitespace or control
// characters must be quoted, using JSON string syntax.
//
// # Related Packages
//
//   - github.com/protoson/go-pson/ir - value tree navigated by (*ir.Value).GetPath
package kpath
