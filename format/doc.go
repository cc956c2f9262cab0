// Package format names the document formats the pson command reads and
// writes, and detects which of PSON or JSON a byte slice holds.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	name := "out" + f.Suffix()
//
//	switch format.Detect(data) {
//	case format.PSONFormat:
//		...
//	}
//
// # Related Packages
//
//   - github.com/protoson/go-pson/frame - framed PSON, always detected as PSON
//   - github.com/protoson/go-pson/parse - JSON text to value trees
package format
