// Package encode encodes PSON value trees as JSON text.
//
// # Usage
//
//	v := ir.New()
//	v.Field("name").SetString("alice")
//	v.Field("age").SetInt(30)
//	err := encode.Encode(v, os.Stdout)
//
//	// Pretty print with colors
//	err := encode.Encode(v, os.Stdout, encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
// # Rendering
//
//   - Zero and One render as 0 and 1, Signed as -magnitude.
//   - Floats use the shortest text that reads back to the same float32 or
//     float64. NaN and infinities render as null.
//   - Bytes have no JSON form and render as "".
//   - Null and the Empty sentinel render as null.
//   - Object members keep insertion order.
//
// The output has no trailing newline.
//
// # Related Packages
//
//   - github.com/protoson/go-pson/ir - value trees
//   - github.com/protoson/go-pson/parse - JSON text to value trees
//   - github.com/protoson/go-pson/transcode - binary PSON to JSON without a tree
package encode
