// Package pson reads and writes PSON, a compact self-describing binary
// format with JSON interoperability.
//
// The functions here are one-call entry points over the packages that do
// the work:
//
//	v, err := pson.FromJSON([]byte(`{"id":7,"tags":["a","b"]}`))
//	bin, err := pson.Marshal(v)
//	text, err := pson.Transcode(bin) // {"id":7,"tags":["a","b"]}
//
// Unmarshal and Transcode accept framed input (see package frame) as well
// as bare PSON.
//
// # Related Packages
//
//   - github.com/protoson/go-pson/ir - the value tree
//   - github.com/protoson/go-pson/wire - binary encoder and decoder
//   - github.com/protoson/go-pson/parse - JSON decoder
//   - github.com/protoson/go-pson/encode - JSON encoder
//   - github.com/protoson/go-pson/transcode - PSON to JSON without a tree
//   - github.com/protoson/go-pson/frame - compressed, digested envelope
package pson
