// Package transcode converts binary PSON straight to JSON text.
//
// A Transcoder reads wire records and writes the matching JSON tokens
// through a stream.Encoder as it goes. No value tree is built and nothing
// is allocated per value beyond a reusable scratch buffer.
//
// The decoding rules are those of package wire (bounded varints, declared
// length accounting, skipping of unknown codes, nesting limit) and the
// rendering rules those of package encode, so for any valid document B
// without bytes values
//
//	Transcode(B) == encode(wire.Unmarshal(B))
//
// holds textually. Bytes values render as "" on both paths.
package transcode
