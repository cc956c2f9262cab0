// Package stream provides a streaming JSON token writer.
//
// The Encoder writes JSON one structural event at a time, keeping an
// explicit stack of open containers. Separators are inserted from that
// stack, and sequences which do not form a single JSON value are rejected
// with an *Error before anything is written for them.
//
// It is used by the transcoder, which renders binary PSON as JSON without
// building a value tree.
//
// # Example
//
//	enc := stream.NewEncoder(w)
//	enc.BeginObject()
//	enc.WriteKey([]byte("name"))
//	enc.WriteString([]byte("value"))
//	enc.WriteKey([]byte("n"))
//	enc.WriteRaw([]byte("42"))
//	enc.EndObject()
//	enc.Flush()
//
// Scalars other than strings, booleans and null are written with WriteRaw
// from text rendered by the caller, for instance with token.AppendFloat.
package stream
