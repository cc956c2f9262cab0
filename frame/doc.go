// Package frame wraps PSON bytes in a self-checking storage envelope.
//
// A frame is
//
//	"PSF1" | compression (1 byte) | BLAKE3-256 of the body (32 bytes) |
//	varint body length | stored body
//
// where the stored body is the PSON bytes, possibly compressed with LZ4
// (block mode) or zstd. Length and digest always describe the uncompressed
// body, so the digest of a document does not depend on how it was stored.
package frame
