package alloc

import "github.com/protoson/go-pson/debug"

// Circular is a bump allocator over a fixed buffer. When a request does not
// fit between the current offset and the end of the buffer, the offset wraps
// to 0 and the request is served from the start, overwriting whatever older
// blocks lived there. Deallocate is a no-op.
//
// A request larger than the whole buffer can never fit the ring; it is served
// from the heap so that Allocate keeps its never-fail contract.
type Circular struct {
	buf   []byte
	off   int
	wraps int
}

func NewCircular(capacity int) *Circular {
	return &Circular{buf: make([]byte, capacity)}
}

func (c *Circular) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	if size > len(c.buf) {
		if debug.Alloc() {
			debug.Logf("circular: %d exceeds capacity %d, using heap\n", size, len(c.buf))
		}
		return make([]byte, size)
	}
	if c.off+size > len(c.buf) {
		c.off = 0
		c.wraps++
		if debug.Alloc() {
			debug.Logf("circular: wrapped (%d)\n", c.wraps)
		}
	}
	block := c.buf[c.off : c.off+size : c.off+size]
	c.off += size
	return block
}

func (c *Circular) Deallocate([]byte) {}

// Cap returns the ring capacity in bytes.
func (c *Circular) Cap() int { return len(c.buf) }

// Offset returns the offset of the next allocation.
func (c *Circular) Offset() int { return c.off }

// Wraps returns how many times the ring wrapped to offset 0.
func (c *Circular) Wraps() int { return c.wraps }

// Reset rewinds the ring. Every block handed out so far becomes invalid.
func (c *Circular) Reset() {
	c.off = 0
}
