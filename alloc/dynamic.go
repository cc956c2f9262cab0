package alloc

import "github.com/protoson/go-pson/debug"

// Dynamic allocates from the Go heap. It keeps a count of the bytes and
// blocks handed out and not yet returned, which makes ownership leaks
// observable in tests.
type Dynamic struct {
	inUse  int
	blocks int
}

func NewDynamic() *Dynamic {
	return &Dynamic{}
}

func (d *Dynamic) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	d.inUse += size
	d.blocks++
	if debug.Alloc() {
		debug.Logf("dynamic: allocate %d (in use %d)\n", size, d.inUse)
	}
	return make([]byte, size)
}

func (d *Dynamic) Deallocate(block []byte) {
	if len(block) == 0 {
		return
	}
	d.inUse -= len(block)
	d.blocks--
	if debug.Alloc() {
		debug.Logf("dynamic: deallocate %d (in use %d)\n", len(block), d.inUse)
	}
}

// InUse returns the number of bytes allocated and not yet deallocated.
func (d *Dynamic) InUse() int { return d.inUse }

// Blocks returns the number of live blocks.
func (d *Dynamic) Blocks() int { return d.blocks }
