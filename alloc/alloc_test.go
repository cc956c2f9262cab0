package alloc

import (
	"bytes"
	"testing"
)

func TestDynamicAccounting(t *testing.T) {
	d := NewDynamic()
	a := d.Allocate(10)
	b := d.Allocate(3)
	if len(a) != 10 || len(b) != 3 {
		t.Fatalf("got block sizes %d %d", len(a), len(b))
	}
	if d.InUse() != 13 || d.Blocks() != 2 {
		t.Fatalf("in use %d blocks %d, want 13 2", d.InUse(), d.Blocks())
	}
	d.Deallocate(a)
	d.Deallocate(b)
	if d.InUse() != 0 || d.Blocks() != 0 {
		t.Errorf("in use %d blocks %d after release", d.InUse(), d.Blocks())
	}
	if d.Allocate(0) != nil {
		t.Errorf("zero sized allocation should be nil")
	}
	d.Deallocate(nil)
	if d.Blocks() != 0 {
		t.Errorf("nil deallocate changed accounting")
	}
}

func TestCircularWraps(t *testing.T) {
	c := NewCircular(8)
	a := c.Allocate(5)
	copy(a, "hello")
	if c.Offset() != 5 {
		t.Fatalf("offset %d, want 5", c.Offset())
	}
	// does not fit behind a: wraps and aliases it
	b := c.Allocate(4)
	if c.Wraps() != 1 {
		t.Fatalf("wraps %d, want 1", c.Wraps())
	}
	copy(b, "WXYZ")
	if !bytes.Equal(a, []byte("WXYZo")) {
		t.Errorf("older block = %q, want it overwritten", a)
	}
	if c.Offset() != 4 {
		t.Errorf("offset %d, want 4", c.Offset())
	}
}

func TestCircularBlocksDoNotGrowIntoNeighbours(t *testing.T) {
	c := NewCircular(16)
	a := c.Allocate(2)
	b := c.Allocate(2)
	copy(b, "bb")
	a = append(a, 'x')
	if b[0] != 'b' {
		t.Errorf("append on a block overwrote the next block")
	}
	_ = a
}

func TestCircularOversize(t *testing.T) {
	c := NewCircular(4)
	big := c.Allocate(10)
	if len(big) != 10 {
		t.Fatalf("len %d", len(big))
	}
	if c.Offset() != 0 || c.Wraps() != 0 {
		t.Errorf("oversize request touched the ring: off %d wraps %d", c.Offset(), c.Wraps())
	}
	c.Deallocate(big)
}

func TestCircularReset(t *testing.T) {
	c := NewCircular(4)
	c.Allocate(3)
	c.Reset()
	if c.Offset() != 0 {
		t.Errorf("offset %d after reset", c.Offset())
	}
	if c.Cap() != 4 {
		t.Errorf("cap %d", c.Cap())
	}
}

func TestDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	c := NewCircular(32)
	SetDefault(c)
	if Default() != Allocator(c) {
		t.Fatalf("SetDefault did not bind")
	}
	SetDefault(nil)
	if _, ok := Default().(*Dynamic); !ok {
		t.Errorf("SetDefault(nil) gave %T, want *Dynamic", Default())
	}
}
