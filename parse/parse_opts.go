package parse

import "github.com/protoson/go-pson/alloc"

// DefaultMaxDepth bounds object and array nesting when no ParseMaxDepth
// option is given.
const DefaultMaxDepth = 1024

type parseOpts struct {
	alloc    alloc.Allocator
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseAllocator binds the root value created by Parse to a. It has no
// effect on ParseInto, where the target already carries an allocator.
func ParseAllocator(a alloc.Allocator) ParseOption {
	return func(o *parseOpts) { o.alloc = a }
}

// ParseMaxDepth bounds object and array nesting. n <= 0 means
// DefaultMaxDepth.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func makeOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	if pOpts.alloc == nil {
		pOpts.alloc = alloc.Default()
	}
	return pOpts
}
