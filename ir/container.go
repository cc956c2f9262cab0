package ir

import (
	"iter"

	"github.com/protoson/go-pson/alloc"
)

// Container is an append-only singly linked list of owned items. Appending
// walks to the tail, so building an n item container costs O(n^2); PSON
// documents are small and bounded, and a linked list needs no reallocation,
// which a Circular allocator cannot provide.
//
// Items are never removed and can only be visited front to back.
type Container[T any] struct {
	head  *listItem[T]
	n     int
	alloc alloc.Allocator
}

type listItem[T any] struct {
	item T
	next *listItem[T]
}

// Iterator visits the items of a Container in insertion order.
type Iterator[T any] struct {
	current *listItem[T]
}

func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

func (it *Iterator[T]) Next() bool {
	if it.current == nil {
		return false
	}
	it.current = it.current.next
	return true
}

func (it *Iterator[T]) Item() *T {
	return &it.current.item
}

func (c *Container[T]) Begin() Iterator[T] {
	return Iterator[T]{current: c.head}
}

// Len returns the number of items.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.n
}

// All returns an iterator over pointers to the items in insertion order.
func (c *Container[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if c == nil {
			return
		}
		for li := c.head; li != nil; li = li.next {
			if !yield(&li.item) {
				return
			}
		}
	}
}

// Each calls f on each item until f returns false.
func (c *Container[T]) Each(f func(*T) bool) {
	for item := range c.All() {
		if !f(item) {
			return
		}
	}
}

func (c *Container[T]) allocator() alloc.Allocator {
	if c.alloc == nil {
		c.alloc = alloc.Default()
	}
	return c.alloc
}

func (c *Container[T]) create() *T {
	li := &listItem[T]{}
	if c.head == nil {
		c.head = li
	} else {
		last := c.head
		for last.next != nil {
			last = last.next
		}
		last.next = li
	}
	c.n++
	return &li.item
}

func (c *Container[T]) clear() {
	c.head = nil
	c.n = 0
}
