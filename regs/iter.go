// Copyright (c) 2025 Visvasity LLC

package regs

import (
	"fmt"
	"unsafe"
)

// Iter is a double-ended cursor over a window of array elements. It
// yields element handles without copying anything; advancing is index
// arithmetic only.
//
// The iterator is fused: once the two ends meet, every further advance
// reports exhaustion. Len always reports the exact number of elements
// remaining between the two ends.
type Iter[E any] struct {
	base   unsafe.Pointer
	stride uintptr
	head   int // next index yielded from the front
	tail   int // one past the next index yielded from the back
	elem   func(unsafe.Pointer) E
}

// Len returns the exact number of elements remaining.
func (it *Iter[E]) Len() int { return it.tail - it.head }

// Next yields the element at the front of the window and moves the
// front forward. It reports false once the iterator is exhausted, and
// keeps reporting false on every later call.
func (it *Iter[E]) Next() (E, bool) {
	if it.head >= it.tail {
		var zero E
		return zero, false
	}
	e := it.elem(unsafe.Add(it.base, uintptr(it.head)*it.stride))
	it.head++
	return e, true
}

// NextBack yields the element at the back of the window and moves the
// back backward. Front and back consumption may be freely mixed; the
// two ends never yield the same element twice.
func (it *Iter[E]) NextBack() (E, bool) {
	if it.head >= it.tail {
		var zero E
		return zero, false
	}
	it.tail--
	return it.elem(unsafe.Add(it.base, uintptr(it.tail)*it.stride)), true
}

// Nth skips n elements from the front in one step and yields the next
// one. Skipping past the back empties the iterator and reports false
// rather than failing.
func (it *Iter[E]) Nth(n int) (E, bool) {
	if n < 0 {
		panic(fmt.Sprintf("negative iterator skip %d", n))
	}
	if n >= it.Len() {
		it.head = it.tail
		var zero E
		return zero, false
	}
	it.head += n
	return it.Next()
}

// NthBack skips n elements from the back in one step and yields the
// next one from the back. Skipping past the front empties the iterator
// and reports false rather than failing.
func (it *Iter[E]) NthBack(n int) (E, bool) {
	if n < 0 {
		panic(fmt.Sprintf("negative iterator skip %d", n))
	}
	if n >= it.Len() {
		it.tail = it.head
		var zero E
		return zero, false
	}
	it.tail -= n
	return it.NextBack()
}

// Clone returns an independent cursor over the same remaining window.
// Advancing one does not move the other.
func (it *Iter[E]) Clone() *Iter[E] {
	c := *it
	return &c
}
