// Copyright (c) 2025 Visvasity LLC

package regs

import (
	"fmt"
	"iter"
	"unsafe"
)

// Array is a handle to a fixed-length contiguous run of register-map
// elements. The element constructor decides what indexing yields: a
// register handle for scalar arrays, a map accessor for arrays of
// nested maps, or another Array for multidimensional arrays.
//
// Indexing and iteration are pure address arithmetic; no element is
// copied and no memory is touched until a register handle is read or
// written.
type Array[E any] struct {
	base   unsafe.Pointer
	stride uintptr
	n      int
	elem   func(unsafe.Pointer) E
}

// NewArray returns an array handle over n elements of the given stride
// starting at base. It is called by generated accessor methods; base
// must point at a live, properly aligned region of at least n*stride
// bytes.
func NewArray[E any](base unsafe.Pointer, stride uintptr, n int, elem func(unsafe.Pointer) E) Array[E] {
	return Array[E]{base: base, stride: stride, n: n, elem: elem}
}

// Len returns the number of elements.
func (a Array[E]) Len() int { return a.n }

// Addr returns the address of the first element.
func (a Array[E]) Addr() uintptr { return uintptr(a.base) }

// At returns the element handle at index i.
//
// At panics if i is out of range.
func (a Array[E]) At(i int) E {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("array index %d is out of range [0:%d]", i, a.n))
	}
	return a.AtUnchecked(i)
}

// AtUnchecked returns the element handle at index i without a bounds
// check. The caller must guarantee 0 <= i < Len.
func (a Array[E]) AtUnchecked(i int) E {
	return a.elem(unsafe.Add(a.base, uintptr(i)*a.stride))
}

// Iter returns a fresh double-ended iterator over all elements.
func (a Array[E]) Iter() *Iter[E] {
	return &Iter[E]{base: a.base, stride: a.stride, tail: a.n, elem: a.elem}
}

// IterSlice returns a double-ended iterator over indexes [start, end).
//
// IterSlice panics if the range is out of bounds. start == end yields
// an empty, immediately exhausted iterator.
func (a Array[E]) IterSlice(start, end int) *Iter[E] {
	if start < 0 || start > end || end > a.n {
		panic(fmt.Sprintf("slice bounds [%d:%d] are out of range [0:%d]", start, end, a.n))
	}
	return &Iter[E]{base: a.base, stride: a.stride, head: start, tail: end, elem: a.elem}
}

// All returns an index/element sequence over the array in index order.
func (a Array[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.AtUnchecked(i)) {
				return
			}
		}
	}
}

// Backward returns an index/element sequence over the array in reverse
// index order.
func (a Array[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := a.n - 1; i >= 0; i-- {
			if !yield(i, a.AtUnchecked(i)) {
				return
			}
		}
	}
}
