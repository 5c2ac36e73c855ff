// Copyright (c) 2025 Visvasity LLC

package regs

import "unsafe"

// mem is the address shared by all register handles. Handles are
// stateless beyond it: two handles are the same register exactly when
// their addresses are equal.
type mem[T Scalar] struct {
	p unsafe.Pointer
}

// Addr returns the register's address.
func (m mem[T]) Addr() uintptr { return uintptr(m.p) }

func (m mem[T]) read() T {
	v := volatileLoad[T](m.p)
	if traceEnabled() {
		tracef(traceOpRead, uintptr(m.p), v)
	}
	return v
}

func (m mem[T]) write(v T) {
	volatileStore(m.p, v)
	if traceEnabled() {
		tracef(traceOpWrite, uintptr(m.p), v)
	}
}

// RO is a handle to a read-only register. It has no Write method, so a
// write through it is a compile error, not a runtime check.
type RO[T Scalar] struct {
	mem[T]
}

// Read performs one volatile load.
func (r RO[T]) Read() T { return r.read() }

// WO is a handle to a write-only register. It has no Read method.
type WO[T Scalar] struct {
	mem[T]
}

// Write performs one volatile store.
func (w WO[T]) Write(v T) { w.write(v) }

// RW is a handle to a read-write register.
type RW[T Scalar] struct {
	mem[T]
}

// Read performs one volatile load.
func (r RW[T]) Read() T { return r.read() }

// Write performs one volatile store.
func (r RW[T]) Write(v T) { r.write(v) }

// ReadOnly returns a read-only handle bound to p. It is called by
// generated accessor methods; p must be the properly aligned address of
// a live T.
func ReadOnly[T Scalar](p unsafe.Pointer) RO[T] { return RO[T]{mem[T]{p}} }

// WriteOnly returns a write-only handle bound to p. It is called by
// generated accessor methods; p must be the properly aligned address of
// a live T.
func WriteOnly[T Scalar](p unsafe.Pointer) WO[T] { return WO[T]{mem[T]{p}} }

// ReadWrite returns a read-write handle bound to p. It is called by
// generated accessor methods; p must be the properly aligned address of
// a live T.
func ReadWrite[T Scalar](p unsafe.Pointer) RW[T] { return RW[T]{mem[T]{p}} }
