// Copyright (c) 2025 Visvasity LLC

package regs

import "unsafe"

// Go has no volatile qualifier. The width-specific load and store
// primitives below are marked go:noinline so that every register access
// compiles to a real call around a real memory operation, which the
// compiler cannot elide, duplicate or reorder across other calls. This
// is the same arrangement hardware-access code in the wild uses for
// memory-mapped IO.

//go:noinline
//go:nosplit
func load8(p unsafe.Pointer) uint8 { return *(*uint8)(p) }

//go:noinline
//go:nosplit
func load16(p unsafe.Pointer) uint16 { return *(*uint16)(p) }

//go:noinline
//go:nosplit
func load32(p unsafe.Pointer) uint32 { return *(*uint32)(p) }

//go:noinline
//go:nosplit
func load64(p unsafe.Pointer) uint64 { return *(*uint64)(p) }

//go:noinline
//go:nosplit
func store8(p unsafe.Pointer, v uint8) { *(*uint8)(p) = v }

//go:noinline
//go:nosplit
func store16(p unsafe.Pointer, v uint16) { *(*uint16)(p) = v }

//go:noinline
//go:nosplit
func store32(p unsafe.Pointer, v uint32) { *(*uint32)(p) = v }

//go:noinline
//go:nosplit
func store64(p unsafe.Pointer, v uint64) { *(*uint64)(p) = v }

func volatileLoad[T Scalar](p unsafe.Pointer) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		v = T(load8(p))
	case 2:
		v = T(load16(p))
	case 4:
		v = T(load32(p))
	default:
		v = T(load64(p))
	}
	return v
}

func volatileStore[T Scalar](p unsafe.Pointer, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		store8(p, uint8(v))
	case 2:
		store16(p, uint16(v))
	case 4:
		store32(p, uint32(v))
	default:
		store64(p, uint64(v))
	}
}
