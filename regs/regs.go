// Copyright (c) 2025 Visvasity LLC

// Package regs is the runtime support package for accessors generated
// by regmapgen. It provides permission-typed register handles, array
// handles and iterators over register arrays.
//
// All reads and writes are volatile in the sense that each call
// performs exactly one load or store at the handle's address; nothing
// is cached, coalesced or elided. Volatile does not mean atomic: the
// handles carry no cross-goroutine ordering guarantee and are not safe
// for concurrent use over the same address unless the caller can prove
// the accesses are safe on their platform.
//
// Handles are non-owning views. A handle derived from a Go value keeps
// that value reachable for the garbage collector, but a handle built
// from a raw address has no such protection: the caller must keep the
// region valid for the handle's entire usage window. Use after the
// region is gone is a caller error this package cannot detect.
package regs

// Scalar is the set of integer types that can live in a register.
// The pointer-sized types int, uint and uintptr are deliberately not
// included: a register's width must not change with the platform.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
