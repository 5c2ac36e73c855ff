// Copyright (c) 2025 Visvasity LLC

package regs

import (
	"math"
	"testing"
	"unsafe"
)

func testRoundTrip[T Scalar](t *testing.T, vals ...T) {
	t.Helper()
	var backing T
	r := ReadWrite[T](unsafe.Pointer(&backing))
	for _, v := range vals {
		r.Write(v)
		if got := r.Read(); got != v {
			t.Errorf("round trip: wrote %v, read %v", v, got)
		}
		if backing != v {
			t.Errorf("round trip: wrote %v, backing holds %v", v, backing)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	testRoundTrip[uint8](t, 0, 1, math.MaxUint8)
	testRoundTrip[uint16](t, 0, 0xa5a5, math.MaxUint16)
	testRoundTrip[uint32](t, 0, 0xdeadbeef, math.MaxUint32)
	testRoundTrip[uint64](t, 0, 1<<63, math.MaxUint64)
	testRoundTrip[int8](t, math.MinInt8, -1, 0, math.MaxInt8)
	testRoundTrip[int16](t, math.MinInt16, -1, 0, math.MaxInt16)
	testRoundTrip[int32](t, math.MinInt32, -1, 0, math.MaxInt32)
	testRoundTrip[int64](t, math.MinInt64, -1, 0, math.MaxInt64)
}

func TestNamedScalarType(t *testing.T) {
	type pinState uint32
	var backing pinState
	r := ReadWrite[pinState](unsafe.Pointer(&backing))
	r.Write(7)
	if got := r.Read(); got != 7 {
		t.Errorf("named scalar round trip: want 7, got %v", got)
	}
}

func TestReadOnly(t *testing.T) {
	backing := uint32(0x1234)
	r := ReadOnly[uint32](unsafe.Pointer(&backing))
	if got := r.Read(); got != 0x1234 {
		t.Errorf("Read: want 0x1234, got %#x", got)
	}
}

func TestWriteOnly(t *testing.T) {
	var backing int16
	w := WriteOnly[int16](unsafe.Pointer(&backing))
	w.Write(-76)
	if backing != -76 {
		t.Errorf("Write: backing holds %d, want -76", backing)
	}
}

func TestAddr(t *testing.T) {
	var backing uint64
	p := unsafe.Pointer(&backing)
	if got := ReadWrite[uint64](p).Addr(); got != uintptr(p) {
		t.Errorf("Addr: want %#x, got %#x", uintptr(p), got)
	}

	// Handle identity is the address: two handles over the same
	// register compare equal.
	if ReadWrite[uint64](p) != ReadWrite[uint64](p) {
		t.Error("handles bound to the same address must be equal")
	}
}
