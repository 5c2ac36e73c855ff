// Copyright (c) 2025 Visvasity LLC

package regs

import (
	"testing"
	"unsafe"
)

func newIterArray(t *testing.T) (Array[RW[uint32]], *[10]uint32) {
	t.Helper()
	backing := new([10]uint32)
	for i := range backing {
		backing[i] = uint32(i)
	}
	a := NewArray(unsafe.Pointer(backing), unsafe.Sizeof(backing[0]), len(backing), ReadWrite[uint32])
	return a, backing
}

func TestIterForward(t *testing.T) {
	a, _ := newIterArray(t)
	it := a.Iter()
	for want := 0; want < 10; want++ {
		if it.Len() != 10-want {
			t.Errorf("Len before element %d: want %d, got %d", want, 10-want, it.Len())
		}
		r, ok := it.Next()
		if !ok {
			t.Fatalf("Next: stopped early at element %d", want)
		}
		if got := r.Read(); got != uint32(want) {
			t.Errorf("Next: want %d, got %d", want, got)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("Next: expected exhaustion after 10 elements")
	}
}

func TestIterBackward(t *testing.T) {
	a, _ := newIterArray(t)
	it := a.Iter()
	for want := 9; want >= 0; want-- {
		r, ok := it.NextBack()
		if !ok {
			t.Fatalf("NextBack: stopped early at element %d", want)
		}
		if got := r.Read(); got != uint32(want) {
			t.Errorf("NextBack: want %d, got %d", want, got)
		}
	}
	if _, ok := it.NextBack(); ok {
		t.Error("NextBack: expected exhaustion after 10 elements")
	}
}

func TestIterMixedEnds(t *testing.T) {
	a, _ := newIterArray(t)
	it := a.Iter()
	front := []uint32{0, 1}
	back := []uint32{9, 8}
	for _, want := range front {
		r, _ := it.Next()
		if got := r.Read(); got != want {
			t.Errorf("Next: want %d, got %d", want, got)
		}
	}
	for _, want := range back {
		r, _ := it.NextBack()
		if got := r.Read(); got != want {
			t.Errorf("NextBack: want %d, got %d", want, got)
		}
	}
	if it.Len() != 6 {
		t.Errorf("Len after 2+2 draws: want 6, got %d", it.Len())
	}
	// The two ends meet in the middle without overlap.
	seen := 0
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		if got := r.Read(); got != uint32(2+seen) {
			t.Errorf("middle element %d: want %d, got %d", seen, 2+seen, got)
		}
		seen++
	}
	if seen != 6 {
		t.Errorf("middle run: visited %d elements, want 6", seen)
	}
}

func TestIterFused(t *testing.T) {
	a, _ := newIterArray(t)
	it := a.IterSlice(4, 4)
	if it.Len() != 0 {
		t.Errorf("empty slice Len: want 0, got %d", it.Len())
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("Next on an exhausted iterator must keep returning false")
		}
		if _, ok := it.NextBack(); ok {
			t.Fatal("NextBack on an exhausted iterator must keep returning false")
		}
	}
}

func TestIterNth(t *testing.T) {
	a, _ := newIterArray(t)

	it := a.Iter()
	r, ok := it.Nth(3)
	if !ok {
		t.Fatal("Nth(3): want ok")
	}
	if got := r.Read(); got != 3 {
		t.Errorf("Nth(3): want 3, got %d", got)
	}
	if r, _ := it.Next(); r.Read() != 4 {
		t.Errorf("Next after Nth(3): want 4, got %d", r.Read())
	}

	// Overshoot empties the iterator instead of wrapping.
	if _, ok := it.Nth(100); ok {
		t.Error("Nth(100): want exhaustion")
	}
	if it.Len() != 0 {
		t.Errorf("Len after overshooting Nth: want 0, got %d", it.Len())
	}
	mustPanic(t, "Nth(-1)", func() { it.Nth(-1) })
}

func TestIterNthBack(t *testing.T) {
	a, _ := newIterArray(t)

	it := a.Iter()
	r, ok := it.NthBack(2)
	if !ok {
		t.Fatal("NthBack(2): want ok")
	}
	if got := r.Read(); got != 7 {
		t.Errorf("NthBack(2): want 7, got %d", got)
	}
	if r, _ := it.NextBack(); r.Read() != 6 {
		t.Errorf("NextBack after NthBack(2): want 6, got %d", r.Read())
	}

	if _, ok := it.NthBack(100); ok {
		t.Error("NthBack(100): want exhaustion")
	}
	if it.Len() != 0 {
		t.Errorf("Len after overshooting NthBack: want 0, got %d", it.Len())
	}
	mustPanic(t, "NthBack(-1)", func() { it.NthBack(-1) })
}

func TestIterClone(t *testing.T) {
	a, _ := newIterArray(t)
	it := a.Iter()
	it.Next()
	it.Next()

	clone := it.Clone()
	if clone.Len() != it.Len() {
		t.Fatalf("Clone Len: want %d, got %d", it.Len(), clone.Len())
	}

	// Advancing the clone leaves the original untouched.
	clone.Next()
	if it.Len() != 8 || clone.Len() != 7 {
		t.Errorf("after advancing clone: original Len %d (want 8), clone Len %d (want 7)", it.Len(), clone.Len())
	}
	r, _ := it.Next()
	if got := r.Read(); got != 2 {
		t.Errorf("original after clone advanced: want 2, got %d", got)
	}
}

func TestIterSlice(t *testing.T) {
	a, backing := newIterArray(t)
	it := a.IterSlice(2, 7)
	if it.Len() != 5 {
		t.Fatalf("IterSlice(2, 7) Len: want 5, got %d", it.Len())
	}
	for want := 2; want < 7; want++ {
		r, ok := it.Next()
		if !ok {
			t.Fatalf("IterSlice: stopped early at element %d", want)
		}
		r.Write(uint32(want) * 10)
	}
	for i := range backing {
		want := uint32(i)
		if i >= 2 && i < 7 {
			want = uint32(i) * 10
		}
		if backing[i] != want {
			t.Errorf("backing[%d]: want %d, got %d", i, want, backing[i])
		}
	}
}
