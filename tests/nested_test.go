// Copyright (c) 2025 Visvasity LLC

package tests

import (
	"testing"
	"unsafe"

	"github.com/visvasity/regmapgen/input"
	"github.com/visvasity/regmapgen/output"
)

func TestNestedIsolation(t *testing.T) {
	b := new(input.Board)
	v := output.BoardFromRegs(b)

	v.Magic().Write(0xfeedface)
	v.Uart0().Data().Write(0x11)
	v.Uart0().Baud().Write(9600)
	v.Uart1().Data().Write(0x22)
	v.Uart1().Baud().Write(115200)

	want := input.Board{
		Magic: 0xfeedface,
		Uart0: input.Uart{Data: 0x11, Baud: 9600},
		Uart1: input.Uart{Data: 0x22, Baud: 115200},
	}
	if *b != want {
		t.Fatalf("backing struct:\n got %+v\nwant %+v", *b, want)
	}
}

func TestNestedAddrs(t *testing.T) {
	b := new(input.Board)
	v := output.BoardFromRegs(b)

	if got, want := v.Uart0().Addr(), uintptr(unsafe.Pointer(&b.Uart0)); got != want {
		t.Errorf("Uart0 Addr: want %#x, got %#x", want, got)
	}
	if got, want := v.Uart1().Ctrl().Addr(), uintptr(unsafe.Pointer(&b.Uart1.Ctrl)); got != want {
		t.Errorf("Uart1.Ctrl Addr: want %#x, got %#x", want, got)
	}
}

func TestMultiDimRoundTrip(t *testing.T) {
	g := new(input.SensorGrid)
	samples := output.SensorGridFromRegs(g).Samples()

	for i := 0; i < 7; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 2; l++ {
					samples.At(i).At(j).At(k).At(l).Write(uint64(i*1000 + j*100 + k*10 + l))
				}
			}
		}
	}

	for i := range g.Samples {
		for j := range g.Samples[i] {
			for k := range g.Samples[i][j] {
				for l := range g.Samples[i][j][k] {
					want := uint64(i*1000 + j*100 + k*10 + l)
					if g.Samples[i][j][k][l] != want {
						t.Fatalf("Samples[%d][%d][%d][%d]: want %d, got %d",
							i, j, k, l, want, g.Samples[i][j][k][l])
					}
				}
			}
		}
	}

	// Inner dimensions are bounds checked independently.
	mustPanic(t, "At(7)", func() { samples.At(7) })
	mustPanic(t, "inner At(5)", func() { samples.At(0).At(5) })
	mustPanic(t, "inner At(3)", func() { samples.At(0).At(0).At(3) })
	mustPanic(t, "inner At(2)", func() { samples.At(0).At(0).At(0).At(2) })
}
