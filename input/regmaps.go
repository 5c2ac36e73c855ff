// Copyright (c) 2025 Visvasity LLC

// Package input holds the register-map definitions that regmapgen's own
// generated accessors and tests are built from. Field order is
// significant: offsets follow the platform's sequential struct layout.
package input

//go:generate go run github.com/visvasity/regmapgen --inpkg . --outdir ../output --outpkg output ScalarBank Uart DmaController Mailbox SensorGrid Board FrameControl Padded Capture

// ScalarBank exercises every supported register width and signedness.
type ScalarBank struct {
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
}

// Uart is a byte-oriented serial port with the usual one-way registers.
type Uart struct {
	// Data is the transmit/receive holding register.
	Data uint8

	// Status reflects line state; writes have no meaning.
	Status uint8 `reg:"ro"`

	// Ctrl accepts commands; reading it is undefined.
	Ctrl uint8 `reg:"wo"`

	Baud uint32
}

// DmaChannel describes a single transfer descriptor.
type DmaChannel struct {
	Src uint64
	Dst uint64
	Len uint32

	Ctrl   uint32 `reg:"wo"`
	Status uint32 `reg:"ro"`
}

// DmaController fronts a bank of channels behind a version register.
type DmaController struct {
	Version uint32 `reg:"ro"`

	Channels [8]DmaChannel
}

// Mailbox is a flat run of message slots.
type Mailbox struct {
	Slots [32]uint64
}

// SensorGrid is a four-dimensional sample array; element accessors
// compose one dimension at a time.
type SensorGrid struct {
	Samples [7][5][3][2]uint64
}

// Board nests two identical ports after an identification word.
type Board struct {
	Magic uint32

	Uart0 Uart
	Uart1 Uart
}

// FrameControl sits on its own page in the device's address space.
//
//regmap:align=4096
type FrameControl struct {
	Width  uint32
	Height uint32
	Stride uint32
}

// Capture fronts a streaming engine; a reg tag on an array field
// applies to every element.
type Capture struct {
	// Fifo drains captured samples; the hardware advances it on read.
	Fifo [16]uint32 `reg:"ro"`

	// Cmd queues engine commands; readback is undefined.
	Cmd [4]uint32 `reg:"wo"`
}

// Padded has interior padding between its registers.
type Padded struct {
	Small uint8
	Wide  uint16
}
