// Copyright (c) 2025 Visvasity LLC

package input

// Fixtures below compile as ordinary Go but must be rejected when
// passed to the generator. They stay in this package so the checker
// tests can load them through the normal package path.

// BadWord uses a platform-width integer.
type BadWord struct {
	Value uint
}

// BadPointer holds something other than registers.
type BadPointer struct {
	P *uint32
}

// BadSlice has no fixed extent.
type BadSlice struct {
	Values []uint32
}

// BadTag carries an access mode the generator does not know.
type BadTag struct {
	V uint32 `reg:"r"`
}

// BadEmbed embeds instead of naming its field.
type BadEmbed struct {
	Uart
}

// BadKey carries an unknown annotation.
//
//regmap:frobnicate=1
type BadKey struct {
	V uint32
}

// BadAlignValue carries a malformed alignment.
//
//regmap:align=lots
type BadAlignValue struct {
	V uint64
}

// BadZeroArray has nothing to address.
type BadZeroArray struct {
	Empty [0]uint32
}

// BadArrayTag tags an array of nested maps.
type BadArrayTag struct {
	Ports [2]Uart `reg:"ro"`
}
