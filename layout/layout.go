// Copyright (c) 2025 Visvasity LLC

// Package layout holds the in-memory description of a register map and
// resolves it into byte offsets and sizes following the platform's
// sequential (C-compatible) structure layout rules.
package layout

import "fmt"

// Kind identifies what a register-map field is. The set is closed; the
// resolver rejects any other value.
type Kind int

const (
	Scalar Kind = iota // fixed-width integer register
	Nested             // another register map embedded at an offset
	Array              // fixed-length run of scalars, maps or arrays
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Nested:
		return "nested"
	case Array:
		return "array"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Access is a register's read/write permission tag. The zero value is
// read-write, which is also the default when a field carries no tag.
type Access int

const (
	RW Access = iota
	RO
	WO
)

func (a Access) String() string {
	switch a {
	case RW:
		return "rw"
	case RO:
		return "ro"
	case WO:
		return "wo"
	}
	return fmt.Sprintf("access(%d)", int(a))
}

// CanRead reports whether the tag grants read access.
func (a Access) CanRead() bool { return a == RW || a == RO }

// CanWrite reports whether the tag grants write access.
func (a Access) CanWrite() bool { return a == RW || a == WO }

// FieldKind is the tagged description of a field's type. Exactly one
// group of members is meaningful, selected by Kind. Array recursion
// through Elem has no depth limit; multidimensional register arrays are
// arrays of arrays.
type FieldKind struct {
	Kind Kind

	// Scalar members.
	Width  int // register width in bytes: 1, 2, 4 or 8
	Signed bool
	Access Access

	// Nested members.
	MapName string

	// Array members.
	Elem *FieldKind
	Len  int
}

// ScalarKind returns the description of a width-byte integer register.
func ScalarKind(width int, signed bool, access Access) FieldKind {
	return FieldKind{Kind: Scalar, Width: width, Signed: signed, Access: access}
}

// NestedKind returns the description of an embedded register map.
func NestedKind(mapName string) FieldKind {
	return FieldKind{Kind: Nested, MapName: mapName}
}

// ArrayKind returns the description of a fixed-length array of elem.
func ArrayKind(elem FieldKind, n int) FieldKind {
	return FieldKind{Kind: Array, Elem: &elem, Len: n}
}

// Field is a named member of a register map. Field order is significant:
// it fixes the byte offsets under sequential layout.
type Field struct {
	Name string
	Doc  string // doc comment carried onto the generated accessor method
	FieldKind
}

// Description is a register map before layout resolution. Align, when
// non-zero, raises the map's alignment above its natural alignment;
// lowering is not supported because accesses assume natural alignment.
type Description struct {
	Name   string
	Fields []Field
	Align  int
}

// LayoutError reports a description the resolver cannot lay out. It is
// fatal for the generation step; no partial layout is produced.
type LayoutError struct {
	Map    string
	Field  string
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("layout %s: %s", e.Map, e.Reason)
	}
	return fmt.Sprintf("layout %s.%s: %s", e.Map, e.Field, e.Reason)
}

func layoutErrorf(mapName, fieldName, format string, args ...any) *LayoutError {
	return &LayoutError{Map: mapName, Field: fieldName, Reason: fmt.Sprintf(format, args...)}
}
