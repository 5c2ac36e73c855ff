// Copyright (c) 2025 Visvasity LLC

package layout

// ResolvedField is a Field with its computed placement.
type ResolvedField struct {
	Field
	Offset int
	Size   int
	Align  int
}

// Resolved is a register map with offsets and sizes assigned to every
// field. It is immutable once produced.
type Resolved struct {
	Name   string
	Size   int
	Align  int
	Fields []ResolvedField
}

// FieldByName returns the resolved field with the given name.
func (r *Resolved) FieldByName(name string) (ResolvedField, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ResolvedField{}, false
}

// Resolver lays out register-map descriptions. Nested map references are
// resolved against the descriptions added to the resolver, recursively
// and with cycle detection.
type Resolver struct {
	maps      map[string]*Description
	resolved  map[string]*Resolved
	resolving map[string]bool
}

func NewResolver() *Resolver {
	return &Resolver{
		maps:      make(map[string]*Description),
		resolved:  make(map[string]*Resolved),
		resolving: make(map[string]bool),
	}
}

// Add registers a description under its name.
func (r *Resolver) Add(d *Description) error {
	if _, ok := r.maps[d.Name]; ok {
		return layoutErrorf(d.Name, "", "register map is defined more than once")
	}
	r.maps[d.Name] = d
	return nil
}

// Resolve computes the layout of the named map using sequential
// placement: each field in declaration order is placed at the running
// offset rounded up to the field's own alignment, and the total size is
// rounded up to the map's alignment.
func (r *Resolver) Resolve(name string) (*Resolved, error) {
	if v, ok := r.resolved[name]; ok {
		return v, nil
	}
	d, ok := r.maps[name]
	if !ok {
		return nil, layoutErrorf(name, "", "register map is not defined")
	}
	if r.resolving[name] {
		return nil, layoutErrorf(name, "", "register map references itself recursively")
	}
	r.resolving[name] = true
	defer delete(r.resolving, name)

	out := &Resolved{Name: name, Align: 1}
	offset := 0
	for _, f := range d.Fields {
		size, align, err := r.sizeAlign(name, f.Name, &f.FieldKind)
		if err != nil {
			return nil, err
		}
		offset = roundUp(offset, align)
		out.Fields = append(out.Fields, ResolvedField{
			Field:  f,
			Offset: offset,
			Size:   size,
			Align:  align,
		})
		offset += size
		out.Align = max(out.Align, align)
	}

	// An explicit alignment may only raise the natural one: accesses
	// assume natural alignment, so packing is rejected outright.
	if d.Align != 0 {
		if d.Align&(d.Align-1) != 0 {
			return nil, layoutErrorf(name, "", "alignment %d is not a power of two", d.Align)
		}
		if d.Align < out.Align {
			return nil, layoutErrorf(name, "", "alignment %d is below the natural alignment %d", d.Align, out.Align)
		}
		out.Align = d.Align
	}
	out.Size = roundUp(offset, out.Align)

	r.resolved[name] = out
	return out, nil
}

// SizeAlign returns the resolved byte size and alignment of a field
// kind. For arrays the size of one element is the array's stride.
func (r *Resolver) SizeAlign(k *FieldKind) (size, align int, err error) {
	return r.sizeAlign("", "", k)
}

func (r *Resolver) sizeAlign(mapName, fieldName string, k *FieldKind) (int, int, error) {
	switch k.Kind {
	case Scalar:
		switch k.Width {
		case 1, 2, 4, 8:
			return k.Width, k.Width, nil
		}
		return 0, 0, layoutErrorf(mapName, fieldName, "scalar width %d is not supported", k.Width)

	case Nested:
		sub, err := r.Resolve(k.MapName)
		if err != nil {
			return 0, 0, err
		}
		return sub.Size, sub.Align, nil

	case Array:
		if k.Elem == nil {
			return 0, 0, layoutErrorf(mapName, fieldName, "array has no element kind")
		}
		if k.Len <= 0 {
			return 0, 0, layoutErrorf(mapName, fieldName, "zero sized arrays are not supported")
		}
		esize, ealign, err := r.sizeAlign(mapName, fieldName, k.Elem)
		if err != nil {
			return 0, 0, err
		}
		return esize * k.Len, ealign, nil
	}
	return 0, 0, layoutErrorf(mapName, fieldName, "field kind %v is not supported", k.Kind)
}

func roundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
