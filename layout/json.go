// Copyright (c) 2025 Visvasity LLC

package layout

import "github.com/go-faster/jx"

// JSON renders the resolved layout for tooling and diffing. The field
// order follows declaration order so two dumps of the same map compare
// byte for byte.
func (r *Resolved) JSON() []byte {
	var e jx.Encoder
	r.encode(&e)
	return e.Bytes()
}

func (r *Resolved) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(r.Name) })
		e.Field("size", func(e *jx.Encoder) { e.Int(r.Size) })
		e.Field("align", func(e *jx.Encoder) { e.Int(r.Align) })
		e.Field("fields", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range r.Fields {
					r.Fields[i].encode(e)
				}
			})
		})
	})
}

func (f *ResolvedField) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(f.Name) })
		e.Field("offset", func(e *jx.Encoder) { e.Int(f.Offset) })
		e.Field("size", func(e *jx.Encoder) { e.Int(f.Size) })
		e.Field("align", func(e *jx.Encoder) { e.Int(f.Align) })
		encodeKind(e, &f.FieldKind)
	})
}

func encodeKind(e *jx.Encoder, k *FieldKind) {
	e.Field("kind", func(e *jx.Encoder) { e.Str(k.Kind.String()) })
	switch k.Kind {
	case Scalar:
		e.Field("width", func(e *jx.Encoder) { e.Int(k.Width) })
		e.Field("signed", func(e *jx.Encoder) { e.Bool(k.Signed) })
		e.Field("access", func(e *jx.Encoder) { e.Str(k.Access.String()) })
	case Nested:
		e.Field("map", func(e *jx.Encoder) { e.Str(k.MapName) })
	case Array:
		e.Field("len", func(e *jx.Encoder) { e.Int(k.Len) })
		e.Field("elem", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) { encodeKind(e, k.Elem) })
		})
	}
}
