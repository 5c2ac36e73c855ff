// Copyright (c) 2025 Visvasity LLC

// Package typecheck converts annotated Go struct definitions into
// register-map descriptions. It is the front-end between go/types and
// the layout resolver: struct tags select the access mode, doc-comment
// annotations adjust alignment, and anything that cannot represent a
// memory-mapped register bank is rejected here with a field-level error.
package typecheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/visvasity/regmapgen/layout"
)

// annotationPrefix marks doc-comment lines that carry generator
// directives, e.g. //regmap:align=4096 on a struct type.
const annotationPrefix = "//regmap:"

type Checker struct {
	pkg *packages.Package

	descriptionMap map[string]*layout.Description

	// docMap holds the plain doc text of each checked map type, with
	// annotation lines stripped, for passthrough into generated code.
	docMap map[string]string

	checking map[string]bool
}

func New(pkg *packages.Package) *Checker {
	return &Checker{
		pkg:            pkg,
		descriptionMap: make(map[string]*layout.Description),
		docMap:         make(map[string]string),
		checking:       make(map[string]bool),
	}
}

// DescriptionMap returns every register map collected so far, keyed by
// type name. Nested map types appear alongside the types passed to
// Check.
func (c *Checker) DescriptionMap() map[string]*layout.Description {
	return c.descriptionMap
}

// MapDoc returns the doc comment of a checked map type with annotation
// lines removed.
func (c *Checker) MapDoc(name string) string {
	return c.docMap[name]
}

// Check scans the named struct type from the input package and records
// a layout description for it and for every register map it embeds.
func (c *Checker) Check(typename string) error {
	if _, ok := c.descriptionMap[typename]; ok {
		return nil
	}
	if c.checking[typename] {
		return fmt.Errorf("register map %q refers to itself", typename)
	}
	c.checking[typename] = true
	defer delete(c.checking, typename)

	object := c.pkg.Types.Scope().Lookup(typename)
	if object == nil {
		return fmt.Errorf("type %q not found in package %q", typename, c.pkg.PkgPath)
	}
	tname, ok := object.(*types.TypeName)
	if !ok {
		return fmt.Errorf("%q is not a type name", typename)
	}
	stype, ok := tname.Type().Underlying().(*types.Struct)
	if !ok {
		return fmt.Errorf("input type %q is not a named struct type", typename)
	}

	spec := c.findTypeSpec(typename)

	desc := &layout.Description{Name: typename}
	doc, align, err := c.parseTypeDoc(spec)
	if err != nil {
		return fmt.Errorf("type %q: %w", typename, err)
	}
	desc.Align = align
	c.docMap[typename] = doc

	fieldDocs := collectFieldDocs(spec)

	for i := 0; i < stype.NumFields(); i++ {
		v := stype.Field(i)
		if v.Anonymous() {
			return fmt.Errorf("type %q: anonymous fields (%v) are not supported", typename, v)
		}
		if !v.Exported() {
			return fmt.Errorf("type %q: unexported field %q has no accessor to generate", typename, v.Name())
		}

		access, err := parseAccessTag(stype.Tag(i))
		if err != nil {
			return fmt.Errorf("type %q field %q: %w", typename, v.Name(), err)
		}

		fkind, err := c.fieldKind(v, v.Type(), access)
		if err != nil {
			return fmt.Errorf("type %q field %q: %w", typename, v.Name(), err)
		}
		if fkind.Kind == layout.Nested && access != layout.RW {
			return fmt.Errorf("type %q field %q: reg tag is not supported on nested map fields", typename, v.Name())
		}

		desc.Fields = append(desc.Fields, layout.Field{
			Name:      v.Name(),
			Doc:       fieldDocs[v.Name()],
			FieldKind: fkind,
		})
	}

	c.descriptionMap[typename] = desc
	return nil
}

var basicScalarMap = map[types.BasicKind]struct {
	Width  int
	Signed bool
}{
	types.Int8:  {1, true},
	types.Int16: {2, true},
	types.Int32: {4, true},
	types.Int64: {8, true},

	types.Uint8:  {1, false},
	types.Uint16: {2, false},
	types.Uint32: {4, false},
	types.Uint64: {8, false},
}

func (c *Checker) fieldKind(v *types.Var, vtype types.Type, access layout.Access) (layout.FieldKind, error) {
	switch x := vtype.Underlying().(type) {
	case *types.Basic:
		sk, ok := basicScalarMap[x.Kind()]
		if !ok {
			// int, uint and uintptr land here too: register widths
			// must not vary with the platform.
			return layout.FieldKind{}, fmt.Errorf("basic type %q is not a fixed-width register type", x.Name())
		}
		return layout.ScalarKind(sk.Width, sk.Signed, access), nil

	case *types.Struct:
		ntype, ok := vtype.(*types.Named)
		if !ok {
			return layout.FieldKind{}, fmt.Errorf("anonymous/inline struct field types are not supported")
		}
		tn := ntype.Obj()
		if tn.Pkg() == nil || tn.Pkg().Path() != c.pkg.PkgPath {
			return layout.FieldKind{}, fmt.Errorf("nested map type %q must be declared in the input package", tn.Name())
		}
		if err := c.Check(tn.Name()); err != nil {
			return layout.FieldKind{}, err
		}
		return layout.NestedKind(tn.Name()), nil

	case *types.Array:
		if x.Len() == 0 {
			return layout.FieldKind{}, fmt.Errorf("zero sized arrays are not supported")
		}
		ekind, err := c.fieldKind(v, x.Elem(), access)
		if err != nil {
			return layout.FieldKind{}, err
		}
		if ekind.Kind == layout.Nested && access != layout.RW {
			return layout.FieldKind{}, fmt.Errorf("reg tag is not supported on arrays of nested maps")
		}
		return layout.ArrayKind(ekind, int(x.Len())), nil
	}

	return layout.FieldKind{}, fmt.Errorf("field (%v) of type %v is not supported", v, vtype)
}

func parseAccessTag(tag string) (layout.Access, error) {
	switch v := reflect.StructTag(tag).Get("reg"); v {
	case "", "rw":
		return layout.RW, nil
	case "ro":
		return layout.RO, nil
	case "wo":
		return layout.WO, nil
	default:
		return 0, fmt.Errorf("unknown access mode %q in reg tag", v)
	}
}

// findTypeSpec locates the AST type declaration for name, for access to
// doc comments. Returns nil when the package was loaded without syntax.
func (c *Checker) findTypeSpec(name string) *ast.TypeSpec {
	for _, file := range c.pkg.Syntax {
		for _, decl := range file.Decls {
			gdecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gdecl.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok || tspec.Name.Name != name {
					continue
				}
				// Hoist the declaration group's doc onto the type spec
				// when it has none of its own.
				if tspec.Doc == nil {
					tspec.Doc = gdecl.Doc
				}
				return tspec
			}
		}
	}
	return nil
}

// parseTypeDoc splits a map type's doc comment into passthrough text
// and generator directives.
func (c *Checker) parseTypeDoc(spec *ast.TypeSpec) (doc string, align int, err error) {
	if spec == nil || spec.Doc == nil {
		return "", 0, nil
	}
	var plain []string
	for _, comment := range spec.Doc.List {
		if !strings.HasPrefix(comment.Text, annotationPrefix) {
			plain = append(plain, comment.Text)
			continue
		}
		key, value, _ := strings.Cut(strings.TrimPrefix(comment.Text, annotationPrefix), "=")
		switch key {
		case "align":
			n, perr := strconv.Atoi(value)
			if perr != nil || n <= 0 {
				return "", 0, fmt.Errorf("invalid %salign value %q", annotationPrefix, value)
			}
			align = n
		default:
			return "", 0, fmt.Errorf("unknown annotation %s%s", annotationPrefix, key)
		}
	}
	// An annotation block leaves a dangling blank comment line behind.
	for len(plain) > 0 && plain[len(plain)-1] == "//" {
		plain = plain[:len(plain)-1]
	}
	return strings.Join(plain, "\n"), align, nil
}

// collectFieldDocs maps field names to their doc comments for
// passthrough onto generated accessor methods.
func collectFieldDocs(spec *ast.TypeSpec) map[string]string {
	docs := make(map[string]string)
	if spec == nil {
		return docs
	}
	stype, ok := spec.Type.(*ast.StructType)
	if !ok {
		return docs
	}
	for _, field := range stype.Fields.List {
		if field.Doc == nil {
			continue
		}
		var lines []string
		for _, comment := range field.Doc.List {
			lines = append(lines, comment.Text)
		}
		for _, name := range field.Names {
			docs[name.Name] = strings.Join(lines, "\n")
		}
	}
	return docs
}
