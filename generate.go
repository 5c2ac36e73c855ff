// Copyright (c) 2025 Visvasity LLC

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"io"
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"github.com/visvasity/regmapgen/layout"
	"github.com/visvasity/regmapgen/typecheck"
)

const regsPkgPath = "github.com/visvasity/regmapgen/regs"

type Generator struct {
	pkg     *packages.Package
	pkgName string

	checker  *typecheck.Checker
	resolver *layout.Resolver

	// resolvedMap holds the layouts of every map type emitted so far,
	// keyed by input type name.
	resolvedMap map[string]*layout.Resolved

	// added tracks descriptions already registered with the resolver.
	added map[string]bool

	sizer types.Sizes

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path name to list of
	// typename keys in the bufferMap that need to import the package.
	// For example,
	//
	//   importsMap["unsafe"]["Uart"] = ""
	//
	// indicates a plain `import "unsafe"` in the generated file named
	// "uart.regmapgen.go".
	importsMap map[string]map[string]string
}

func newGenerator(pkg *packages.Package, pkgName string) (*Generator, error) {
	g := &Generator{
		pkg:         pkg,
		pkgName:     pkgName,
		checker:     typecheck.New(pkg),
		resolver:    layout.NewResolver(),
		resolvedMap: make(map[string]*layout.Resolved),
		added:       make(map[string]bool),
		sizer:       types.SizesFor(runtime.Compiler, runtime.GOARCH),
		bufferMap:   make(map[string]*bytes.Buffer),
		importsMap:  make(map[string]map[string]string),
	}
	return g, nil
}

func (g *Generator) ptrName(typeName string) string {
	return typeName + "Ptr"
}

func (g *Generator) getBuffer(typeName string) *bytes.Buffer {
	if b, ok := g.bufferMap[typeName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[typeName] = b
	return b
}

func (g *Generator) addImport(typeName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[typeName]
	if !ok {
		vmap[typeName] = importName
		return nil
	}
	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by type %q", packagePath, typeName)
	}
	return nil
}

func (g *Generator) P(typeName string, v ...any) {
	buf := g.getBuffer(typeName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

func (g *Generator) GetTypes() []string {
	return slices.Collect(maps.Keys(g.bufferMap))
}

// Resolved returns the computed layout of an already generated type.
func (g *Generator) Resolved(typeName string) (*layout.Resolved, bool) {
	v, ok := g.resolvedMap[typeName]
	return v, ok
}

func (g *Generator) GetSource(typeName string) []byte {
	buf := g.getSourceWithImports(typeName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		logrus.Warnf("internal error: invalid Go generated: %s", err)
		logrus.Warnf("compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

func (g *Generator) getImports(typeName string) [][2]string {
	var imports [][2]string
	for pkgPath, vmap := range g.importsMap {
		imp, ok := vmap[typeName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	slices.SortFunc(imports, func(a, b [2]string) int {
		return strings.Compare(a[1], b[1])
	})
	return imports
}

func (g *Generator) getSourceWithImports(typeName string) *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/regmapgen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(typeName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	io.Copy(buf, g.getBuffer(typeName))
	return buf
}

func scalarGoType(k *layout.FieldKind) string {
	if k.Signed {
		return fmt.Sprintf("int%d", k.Width*8)
	}
	return fmt.Sprintf("uint%d", k.Width*8)
}

// handleType returns the Go type of the accessor handle for a field
// kind: regs.RO/WO/RW for scalars, the generated pointer type for
// nested maps, and nested regs.Array instantiations for arrays.
func (g *Generator) handleType(k *layout.FieldKind) string {
	switch k.Kind {
	case layout.Scalar:
		switch k.Access {
		case layout.RO:
			return "regs.RO[" + scalarGoType(k) + "]"
		case layout.WO:
			return "regs.WO[" + scalarGoType(k) + "]"
		default:
			return "regs.RW[" + scalarGoType(k) + "]"
		}
	case layout.Nested:
		return g.ptrName(k.MapName)
	case layout.Array:
		return "regs.Array[" + g.handleType(k.Elem) + "]"
	}
	panic(fmt.Sprintf("unexpected field kind %v", k.Kind))
}

// handleCtor returns an expression of type func(unsafe.Pointer) E that
// builds the element handle for array fields.
func (g *Generator) handleCtor(k *layout.FieldKind) (string, error) {
	switch k.Kind {
	case layout.Scalar:
		switch k.Access {
		case layout.RO:
			return "regs.ReadOnly[" + scalarGoType(k) + "]", nil
		case layout.WO:
			return "regs.WriteOnly[" + scalarGoType(k) + "]", nil
		default:
			return "regs.ReadWrite[" + scalarGoType(k) + "]", nil
		}

	case layout.Nested:
		ptr := g.ptrName(k.MapName)
		return "func(p unsafe.Pointer) " + ptr + " { return " + ptr + "{p} }", nil

	case layout.Array:
		// Arrays of arrays close over the inner dimension's layout.
		stride, _, err := g.resolver.SizeAlign(k.Elem)
		if err != nil {
			return "", err
		}
		ector, err := g.handleCtor(k.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func(p unsafe.Pointer) %s {\nreturn regs.NewArray(p, %d, %d, %s)\n}",
			g.handleType(k), stride, k.Len, ector), nil
	}
	return "", fmt.Errorf("unexpected field kind %v", k.Kind)
}

func (g *Generator) generate(typeName string) error {
	if _, ok := g.bufferMap[typeName]; ok {
		return nil
	}

	if err := g.checker.Check(typeName); err != nil {
		return err
	}

	// Checking may have collected nested map types; register all new
	// descriptions before resolving.
	for name, desc := range g.checker.DescriptionMap() {
		if g.added[name] {
			continue
		}
		if err := g.resolver.Add(desc); err != nil {
			return err
		}
		g.added[name] = true
	}

	resolved, err := g.resolver.Resolve(typeName)
	if err != nil {
		return err
	}
	if err := g.verifyLayout(typeName, resolved); err != nil {
		return err
	}
	g.resolvedMap[typeName] = resolved

	logrus.WithFields(logrus.Fields{
		"type":  typeName,
		"size":  resolved.Size,
		"align": resolved.Align,
	}).Debug("resolved register map layout")

	// Generate code for all dependent map types first.
	for _, f := range resolved.Fields {
		for k := &f.FieldKind; k != nil; k = k.Elem {
			if k.Kind == layout.Nested {
				if err := g.generate(k.MapName); err != nil {
					return err
				}
			}
		}
	}

	if err := g.generatePtrType(typeName, resolved); err != nil {
		return err
	}
	for i := range resolved.Fields {
		if err := g.generateFieldMethod(typeName, &resolved.Fields[i]); err != nil {
			return err
		}
	}
	return nil
}

// verifyLayout cross-checks the resolver's placement against the real
// Go struct layout reported by go/types. A mismatch means the resolver
// and the platform disagree, and generated offsets would be wrong.
func (g *Generator) verifyLayout(typeName string, resolved *layout.Resolved) error {
	object := g.pkg.Types.Scope().Lookup(typeName)
	if object == nil {
		return fmt.Errorf("typename %q doesn't exist", typeName)
	}
	stype, ok := object.Type().Underlying().(*types.Struct)
	if !ok {
		return fmt.Errorf("input type %q is not a named struct type", typeName)
	}

	var fs []*types.Var
	for i := 0; i < stype.NumFields(); i++ {
		fs = append(fs, stype.Field(i))
	}
	offsets := g.sizer.Offsetsof(fs)
	for i, f := range resolved.Fields {
		if int64(f.Offset) != offsets[i] {
			return fmt.Errorf("type %q field %q: resolved offset %d does not match the platform offset %d",
				typeName, f.Name, f.Offset, offsets[i])
		}
		if size := g.sizer.Sizeof(fs[i].Type()); int64(f.Size) != size {
			return fmt.Errorf("type %q field %q: resolved size %d does not match the platform size %d",
				typeName, f.Name, f.Size, size)
		}
	}

	// An alignment override widens the map beyond what the Go type
	// can express, so the total size check applies only without one.
	desc := g.checker.DescriptionMap()[typeName]
	if desc.Align == 0 {
		if size := g.sizer.Sizeof(stype); int64(resolved.Size) != size {
			return fmt.Errorf("type %q: resolved size %d does not match the platform size %d",
				typeName, resolved.Size, size)
		}
	}
	return nil
}

func (g *Generator) generatePtrType(typeName string, resolved *layout.Resolved) error {
	ptrTypeName := g.ptrName(typeName)

	if err := g.addImport(typeName, "", "unsafe"); err != nil {
		return err
	}
	if err := g.addImport(typeName, "", g.pkg.PkgPath); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// ", typeName, " register map layout, resolved at generation time.")
	g.P(typeName, "const (")
	g.P(typeName, "  ", typeName, "Size  = ", resolved.Size)
	g.P(typeName, "  ", typeName, "Align = ", resolved.Align)
	g.P(typeName, ")")
	g.P(typeName)

	g.P(typeName)
	if doc := g.checker.MapDoc(typeName); len(doc) != 0 {
		g.P(typeName, doc)
		g.P(typeName, "//")
	}
	g.P(typeName, "// ", ptrTypeName, " provides register accessors over a ", typeName, " layout at a fixed")
	g.P(typeName, "// base address. Methods compute addresses only; no memory is touched")
	g.P(typeName, "// until a handle's Read or Write is called.")
	g.P(typeName, "type ", ptrTypeName, " struct {")
	g.P(typeName, "  p unsafe.Pointer")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// ", typeName, "FromRegs returns accessors over an in-memory register bank.")
	g.P(typeName, "// Holding the result keeps v reachable.")
	g.P(typeName, "func ", typeName, "FromRegs(v *", g.pkg.Name, ".", typeName, ") ", ptrTypeName, " {")
	g.P(typeName, "  return ", ptrTypeName, "{unsafe.Pointer(v)}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// ", typeName, "AtAddr returns accessors over the registers mapped at addr. The")
	g.P(typeName, "// caller guarantees addr is valid, correctly aligned and stays mapped")
	g.P(typeName, "// for the lifetime of the result and every handle derived from it.")
	g.P(typeName, "func ", typeName, "AtAddr(addr uintptr) ", ptrTypeName, " {")
	g.P(typeName, "  return ", ptrTypeName, "{unsafe.Pointer(addr)}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName)
	g.P(typeName, "// Addr returns the base address of the register map.")
	g.P(typeName, "func (v ", ptrTypeName, ") Addr() uintptr {")
	g.P(typeName, "  return uintptr(v.p)")
	g.P(typeName, "}")
	g.P(typeName)

	return nil
}

func (g *Generator) generateFieldMethod(typeName string, f *layout.ResolvedField) error {
	ptrTypeName := g.ptrName(typeName)

	if err := g.addImport(typeName, "", "unsafe"); err != nil {
		return err
	}

	g.P(typeName)
	if len(f.Doc) != 0 {
		g.P(typeName, f.Doc)
	}

	switch f.Kind {
	case layout.Scalar:
		if err := g.addImport(typeName, "", regsPkgPath); err != nil {
			return err
		}
		ctor, err := g.handleCtor(&f.FieldKind)
		if err != nil {
			return err
		}
		g.P(typeName, "func (v ", ptrTypeName, ") ", f.Name, "() ", g.handleType(&f.FieldKind), " {")
		g.P(typeName, "  return ", ctor, "(unsafe.Add(v.p, ", f.Offset, "))")
		g.P(typeName, "}")

	case layout.Nested:
		nested := g.ptrName(f.MapName)
		g.P(typeName, "func (v ", ptrTypeName, ") ", f.Name, "() ", nested, " {")
		g.P(typeName, "  return ", nested, "{unsafe.Add(v.p, ", f.Offset, ")}")
		g.P(typeName, "}")

	case layout.Array:
		if err := g.addImport(typeName, "", regsPkgPath); err != nil {
			return err
		}
		stride, _, err := g.resolver.SizeAlign(f.Elem)
		if err != nil {
			return err
		}
		ctor, err := g.handleCtor(f.Elem)
		if err != nil {
			return err
		}
		g.P(typeName, "func (v ", ptrTypeName, ") ", f.Name, "() ", g.handleType(&f.FieldKind), " {")
		g.P(typeName, "  return regs.NewArray(unsafe.Add(v.p, ", f.Offset, "), ", stride, ", ", f.Len, ", ", ctor, ")")
		g.P(typeName, "}")

	default:
		return fmt.Errorf("type %q field %q: unexpected kind %v", typeName, f.Name, f.Kind)
	}
	g.P(typeName)
	return nil
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has errors", pkg)
	}
	return pkgs[0], nil
}
