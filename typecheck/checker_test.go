// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/packages"

	"github.com/visvasity/regmapgen/layout"
)

func loadInput(t *testing.T) *packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, "github.com/visvasity/regmapgen/input")
	if err != nil {
		t.Fatal(err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("input package has errors")
	}
	return pkgs[0]
}

func TestCheckerUart(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("Uart"); err != nil {
		t.Fatal(err)
	}

	want := &layout.Description{
		Name: "Uart",
		Fields: []layout.Field{
			{Name: "Data", FieldKind: layout.ScalarKind(1, false, layout.RW)},
			{Name: "Status", FieldKind: layout.ScalarKind(1, false, layout.RO)},
			{Name: "Ctrl", FieldKind: layout.ScalarKind(1, false, layout.WO)},
			{Name: "Baud", FieldKind: layout.ScalarKind(4, false, layout.RW)},
		},
	}
	got := checker.DescriptionMap()["Uart"]
	ignoreDocs := cmp.Transformer("dropDoc", func(f layout.Field) layout.Field {
		f.Doc = ""
		return f
	})
	if diff := cmp.Diff(want, got, ignoreDocs); diff != "" {
		t.Errorf("Uart description mismatch (-want +got):\n%s", diff)
	}

	if doc := checker.MapDoc("Uart"); !strings.Contains(doc, "serial port") {
		t.Errorf("MapDoc(Uart): missing doc text, got %q", doc)
	}
}

func TestCheckerFieldDocs(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("Uart"); err != nil {
		t.Fatal(err)
	}
	desc := checker.DescriptionMap()["Uart"]
	var dataDoc string
	for _, f := range desc.Fields {
		if f.Name == "Data" {
			dataDoc = f.Doc
		}
	}
	if !strings.Contains(dataDoc, "holding register") {
		t.Errorf("Data field doc not carried through, got %q", dataDoc)
	}
}

func TestCheckerScalars(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("ScalarBank"); err != nil {
		t.Fatal(err)
	}
	desc := checker.DescriptionMap()["ScalarBank"]
	wants := map[string]layout.FieldKind{
		"U8":  layout.ScalarKind(1, false, layout.RW),
		"I8":  layout.ScalarKind(1, true, layout.RW),
		"U16": layout.ScalarKind(2, false, layout.RW),
		"I16": layout.ScalarKind(2, true, layout.RW),
		"U32": layout.ScalarKind(4, false, layout.RW),
		"I32": layout.ScalarKind(4, true, layout.RW),
		"U64": layout.ScalarKind(8, false, layout.RW),
		"I64": layout.ScalarKind(8, true, layout.RW),
	}
	for _, f := range desc.Fields {
		if diff := cmp.Diff(wants[f.Name], f.FieldKind); diff != "" {
			t.Errorf("%s kind mismatch (-want +got):\n%s", f.Name, diff)
		}
	}
}

func TestCheckerNestedRecursion(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("Board"); err != nil {
		t.Fatal(err)
	}
	maps := checker.DescriptionMap()
	if _, ok := maps["Uart"]; !ok {
		t.Error("checking Board must also collect Uart")
	}
	desc := maps["Board"]
	if got := desc.Fields[1].FieldKind; got.Kind != layout.Nested || got.MapName != "Uart" {
		t.Errorf("Board.Uart0: want nested Uart, got %+v", got)
	}
}

func TestCheckerArrays(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("DmaController"); err != nil {
		t.Fatal(err)
	}
	desc := checker.DescriptionMap()["DmaController"]
	fk := desc.Fields[1].FieldKind
	if fk.Kind != layout.Array || fk.Len != 8 {
		t.Fatalf("Channels: want array of 8, got %+v", fk)
	}
	if fk.Elem.Kind != layout.Nested || fk.Elem.MapName != "DmaChannel" {
		t.Errorf("Channels element: want nested DmaChannel, got %+v", fk.Elem)
	}

	if err := checker.Check("SensorGrid"); err != nil {
		t.Fatal(err)
	}
	fk = checker.DescriptionMap()["SensorGrid"].Fields[0].FieldKind
	var lens []int
	for fk.Kind == layout.Array {
		lens = append(lens, fk.Len)
		fk = *fk.Elem
	}
	if diff := cmp.Diff([]int{7, 5, 3, 2}, lens); diff != "" {
		t.Errorf("SensorGrid dims mismatch (-want +got):\n%s", diff)
	}
	if fk.Kind != layout.Scalar || fk.Width != 8 {
		t.Errorf("SensorGrid innermost element: want uint64 scalar, got %+v", fk)
	}
}

func TestCheckerAlignAnnotation(t *testing.T) {
	checker := New(loadInput(t))
	if err := checker.Check("FrameControl"); err != nil {
		t.Fatal(err)
	}
	desc := checker.DescriptionMap()["FrameControl"]
	if desc.Align != 4096 {
		t.Errorf("FrameControl align: want 4096, got %d", desc.Align)
	}
	if doc := checker.MapDoc("FrameControl"); strings.Contains(doc, "regmap:") {
		t.Errorf("annotation line leaked into doc: %q", doc)
	}
}

func TestCheckerRejections(t *testing.T) {
	rejections := []struct {
		typename string
		reason   string
	}{
		{"BadWord", "fixed-width"},
		{"BadPointer", "not supported"},
		{"BadSlice", "not supported"},
		{"BadTag", "unknown access mode"},
		{"BadEmbed", "anonymous"},
		{"BadKey", "unknown annotation"},
		{"BadAlignValue", "invalid"},
		{"BadZeroArray", "zero sized"},
		{"BadArrayTag", "arrays of nested"},
		{"NoSuchType", "not found"},
	}
	checker := New(loadInput(t))
	for _, r := range rejections {
		err := checker.Check(r.typename)
		if err == nil {
			t.Errorf("Check(%s): expected an error", r.typename)
			continue
		}
		if !strings.Contains(err.Error(), r.reason) {
			t.Errorf("Check(%s): error %q does not mention %q", r.typename, err, r.reason)
		}
	}
}
