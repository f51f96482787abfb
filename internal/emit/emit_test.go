package emit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/ecordell/fieldgen/internal/parse"
)

func inputs(t *testing.T, src string) []*parse.Input {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "input.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	var defs []*parse.Definition
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			defs = append(defs, &parse.Definition{File: file, Decl: gen, Spec: spec.(*ast.TypeSpec)})
		}
	}
	p := parse.NewParser(fset, defs, nil, nil)
	var out []*parse.Input
	for _, def := range defs {
		if len(def.Directives(fset)) == 0 {
			continue
		}
		in, err := p.Parse(def)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", def.Name(), err)
		}
		out = append(out, in)
	}
	return out
}

func render(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, "example.com/p", "p", inputs(t, src)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "fields_gen.go", buf.Bytes(), parser.ParseComments); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output is missing %q\n%s", w, got)
		}
	}
}

const testSource = `package p

import (
	"time"

	"example.com/other"
)

//fields: derive(fmt.Stringer, Equal, json, yaml, msgpack), all
type Test struct {
	valid bool
	id    uint32
	name  string
	When  time.Time
}

//fields: derive(json), name = "RemoteOption"
type Remote struct {
	Settings other.Settings ` + "`fields:\"flatten\"`" + `
	Local    *Test          ` + "`fields:\"flatten\"`" + `
}
`

func TestRenderRecord(t *testing.T) {
	got := render(t, testSource)
	assertContains(t, got,
		"// Code generated by github.com/ecordell/fieldgen. DO NOT EDIT.",
		"package p",
		"// TestField is a field of [Test].",
		"type TestField interface {",
		"apply(t *Test)",
		"// TestFieldValid is member [Test.valid] of [Test].",
		"type TestFieldValid struct {",
		"Value bool",
		"func (v TestFieldValid) apply(t *Test) {",
		"t.valid = v.Value",
		"Value time.Time",
		"func (t *Test) Set(field TestField) {",
		"field.apply(t)",
		"func (t *Test) SetAll(updates ...TestField) {",
		"for _, field := range updates {",
		"t.Set(field)",
		"all := make([]TestField, 0, 4)",
		"func (t *Test) All() iter.Seq[TestField] {",
		"snapshot := make([]TestField, 0, 4)",
		"snapshot = append(snapshot, TestFieldName{Value: t.name})",
		"fields.AllFields[TestField]",
	)
}

func TestRenderFlattenAcrossPackages(t *testing.T) {
	got := render(t, testSource)
	assertContains(t, got,
		`"example.com/other"`,
		"type RemoteOption interface {",
		"func (r *Remote) Set(field RemoteOption) {",
		"Value other.SettingsField",
		"r.Settings.Set(v.Value)",
		"if r.Local == nil {",
		"r.Local = new(Test)",
		"r.Local.Set(v.Value)",
		"field, err := other.UnmarshalSettingsFieldJSON(value)",
		"field, err := UnmarshalTestFieldJSON(value)",
		"return RemoteOptionSettings{Value: field}, nil",
		"// RemoteOptionLocal is member [Remote.Local] of [Remote]. Setting it sets a single field of the flattened member.",
	)
	if strings.Contains(got, "fields.AllFields[RemoteOption]") {
		t.Errorf("All generated without the all option")
	}
}

func TestRenderLayout(t *testing.T) {
	got := render(t, `package p

//fields: all
type Point struct{ X, Y int }
`)
	assertContains(t, got,
		"// Code generated by github.com/ecordell/fieldgen. DO NOT EDIT.\n\npackage p\n",
		"\t\"iter\"\n",
		"\t\"slices\"\n",
		"}\n\n// PointFieldY is member [Point.Y] of [Point].\n",
		"}\n\nvar (\n",
	)
	if strings.Contains(got, "iter \"iter\"") || strings.Contains(got, "slices \"slices\"") {
		t.Errorf("standard library imports are aliased:\n%s", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	first := render(t, testSource)
	for i := 0; i < 5; i++ {
		if got := render(t, testSource); got != first {
			t.Fatalf("render %d differs from the first", i)
		}
	}
}

func TestRenderReceivers(t *testing.T) {
	got := render(t, `package p

//fields:
type value struct{ X int }

//fields:
type _hidden struct{ X int }

//fields:
type Über struct{ X int }
`)
	assertContains(t, got,
		"func (r *value) Set(field valueField) {",
		"func (v valueFieldX) apply(r *value) {",
		"func (r *_hidden) Set(field _hiddenField) {",
		"func (ü *Über) Set(field ÜberField) {",
		"func (v ÜberFieldX) apply(ü *Über) {",
	)
}

func TestRenderGeneric(t *testing.T) {
	got := render(t, `package p

//fields: derive(json)
type Box[K comparable, V any] struct {
	Key    K
	Values []V
}
`)
	assertContains(t, got,
		"type BoxField[K comparable, V any] interface {",
		"apply(b *Box[K, V])",
		"type BoxFieldValues[K comparable, V any] struct {",
		"Value []V",
		"func (v BoxFieldValues[K, V]) MarshalJSON() ([]byte, error) {",
		"func (b *Box[K, V]) IntoAll() []BoxField[K, V] {",
		"func UnmarshalBoxFieldJSON[K comparable, V any](data []byte) (BoxField[K, V], error) {",
		"var v BoxFieldKey[K, V]",
	)
	if strings.Contains(got, "fields.Fields[") {
		t.Errorf("assertions generated for a generic record")
	}
}

func TestRenderEmpty(t *testing.T) {
	got := render(t, `package p

//fields: derive(yaml, msgpack)
type Empty struct{}
`)
	assertContains(t, got,
		"all := make([]EmptyField, 0, 0)",
		"name, _, err := fields.Single(raw)",
	)
	if strings.Contains(got, "yaml.Marshal(value)") {
		t.Errorf("empty record re-marshals an unused value")
	}
}

func TestDecoderName(t *testing.T) {
	if got := DecoderName("TestField", "JSON"); got != "UnmarshalTestFieldJSON" {
		t.Errorf("DecoderName() = %q", got)
	}
}
