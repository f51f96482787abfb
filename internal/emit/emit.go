// Package emit renders parsed definitions into Go source: for each record
// a sealed field interface, one variant type per retained member, and the
// Set, SetAll, IntoAll and All methods binding the record to them.
package emit

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/ecordell/fieldgen/internal/model"
	"github.com/ecordell/fieldgen/internal/parse"
)

const (
	// FieldsPkg is the import path of the runtime contract.
	FieldsPkg = "github.com/ecordell/fieldgen/fields"

	yamlPkg    = "github.com/goccy/go-yaml"
	msgpackPkg = "github.com/vmihailenco/msgpack/v5"

	// GeneratedHeader is written at the top of every generated file.
	GeneratedHeader = "Code generated by github.com/ecordell/fieldgen. DO NOT EDIT."
)

// File builds the generated file for the package at pkgPath.
func File(pkgPath, pkgName string, inputs []*parse.Input) *jen.File {
	buf := jen.NewFilePathName(pkgPath, pkgName)
	buf.HeaderComment(GeneratedHeader)
	// missing from jennifer's standard library hints
	buf.ImportName("iter", "iter")
	buf.ImportName("slices", "slices")
	buf.ImportName(FieldsPkg, "fields")
	buf.ImportName(yamlPkg, "yaml")
	buf.ImportName(msgpackPkg, "msgpack")

	for _, in := range inputs {
		in.Imports.Each(func(name, path string, aliased bool) {
			if aliased {
				buf.ImportAlias(path, name)
			} else {
				buf.ImportName(path, name)
			}
		})
	}

	for _, in := range inputs {
		writeRecord(buf, newRecord(in))
	}
	return buf
}

// Render writes the generated file for inputs to w.
func Render(w io.Writer, pkgPath, pkgName string, inputs []*parse.Input) error {
	return File(pkgPath, pkgName, inputs).Render(w)
}

// record carries the names shared by every declaration emitted for one
// Input.
type record struct {
	in *parse.Input

	// receiver of the record methods, variant receiver
	recv, vrecv string

	params []jen.Code
	args   []jen.Code
}

func newRecord(in *parse.Input) *record {
	first, _ := utf8.DecodeRuneInString(in.Record)
	r := &record{
		in:    in,
		recv:  string(unicode.ToLower(first)),
		vrecv: "v",
	}
	if r.recv == r.vrecv || first == '_' {
		r.recv = "r"
	}
	r.params, r.args = typeParams(in.TypeParams, in.Imports)
	return r
}

func instantiate(stmt *jen.Statement, items []jen.Code) *jen.Statement {
	if len(items) == 0 {
		return stmt
	}
	return stmt.Types(items...)
}

// recordType is R or R[T...].
func (r *record) recordType() *jen.Statement {
	return instantiate(jen.Id(r.in.Record), r.args)
}

// fieldType is F or F[T...].
func (r *record) fieldType() *jen.Statement {
	return instantiate(jen.Id(r.in.Name), r.args)
}

func (r *record) variantName(m parse.Member) string {
	return r.in.Name + m.Variant
}

func (r *record) variantType(m parse.Member) *jen.Statement {
	return instantiate(jen.Id(r.variantName(m)), r.args)
}

// declare starts a generic declaration: name or name[T constraint, ...].
func (r *record) declare(name string) *jen.Statement {
	return instantiate(jen.Id(name), r.params)
}

func (r *record) payload(m parse.Member) *jen.Statement {
	return typeCode(m.Type, r.in.Imports)
}

// wrap builds V{Value: value}.
func (r *record) wrap(m parse.Member, value jen.Code) *jen.Statement {
	return r.variantType(m).Values(jen.Id("Value").Op(":").Add(value))
}

func (r *record) access(m parse.Member) *jen.Statement {
	return jen.Id(r.recv).Dot(m.Access)
}

// variantReceiver is the receiver of a method on the variant of m.
func (r *record) variantReceiver(m parse.Member) *jen.Statement {
	return jen.Id(r.vrecv).Add(r.variantType(m))
}

func (r *record) capabilities() []model.Capability {
	return r.in.Options.Capabilities()
}

func writeRecord(buf *jen.File, r *record) {
	writeFieldInterface(buf, r)
	for _, m := range r.in.Members {
		writeVariant(buf, r, m)
	}
	writeSet(buf, r)
	writeSetAll(buf, r)
	writeIntoAll(buf, r)
	if r.in.Options.All {
		writeAll(buf, r)
	}
	writeAssertions(buf, r)
	writeDecoders(buf, r)
}

func writeFieldInterface(buf *jen.File, r *record) {
	buf.Comment(r.in.Options.Doc(r.in.Record))
	buf.Type().Add(r.declare(r.in.Name)).InterfaceFunc(func(grp *jen.Group) {
		for _, c := range r.capabilities() {
			writeCapabilityRequirement(grp, r, c)
		}
		grp.Id("apply").Params(jen.Id(r.recv).Op("*").Add(r.recordType()))
	})
	buf.Line()
}

func memberDoc(r *record, m parse.Member) string {
	name := r.variantName(m)
	var b strings.Builder
	if m.Named {
		fmt.Fprintf(&b, "%s is member [%s.%s] of [%s].", name, r.in.Record, m.Access, r.in.Record)
	} else {
		fmt.Fprintf(&b, "%s is embedded member %d ([%s.%s]) of [%s].", name, m.Index, r.in.Record, m.Access, r.in.Record)
	}
	if m.Flatten {
		b.WriteString(" Setting it sets a single field of the flattened member.")
	}
	return b.String()
}

func writeVariant(buf *jen.File, r *record, m parse.Member) {
	buf.Comment(memberDoc(r, m))
	buf.Type().Add(r.declare(r.variantName(m))).Struct(
		jen.Id("Value").Add(r.payload(m)),
	)
	buf.Line()

	buf.Func().Params(r.variantReceiver(m)).Id("apply").
		Params(jen.Id(r.recv).Op("*").Add(r.recordType())).
		BlockFunc(func(grp *jen.Group) {
			value := jen.Id(r.vrecv).Dot("Value")
			if !m.Flatten {
				grp.Add(r.access(m)).Op("=").Add(value)
				return
			}
			if m.Pointer {
				grp.If(r.access(m).Op("==").Nil()).Block(
					r.access(m).Op("=").New(typeCode(pointee(m), r.in.Imports)),
				)
			}
			grp.Add(r.access(m)).Dot("Set").Call(value)
		})
	buf.Line()

	for _, c := range r.capabilities() {
		writeCapabilityMethod(buf, r, m, c)
	}
}

func writeSet(buf *jen.File, r *record) {
	buf.Comment(fmt.Sprintf("Set sets the member of %s held by field.", r.in.Record))
	buf.Func().Params(jen.Id(r.recv).Op("*").Add(r.recordType())).Id("Set").
		Params(jen.Id("field").Add(r.fieldType())).
		Block(
			jen.Id("field").Dot("apply").Call(jen.Id(r.recv)),
		)
	buf.Line()
}

func writeSetAll(buf *jen.File, r *record) {
	buf.Comment(fmt.Sprintf("SetAll sets each of the given fields on %s in order. A later field", r.in.Record))
	buf.Comment("overwrites an earlier one for the same member.")
	buf.Func().Params(jen.Id(r.recv).Op("*").Add(r.recordType())).Id("SetAll").
		Params(jen.Id("updates").Op("...").Add(r.fieldType())).
		Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("field")).Op(":=").Range().Id("updates")).Block(
				jen.Id(r.recv).Dot("Set").Call(jen.Id("field")),
			),
		)
	buf.Line()
}

func plainMembers(in *parse.Input) int {
	n := 0
	for _, m := range in.Members {
		if !m.Flatten {
			n++
		}
	}
	return n
}

// appendNested appends every field of a flattened member, obtained with
// method, re-wrapped in the variant of m.
func appendNested(grp *jen.Group, r *record, m parse.Member, list, method string, rangeFunc bool) {
	var header *jen.Statement
	if rangeFunc {
		header = jen.Id("field").Op(":=").Range().Add(r.access(m)).Dot(method).Call()
	} else {
		header = jen.List(jen.Id("_"), jen.Id("field")).Op(":=").Range().Add(r.access(m)).Dot(method).Call()
	}
	loop := jen.For(header).Block(
		jen.Id(list).Op("=").Append(jen.Id(list), r.wrap(m, jen.Id("field"))),
	)
	if m.Pointer {
		grp.If(r.access(m).Op("!=").Nil()).Block(loop)
		return
	}
	grp.Add(loop)
}

func writeIntoAll(buf *jen.File, r *record) {
	buf.Comment(fmt.Sprintf("IntoAll returns every member of %s as a %s: plain members in", r.in.Record, r.in.Name))
	buf.Comment("declaration order, followed by the fields of each flattened member.")
	buf.Func().Params(jen.Id(r.recv).Op("*").Add(r.recordType())).Id("IntoAll").Params().
		Index().Add(r.fieldType()).
		BlockFunc(func(grp *jen.Group) {
			grp.Id("all").Op(":=").Make(jen.Index().Add(r.fieldType()), jen.Lit(0), jen.Lit(plainMembers(r.in)))
			for _, m := range r.in.Members {
				if m.Flatten {
					continue
				}
				grp.Id("all").Op("=").Append(jen.Id("all"), r.wrap(m, r.access(m)))
			}
			for _, m := range r.in.Members {
				if m.Flatten {
					appendNested(grp, r, m, "all", "IntoAll", false)
				}
			}
			grp.Return(jen.Id("all"))
		})
	buf.Line()
}

func writeAll(buf *jen.File, r *record) {
	buf.Comment(fmt.Sprintf("All returns a snapshot of the current value of every member of %s, in", r.in.Record))
	buf.Comment("declaration order. Values are copied when All is called.")
	buf.Func().Params(jen.Id(r.recv).Op("*").Add(r.recordType())).Id("All").Params().
		Qual("iter", "Seq").Types(r.fieldType()).
		BlockFunc(func(grp *jen.Group) {
			grp.Id("snapshot").Op(":=").Make(jen.Index().Add(r.fieldType()), jen.Lit(0), jen.Lit(len(r.in.Members)))
			for _, m := range r.in.Members {
				if m.Flatten {
					appendNested(grp, r, m, "snapshot", "All", true)
					continue
				}
				grp.Id("snapshot").Op("=").Append(jen.Id("snapshot"), r.wrap(m, r.access(m)))
			}
			grp.Return(jen.Qual("slices", "Values").Call(jen.Id("snapshot")))
		})
	buf.Line()
}

// writeAssertions checks the record against the runtime contract. Generic
// records cannot be asserted without instantiating them.
func writeAssertions(buf *jen.File, r *record) {
	if r.in.Generic() {
		return
	}
	nilRecord := func() *jen.Statement {
		return jen.Parens(jen.Op("*").Id(r.in.Record)).Call(jen.Nil())
	}
	defs := []jen.Code{
		jen.Id("_").Qual(FieldsPkg, "Fields").Types(jen.Id(r.in.Name)).Op("=").Add(nilRecord()),
		jen.Id("_").Qual(FieldsPkg, "IntoAller").Types(jen.Id(r.in.Name)).Op("=").Add(nilRecord()),
	}
	if r.in.Options.All {
		defs = append(defs, jen.Id("_").Qual(FieldsPkg, "AllFields").Types(jen.Id(r.in.Name)).Op("=").Add(nilRecord()))
	}
	buf.Var().Defs(defs...)
	buf.Line()
}
