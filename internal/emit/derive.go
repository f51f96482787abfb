package emit

import (
	"fmt"
	"go/ast"

	"github.com/dave/jennifer/jen"

	"github.com/ecordell/fieldgen/internal/model"
	"github.com/ecordell/fieldgen/internal/parse"
)

// pointee is T for a member declared as *T.
func pointee(m parse.Member) ast.Expr {
	if star, ok := m.Declared.(*ast.StarExpr); ok {
		return star.X
	}
	return m.Declared
}

// tagged builds map[string]any{"Variant": v.Value}, the externally tagged
// form shared by every encoding.
func tagged(r *record, m parse.Member) *jen.Statement {
	return jen.Map(jen.String()).Any().Values(jen.Dict{
		jen.Lit(m.Variant): jen.Id(r.vrecv).Dot("Value"),
	})
}

func writeCapabilityRequirement(grp *jen.Group, r *record, c model.Capability) {
	switch c {
	case model.Stringer:
		grp.Qual("fmt", "Stringer")
	case model.Equal:
		grp.Id("Equal").Params(jen.Id("other").Add(r.fieldType())).Bool()
	case model.JSON:
		grp.Qual("encoding/json", "Marshaler")
	case model.YAML:
		grp.Id("MarshalYAML").Params().Params(jen.Any(), jen.Error())
	case model.Msgpack:
		grp.Id("EncodeMsgpack").Params(jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder")).Error()
	}
}

func writeCapabilityMethod(buf *jen.File, r *record, m parse.Member, c model.Capability) {
	defer buf.Line()
	recv := r.variantReceiver(m)
	switch c {
	case model.Stringer:
		buf.Func().Params(recv).Id("String").Params().String().Block(
			jen.Return(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit(m.Variant+"(%v)"),
				jen.Id(r.vrecv).Dot("Value"),
			)),
		)

	case model.Equal:
		buf.Func().Params(recv).Id("Equal").Params(jen.Id("other").Add(r.fieldType())).Bool().Block(
			jen.List(jen.Id("o"), jen.Id("ok")).Op(":=").Id("other").Assert(r.variantType(m)),
			jen.Return(jen.Id("ok").Op("&&").Qual("reflect", "DeepEqual").Call(
				jen.Id(r.vrecv).Dot("Value"),
				jen.Id("o").Dot("Value"),
			)),
		)

	case model.JSON:
		buf.Func().Params(recv).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
			jen.Return(jen.Qual("encoding/json", "Marshal").Call(tagged(r, m))),
		)

	case model.YAML:
		buf.Func().Params(recv).Id("MarshalYAML").Params().Params(jen.Any(), jen.Error()).Block(
			jen.Return(tagged(r, m), jen.Nil()),
		)

	case model.Msgpack:
		buf.Func().Params(recv).Id("EncodeMsgpack").
			Params(jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder")).Error().
			Block(
				jen.Return(jen.Id("enc").Dot("Encode").Call(tagged(r, m))),
			)
	}
}

// decoder describes how one encoding decodes the tagged form.
type decoder struct {
	capability model.Capability
	suffix     string
	// raw is the value type of the map the document is first decoded into.
	raw func() *jen.Statement
	// unmarshal decodes src into dst.
	unmarshal func(src, dst jen.Code) *jen.Statement
	// remarshal turns a raw value back into bytes before decoding the
	// payload, for encodings without a raw message type.
	remarshal func(value jen.Code) *jen.Statement
}

var decoders = []decoder{
	{
		capability: model.JSON,
		suffix:     "JSON",
		raw:        func() *jen.Statement { return jen.Qual("encoding/json", "RawMessage") },
		unmarshal: func(src, dst jen.Code) *jen.Statement {
			return jen.Qual("encoding/json", "Unmarshal").Call(src, dst)
		},
	},
	{
		capability: model.YAML,
		suffix:     "YAML",
		raw:        func() *jen.Statement { return jen.Any() },
		unmarshal: func(src, dst jen.Code) *jen.Statement {
			return jen.Qual(yamlPkg, "Unmarshal").Call(src, dst)
		},
		remarshal: func(value jen.Code) *jen.Statement {
			return jen.Qual(yamlPkg, "Marshal").Call(value)
		},
	},
	{
		capability: model.Msgpack,
		suffix:     "Msgpack",
		raw:        func() *jen.Statement { return jen.Qual(msgpackPkg, "RawMessage") },
		unmarshal: func(src, dst jen.Code) *jen.Statement {
			return jen.Qual(msgpackPkg, "Unmarshal").Call(src, dst)
		},
	},
}

// DecoderName is the name of the generated decoder of fieldType for an
// encoding suffix, e.g. UnmarshalTestFieldJSON.
func DecoderName(fieldType, suffix string) string {
	return "Unmarshal" + fieldType + suffix
}

// nestedDecoder is the decoder of a flattened member's field type, keeping
// its package qualifier and type arguments.
func nestedDecoder(m parse.Member, suffix string) ast.Expr {
	rename := func(name string) string { return DecoderName(name, suffix) }
	switch t := m.Type.(type) {
	case *ast.Ident:
		return ast.NewIdent(rename(t.Name))
	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: t.X, Sel: ast.NewIdent(rename(t.Sel.Name))}
	case *ast.IndexExpr:
		inner := m
		inner.Type = t.X
		return &ast.IndexExpr{X: nestedDecoder(inner, suffix), Index: t.Index}
	case *ast.IndexListExpr:
		inner := m
		inner.Type = t.X
		return &ast.IndexListExpr{X: nestedDecoder(inner, suffix), Indices: t.Indices}
	default:
		return m.Type
	}
}

func writeDecoders(buf *jen.File, r *record) {
	for _, d := range decoders {
		if r.in.Options.Has(d.capability) {
			writeDecoder(buf, r, d)
		}
	}
}

func returnErr() *jen.Statement {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
}

func writeDecoder(buf *jen.File, r *record, d decoder) {
	name := DecoderName(r.in.Name, d.suffix)
	buf.Comment(fmt.Sprintf("%s decodes a %s from its %s form, a single entry keyed by", name, r.in.Name, d.suffix))
	buf.Comment("the variant name.")
	buf.Func().Add(r.declare(name)).
		Params(jen.Id("data").Index().Byte()).
		Params(r.fieldType(), jen.Error()).
		BlockFunc(func(grp *jen.Group) {
			grp.Var().Id("raw").Map(jen.String()).Add(d.raw())
			grp.If(
				jen.Err().Op(":=").Add(d.unmarshal(jen.Id("data"), jen.Op("&").Id("raw"))),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err()))

			// with no members the value is never read
			value := "value"
			if len(r.in.Members) == 0 {
				value = "_"
			}
			grp.List(jen.Id("name"), jen.Id(value), jen.Err()).Op(":=").Qual(FieldsPkg, "Single").Call(jen.Id("raw"))
			grp.Add(returnErr())

			payload := jen.Id("value")
			if d.remarshal != nil && len(r.in.Members) > 0 {
				grp.List(jen.Id("payload"), jen.Err()).Op(":=").Add(d.remarshal(jen.Id("value")))
				grp.Add(returnErr())
				payload = jen.Id("payload")
			}

			grp.Switch(jen.Id("name")).BlockFunc(func(sw *jen.Group) {
				for _, m := range r.in.Members {
					sw.Case(jen.Lit(m.Variant)).BlockFunc(func(c *jen.Group) {
						if m.Flatten {
							c.List(jen.Id("field"), jen.Err()).Op(":=").
								Add(typeCode(nestedDecoder(m, d.suffix), r.in.Imports)).Call(payload)
							c.Add(returnErr())
							c.Return(r.wrap(m, jen.Id("field")), jen.Nil())
							return
						}
						c.Var().Id(r.vrecv).Add(r.variantType(m))
						c.If(
							jen.Err().Op(":=").Add(d.unmarshal(payload, jen.Op("&").Id(r.vrecv).Dot("Value"))),
							jen.Err().Op("!=").Nil(),
						).Block(jen.Return(jen.Nil(), jen.Err()))
						c.Return(jen.Id(r.vrecv), jen.Nil())
					})
				}
			})
			grp.Return(jen.Nil(), jen.Op("&").Qual(FieldsPkg, "UnknownFieldError").Values(jen.Dict{
				jen.Id("Type"): jen.Lit(r.in.Name),
				jen.Id("Name"): jen.Id("name"),
			}))
		})
	buf.Line()
}
