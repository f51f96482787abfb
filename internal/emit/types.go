package emit

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/fatih/structtag"

	"github.com/ecordell/fieldgen/internal/parse"
)

// typeCode converts an AST type expression to jen.Code, qualifying package
// selectors through the resolver of the file that declared it.
func typeCode(expr ast.Expr, resolver *parse.ImportResolver) *jen.Statement {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)
	case *ast.StarExpr:
		return jen.Op("*").Add(typeCode(t.X, resolver))
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			return jen.Qual(resolver.Resolve(pkg.Name), t.Sel.Name)
		}
		return jen.Op(types.ExprString(t))
	case *ast.ParenExpr:
		return jen.Parens(typeCode(t.X, resolver))
	case *ast.ArrayType:
		elt := typeCode(t.Elt, resolver)
		if t.Len == nil {
			return jen.Index().Add(elt)
		}
		return jen.Index(typeCode(t.Len, resolver)).Add(elt)
	case *ast.Ellipsis:
		return jen.Op("...").Add(typeCode(t.Elt, resolver))
	case *ast.BasicLit:
		return jen.Op(t.Value)
	case *ast.MapType:
		return jen.Map(typeCode(t.Key, resolver)).Add(typeCode(t.Value, resolver))
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return jen.Chan().Op("<-").Add(typeCode(t.Value, resolver))
		case ast.RECV:
			return jen.Op("<-").Chan().Add(typeCode(t.Value, resolver))
		default:
			return jen.Chan().Add(typeCode(t.Value, resolver))
		}
	case *ast.FuncType:
		return jen.Func().Add(signatureCode(t, resolver))
	case *ast.InterfaceType:
		return jen.InterfaceFunc(func(grp *jen.Group) {
			for _, field := range t.Methods.List {
				if ft, ok := field.Type.(*ast.FuncType); ok && len(field.Names) > 0 {
					grp.Id(field.Names[0].Name).Add(signatureCode(ft, resolver))
					continue
				}
				grp.Add(typeCode(field.Type, resolver))
			}
		})
	case *ast.StructType:
		return jen.StructFunc(func(grp *jen.Group) {
			for _, field := range t.Fields.List {
				grp.Add(fieldCode(field, resolver))
			}
		})
	case *ast.IndexExpr:
		return typeCode(t.X, resolver).Types(typeCode(t.Index, resolver))
	case *ast.IndexListExpr:
		args := make([]jen.Code, 0, len(t.Indices))
		for _, index := range t.Indices {
			args = append(args, typeCode(index, resolver))
		}
		return typeCode(t.X, resolver).Types(args...)
	case *ast.UnaryExpr:
		// ~T in constraints
		return jen.Op(t.Op.String()).Add(typeCode(t.X, resolver))
	case *ast.BinaryExpr:
		// A | B in constraints
		if t.Op == token.OR {
			return typeCode(t.X, resolver).Op("|").Add(typeCode(t.Y, resolver))
		}
		return jen.Op(types.ExprString(t))
	default:
		return jen.Op(types.ExprString(expr))
	}
}

// signatureCode renders the parameters and results of a function type.
func signatureCode(ft *ast.FuncType, resolver *parse.ImportResolver) *jen.Statement {
	stmt := jen.Params(fieldListCode(ft.Params, resolver)...)
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return stmt
	}
	if len(ft.Results.List) == 1 && len(ft.Results.List[0].Names) == 0 {
		return stmt.Add(typeCode(ft.Results.List[0].Type, resolver))
	}
	return stmt.Params(fieldListCode(ft.Results, resolver)...)
}

func fieldListCode(list *ast.FieldList, resolver *parse.ImportResolver) []jen.Code {
	if list == nil {
		return nil
	}
	out := make([]jen.Code, 0, len(list.List))
	for _, field := range list.List {
		out = append(out, fieldCode(field, resolver))
	}
	return out
}

// fieldCode renders "a, b T" or an embedded "T", keeping struct tags.
func fieldCode(field *ast.Field, resolver *parse.ImportResolver) *jen.Statement {
	var stmt *jen.Statement
	if len(field.Names) == 0 {
		stmt = typeCode(field.Type, resolver)
	} else {
		names := make([]jen.Code, 0, len(field.Names))
		for _, name := range field.Names {
			names = append(names, jen.Id(name.Name))
		}
		stmt = jen.List(names...).Add(typeCode(field.Type, resolver))
	}
	if field.Tag != nil {
		if tags := tagMap(field.Tag.Value); len(tags) > 0 {
			stmt = stmt.Tag(tags)
		}
	}
	return stmt
}

func tagMap(literal string) map[string]string {
	raw, err := strconv.Unquote(literal)
	if err != nil {
		return nil
	}
	tags, err := structtag.Parse(raw)
	if err != nil || tags == nil {
		return nil
	}
	out := make(map[string]string, tags.Len())
	for _, tag := range tags.Tags() {
		out[tag.Key] = tag.Value()
	}
	return out
}

// typeParams renders the declaration and the instantiation of a type
// parameter list, e.g. [K comparable, V any] and [K, V].
func typeParams(list *ast.FieldList, resolver *parse.ImportResolver) (decl, args []jen.Code) {
	if list == nil {
		return nil, nil
	}
	for _, field := range list.List {
		for i, name := range field.Names {
			args = append(args, jen.Id(name.Name))
			if i == len(field.Names)-1 {
				decl = append(decl, jen.Id(name.Name).Add(typeCode(field.Type, resolver)))
			} else {
				decl = append(decl, jen.Id(name.Name))
			}
		}
	}
	return decl, args
}
