package parse

import (
	"go/ast"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VariantName converts a member name to upper camel case: "valid" becomes
// "Valid", "user_id" becomes "UserId" and "maxRetries" becomes "MaxRetries".
// Existing capitals are kept, so "ID" stays "ID".
func VariantName(name string) string {
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(title.String(part))
	}
	return b.String()
}

// PositionalName is the variant name of the embedded member at index.
func PositionalName(index int) string {
	return "Field" + strconv.Itoa(index)
}

// embeddedName returns the implicit field name of an embedded type.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	case *ast.ParenExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

// splitTypeArgs separates an instantiated type into its base and arguments.
func splitTypeArgs(expr ast.Expr) (ast.Expr, []ast.Expr) {
	switch t := expr.(type) {
	case *ast.IndexExpr:
		return t.X, []ast.Expr{t.Index}
	case *ast.IndexListExpr:
		return t.X, t.Indices
	default:
		return expr, nil
	}
}

func withTypeArgs(base ast.Expr, args []ast.Expr) ast.Expr {
	switch len(args) {
	case 0:
		return base
	case 1:
		return &ast.IndexExpr{X: base, Index: args[0]}
	default:
		return &ast.IndexListExpr{X: base, Indices: args}
	}
}
