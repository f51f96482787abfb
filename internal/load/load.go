// Package load reads the target package of a generation run and selects the
// definitions to generate for.
package load

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/ecordell/fieldgen/internal/parse"
)

const mode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Package is a loaded package with every type declaration found in its
// hand-written files.
type Package struct {
	Name    string
	PkgPath string
	Fset    *token.FileSet

	// Info is nil when the package did not type-check.
	Info        *types.Info
	Definitions []*parse.Definition
	// ImportNames maps import paths to package names.
	ImportNames map[string]string
}

// Load loads the package in dir. Type errors are tolerated, since the
// generated file the run is about to replace may itself be stale.
func Load(ctx context.Context, dir string) (*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     dir,
		Fset:    token.NewFileSet(),
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: expected one package, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]

	typed := true
	var errs []error
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			typed = false
			continue
		}
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load %s: %w", dir, errors.Join(errs...))
	}

	out := &Package{
		Name:        pkg.Name,
		PkgPath:     pkg.PkgPath,
		Fset:        cfg.Fset,
		ImportNames: make(map[string]string, len(pkg.Imports)),
	}
	if typed {
		out.Info = pkg.TypesInfo
	}
	for path, imp := range pkg.Imports {
		out.ImportNames[path] = imp.Name
	}
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		out.Definitions = append(out.Definitions, Definitions(file)...)
	}
	return out, nil
}

// Definitions returns every type declared at the top level of file, in
// source order.
func Definitions(file *ast.File) []*parse.Definition {
	var found []*parse.Definition
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name != nil {
				found = append(found, &parse.Definition{File: file, Decl: gen, Spec: ts})
			}
		}
	}
	return found
}

// Select returns the definitions to generate for. With no names, every
// definition carrying a directive is selected; otherwise exactly the named
// ones, in the order given.
func (p *Package) Select(names ...string) ([]*parse.Definition, error) {
	if len(names) == 0 {
		var marked []*parse.Definition
		for _, def := range p.Definitions {
			if len(def.Directives(p.Fset)) > 0 {
				marked = append(marked, def)
			}
		}
		if len(marked) == 0 {
			return nil, fmt.Errorf("no //fields: directives found in package %s", p.Name)
		}
		return marked, nil
	}

	byName := make(map[string]*parse.Definition, len(p.Definitions))
	for _, def := range p.Definitions {
		byName[def.Name()] = def
	}
	selected := make([]*parse.Definition, 0, len(names))
	for _, name := range names {
		def, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("type %s not found in package %s", name, p.Name)
		}
		selected = append(selected, def)
	}
	return selected, nil
}

// Parser returns a parser over every definition of the package. When
// selected is given, only those definitions may be flattened into.
func (p *Package) Parser(selected ...*parse.Definition) *parse.Parser {
	parser := parse.NewParser(p.Fset, p.Definitions, p.Info, p.ImportNames)
	if len(selected) > 0 {
		parser.Generating(selected...)
	}
	return parser
}
