// Package parse turns a struct definition into the normalized Input the
// emitter works from: the retained members in declaration order, with their
// variant names and value types.
package parse

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/ecordell/fieldgen/internal/diag"
	"github.com/ecordell/fieldgen/internal/model"
)

// Definition is a named type declaration found in a package.
type Definition struct {
	File *ast.File
	Decl *ast.GenDecl
	Spec *ast.TypeSpec
}

// Name returns the declared type name.
func (d *Definition) Name() string {
	return d.Spec.Name.Name
}

// Directives returns the //fields: lines attached to the definition. The
// enclosing declaration's doc counts only when it declares this type alone.
func (d *Definition) Directives(fset *token.FileSet) []model.Directive {
	groups := []*ast.CommentGroup{d.Spec.Doc}
	if d.Decl != nil && len(d.Decl.Specs) == 1 {
		groups = append([]*ast.CommentGroup{d.Decl.Doc}, groups...)
	}
	return model.Directives(fset, groups...)
}

// Member is one retained member of a struct.
type Member struct {
	// Access is the selector used on an instance: the field name, or the
	// implicit name of an embedded field.
	Access string
	Index  int
	Named  bool

	Variant string
	// Type is the payload type of the variant. For a flattened member it is
	// the member's own generated field type.
	Type ast.Expr
	// Declared is the member's type as written.
	Declared ast.Expr

	Flatten bool
	// Pointer is set when a flattened member is declared as *T.
	Pointer bool

	Visibility model.Visibility
	Pos        token.Position
}

// Input is a parsed definition, ready for emission.
type Input struct {
	Options    *model.Options
	Record     string
	Name       string
	TypeParams *ast.FieldList
	Members    []Member
	Imports    *ImportResolver
	Pos        token.Position
}

// Generic reports whether the record declares type parameters.
func (in *Input) Generic() bool {
	return in.TypeParams != nil && len(in.TypeParams.List) > 0
}

// Parser parses definitions of a single package.
type Parser struct {
	fset        *token.FileSet
	locals      map[string]*Definition
	info        *types.Info
	importNames map[string]string

	options   map[string]*model.Options
	resolvers map[*ast.File]*ImportResolver

	// generated names the definitions of this run. When nil, every
	// definition carrying a directive is assumed generated.
	generated map[string]bool
}

// NewParser returns a Parser for a package made of defs. info may be nil,
// in which case flattened members of other packages are resolved by naming
// convention. importNames maps import paths to package names.
func NewParser(fset *token.FileSet, defs []*Definition, info *types.Info, importNames map[string]string) *Parser {
	p := &Parser{
		fset:        fset,
		locals:      make(map[string]*Definition, len(defs)),
		info:        info,
		importNames: importNames,
		options:     make(map[string]*model.Options),
		resolvers:   make(map[*ast.File]*ImportResolver),
	}
	for _, def := range defs {
		p.locals[def.Name()] = def
	}
	return p
}

// Generating records that exactly defs are generated together, so only they
// may be flattened into.
func (p *Parser) Generating(defs ...*Definition) {
	p.generated = make(map[string]bool, len(defs))
	for _, def := range defs {
		p.generated[def.Name()] = true
	}
}

func (p *Parser) generates(def *Definition) bool {
	if p.generated != nil {
		return p.generated[def.Name()]
	}
	return len(def.Directives(p.fset)) > 0
}

// Options decodes the directives of def, caching the result.
func (p *Parser) Options(def *Definition) (*model.Options, error) {
	if opts, ok := p.options[def.Name()]; ok {
		return opts, nil
	}
	opts, err := model.ParseOptions(def.Directives(p.fset))
	if err != nil {
		return nil, err
	}
	p.options[def.Name()] = opts
	return opts, nil
}

func (p *Parser) resolver(file *ast.File) *ImportResolver {
	if r, ok := p.resolvers[file]; ok {
		return r
	}
	r := NewImportResolver(file, p.importNames)
	p.resolvers[file] = r
	return r
}

func (p *Parser) pos(pos token.Pos) token.Position {
	return p.fset.Position(pos)
}

// declared is a member as written, before filtering.
type declared struct {
	name     string
	named    bool
	index    int
	typ      ast.Expr
	tag      model.MemberTag
	exported bool
	pos      token.Pos
}

// Parse validates def and returns its Input.
func (p *Parser) Parse(def *Definition) (*Input, error) {
	st, err := p.shape(def)
	if err != nil {
		return nil, err
	}

	opts, err := p.Options(def)
	if err != nil {
		return nil, err
	}

	all, err := p.declaredMembers(st)
	if err != nil {
		return nil, err
	}

	flattened, err := p.flattenRefs(opts, all)
	if err != nil {
		return nil, err
	}

	record := def.Name()
	in := &Input{
		Options:    opts,
		Record:     record,
		Name:       opts.TypeName(record),
		TypeParams: def.Spec.TypeParams,
		Imports:    p.resolver(def.File),
		Pos:        p.pos(def.Spec.Name.Pos()),
	}

	if err := p.methodConflicts(opts, record, all); err != nil {
		return nil, err
	}

	variants := make(map[string]declared)
	for _, d := range all {
		if d.name == "_" {
			continue
		}
		vis := model.MemberVisibility(d.exported, d.tag.Scope)
		if !opts.Filter(vis) {
			continue
		}

		m := Member{
			Access:     d.name,
			Index:      d.index,
			Named:      d.named,
			Type:       d.typ,
			Declared:   d.typ,
			Flatten:    d.tag.Flatten || flattened[d.index],
			Visibility: vis,
			Pos:        p.pos(d.pos),
		}
		if d.named {
			m.Variant = VariantName(d.name)
		}
		if m.Variant == "" {
			m.Variant = PositionalName(d.index)
		}
		if prev, ok := variants[m.Variant]; ok {
			return nil, diag.Config(m.Pos, "members %s and %s of %s both map to variant %s", prev.name, d.name, record, m.Variant)
		}
		variants[m.Variant] = d

		if m.Flatten {
			m.Type, m.Pointer, err = p.project(opts, d)
			if err != nil {
				return nil, err
			}
		}
		in.Members = append(in.Members, m)
	}
	return in, nil
}

// methodConflicts rejects members, retained or not, whose selector is also
// the name of a method generated on the record.
func (p *Parser) methodConflicts(opts *model.Options, record string, all []declared) error {
	methods := []string{"Set", "SetAll", "IntoAll"}
	if opts.All {
		methods = append(methods, "All")
	}
	for _, d := range all {
		if slices.Contains(methods, d.name) {
			return diag.Config(p.pos(d.pos), "member %s of %s conflicts with the generated method %s", d.name, record, d.name)
		}
	}
	return nil
}

func (p *Parser) shape(def *Definition) (*ast.StructType, error) {
	spec := def.Spec
	if spec.Assign.IsValid() {
		return nil, diag.Shape(p.pos(spec.Assign), "alias not supported by fields generator")
	}
	switch t := spec.Type.(type) {
	case *ast.StructType:
		return t, nil
	case *ast.InterfaceType:
		return nil, diag.Shape(p.pos(t.Interface), "union not supported by fields generator")
	default:
		return nil, diag.Shape(p.pos(spec.Type.Pos()), "enum not supported by fields generator")
	}
}

// declaredMembers lists every member of st in declaration order. Indices
// count each name of a multi-name field separately.
func (p *Parser) declaredMembers(st *ast.StructType) ([]declared, error) {
	var out []declared
	if st.Fields == nil {
		return out, nil
	}
	for _, field := range st.Fields.List {
		var tag model.MemberTag
		if field.Tag != nil {
			var err error
			tag, err = model.ParseMemberTag(field.Tag.Value, p.pos(field.Tag.Pos()))
			if err != nil {
				return nil, err
			}
		}

		if len(field.Names) == 0 {
			name := embeddedName(field.Type)
			out = append(out, declared{
				name:     name,
				index:    len(out),
				typ:      field.Type,
				tag:      tag,
				exported: token.IsExported(name),
				pos:      field.Type.Pos(),
			})
			continue
		}
		for _, ident := range field.Names {
			out = append(out, declared{
				name:     ident.Name,
				named:    true,
				index:    len(out),
				typ:      field.Type,
				tag:      tag,
				exported: ident.IsExported(),
				pos:      ident.Pos(),
			})
		}
	}
	return out, nil
}

// flattenRefs resolves the record-level flatten(...) list to member indices.
func (p *Parser) flattenRefs(opts *model.Options, all []declared) (map[int]bool, error) {
	out := make(map[int]bool, len(opts.Flatten))
	for _, ref := range opts.Flatten {
		found := false
		for _, d := range all {
			if (ref.Name != "" && d.named && d.name == ref.Name) || (ref.Name == "" && d.index == ref.Index) {
				out[d.index] = true
				found = true
				break
			}
		}
		if !found {
			return nil, diag.Config(ref.Pos, "flatten: no member %s", ref)
		}
	}
	return out, nil
}

// project computes the payload type of a flattened member: its named type,
// renamed to that type's generated field type.
func (p *Parser) project(opts *model.Options, d declared) (ast.Expr, bool, error) {
	expr := d.typ
	pointer := false
	if star, ok := expr.(*ast.StarExpr); ok {
		pointer = true
		expr = star.X
	}
	base, args := splitTypeArgs(expr)

	switch b := base.(type) {
	case *ast.Ident:
		name, err := p.localFieldType(opts, d, b.Name)
		if err != nil {
			return nil, false, err
		}
		if name == "" {
			if name, err = p.lookupFieldType(d, expr); err != nil {
				return nil, false, err
			}
		}
		if name == "" {
			name = b.Name + "Field"
		}
		return withTypeArgs(ast.NewIdent(name), args), pointer, nil

	case *ast.SelectorExpr:
		name, err := p.lookupFieldType(d, expr)
		if err != nil {
			return nil, false, err
		}
		if name == "" {
			name = b.Sel.Name + "Field"
		}
		sel := &ast.SelectorExpr{X: b.X, Sel: ast.NewIdent(name)}
		return withTypeArgs(sel, args), pointer, nil

	default:
		return nil, false, diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not a named type", d.name, types.ExprString(d.typ))
	}
}

// localFieldType returns the generated field type name of a struct declared
// in the same package, checking that it provides what this record needs.
// It returns "" when name is not a local definition.
func (p *Parser) localFieldType(opts *model.Options, d declared, name string) (string, error) {
	local, ok := p.locals[name]
	if !ok {
		if obj := types.Universe.Lookup(name); obj != nil {
			return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not a struct", d.name, name)
		}
		return "", nil
	}
	if _, isStruct := local.Spec.Type.(*ast.StructType); !isStruct || local.Spec.Assign.IsValid() {
		return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not a struct", d.name, name)
	}
	if !p.generates(local) {
		return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not generated", d.name, name)
	}
	lopts, err := p.Options(local)
	if err != nil {
		return "", err
	}
	if opts.All && !lopts.All {
		return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s does not enable all", d.name, name)
	}
	for _, c := range opts.Capabilities() {
		if c.Decodes() && !lopts.Has(c) {
			return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s does not derive %s", d.name, name, c)
		}
	}
	return lopts.TypeName(name), nil
}

// lookupFieldType uses type information to find the parameter type of the
// Set method of the member's type. It returns "" when nothing is known.
func (p *Parser) lookupFieldType(d declared, expr ast.Expr) (string, error) {
	if p.info == nil {
		return "", nil
	}
	t := p.info.TypeOf(expr)
	if t == nil {
		return "", nil
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not a named type", d.name, t)
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return "", diag.Config(p.pos(d.pos), "cannot flatten member %s: %s is not a struct", d.name, t)
	}

	sel := types.NewMethodSet(types.NewPointer(named)).Lookup(nil, "Set")
	if sel == nil {
		return "", nil
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 {
		return "", nil
	}
	param, ok := types.Unalias(sig.Params().At(0).Type()).(*types.Named)
	if !ok {
		return "", nil
	}
	return param.Obj().Name(), nil
}
