// Package model decodes the options attached to a struct definition: the
// //fields: directives in its doc comment and the fields:"..." tags on its
// members.
package model

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/ecordell/fieldgen/internal/diag"
)

// DirectivePrefix starts every directive line in a type's doc comment.
const DirectivePrefix = "//fields:"

var optionKeys = []string{"name", "derive", "visibility", "flatten", "all"}

// Directive is the text following DirectivePrefix on one comment line.
type Directive struct {
	Text string
	Pos  token.Position
}

// Directives collects the directive lines of the given comment groups in
// source order. Nil groups are skipped.
func Directives(fset *token.FileSet, groups ...*ast.CommentGroup) []Directive {
	var out []Directive
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}
			pos := fset.Position(c.Slash)
			pos.Offset += len(DirectivePrefix)
			pos.Column += len(DirectivePrefix)
			out = append(out, Directive{
				Text: strings.TrimPrefix(c.Text, DirectivePrefix),
				Pos:  pos,
			})
		}
	}
	return out
}

// Derive is one entry of derive(...).
type Derive struct {
	Capability Capability
	Path       string
	Pos        token.Position
}

// MemberRef names a member in flatten(...), either by field name or, for
// embedded members, by declaration index.
type MemberRef struct {
	Name  string
	Index int
	Pos   token.Position
}

func (r MemberRef) String() string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(r.Index)
}

// Options is the generation configuration of one struct definition.
type Options struct {
	// Marked is set when the definition carries at least one directive.
	Marked bool

	Name       string
	NamePos    token.Position
	Derives    []Derive
	Visibility []Visibility
	Flatten    []MemberRef
	All        bool
}

// TypeName returns the name of the generated field type for record.
func (o *Options) TypeName(record string) string {
	if o.Name != "" {
		return o.Name
	}
	return record + "Field"
}

// Doc returns the doc comment of the generated field type for record.
func (o *Options) Doc(record string) string {
	return fmt.Sprintf("%s is a field of [%s].", o.TypeName(record), record)
}

// Filter reports whether a member with visibility v is retained.
func (o *Options) Filter(v Visibility) bool {
	if len(o.Visibility) == 0 {
		return true
	}
	for _, want := range o.Visibility {
		if want.Equal(v) {
			return true
		}
	}
	return false
}

// Has reports whether c was derived.
func (o *Options) Has(c Capability) bool {
	for _, d := range o.Derives {
		if d.Capability == c {
			return true
		}
	}
	return false
}

// Capabilities returns the derived capabilities in derive order.
func (o *Options) Capabilities() []Capability {
	out := make([]Capability, 0, len(o.Derives))
	for _, d := range o.Derives {
		out = append(out, d.Capability)
	}
	return out
}

// ParseOptions decodes the given directives into Options. The first
// malformed option aborts decoding.
func ParseOptions(directives []Directive) (*Options, error) {
	opts := &Options{Marked: len(directives) > 0}
	for _, d := range directives {
		lx, err := newLexer(d.Text, d.Pos)
		if err != nil {
			return nil, err
		}
		p := &optionParser{lx: lx, opts: opts}
		if err := p.parse(); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

type optionParser struct {
	lx   *lexer
	opts *Options
}

func (p *optionParser) parse() error {
	if p.lx.accept(token.EOF) {
		return nil
	}
	for {
		if err := p.option(); err != nil {
			return err
		}
		it := p.lx.next()
		switch it.tok {
		case token.EOF:
			return nil
		case token.COMMA:
			continue
		default:
			return diag.Config(p.lx.pos(it.off), "expected \",\" or end of directive, found %s", it)
		}
	}
}

func (p *optionParser) option() error {
	key := p.lx.next()
	pos := p.lx.pos(key.off)
	if key.tok != token.IDENT {
		return diag.Config(pos, "expected option, found %s", key).Expecting(optionKeys...)
	}

	switch key.lit {
	case "name":
		return p.name(pos)
	case "derive":
		return p.list(p.derive)
	case "visibility":
		return p.list(p.visibility)
	case "flatten":
		return p.list(p.member)
	case "all":
		p.opts.All = true
		return nil
	default:
		return diag.Config(pos, "unknown option %q", key.lit).Expecting(optionKeys...)
	}
}

func (p *optionParser) name(pos token.Position) error {
	if p.opts.Name != "" {
		return diag.Config(pos, "duplicate option \"name\", first set at %s", p.opts.NamePos)
	}
	if _, err := p.lx.expect(token.ASSIGN); err != nil {
		return err
	}
	lit, err := p.lx.expect(token.STRING)
	if err != nil {
		return err
	}
	litPos := p.lx.pos(lit.off)
	name, err := strconv.Unquote(lit.lit)
	if err != nil {
		return diag.Config(litPos, "malformed name %s: %v", lit.lit, err)
	}
	if !token.IsIdentifier(name) {
		return diag.Config(litPos, "name %q is not a valid Go identifier", name)
	}
	p.opts.Name = name
	p.opts.NamePos = pos
	return nil
}

// list parses "(" [ elem { "," elem } [ "," ] ] ")".
func (p *optionParser) list(elem func() error) error {
	if _, err := p.lx.expect(token.LPAREN); err != nil {
		return err
	}
	for {
		if p.lx.accept(token.RPAREN) {
			return nil
		}
		if err := elem(); err != nil {
			return err
		}
		it := p.lx.next()
		switch it.tok {
		case token.RPAREN:
			return nil
		case token.COMMA:
			continue
		default:
			return diag.Config(p.lx.pos(it.off), "expected \",\" or \")\", found %s", it)
		}
	}
}

func (p *optionParser) derive() error {
	path, pos, err := p.lx.path()
	if err != nil {
		return err
	}
	c, ok := LookupCapability(path)
	if !ok {
		return diag.Config(pos, "unknown derive %q", path).Expecting(KnownCapabilities()...)
	}
	for _, d := range p.opts.Derives {
		if d.Capability == c {
			return diag.Config(pos, "duplicate derive %q, already derived as %q at %s", path, d.Path, d.Pos)
		}
	}
	p.opts.Derives = append(p.opts.Derives, Derive{Capability: c, Path: path, Pos: pos})
	return nil
}

func (p *optionParser) visibility() error {
	it := p.lx.next()
	pos := p.lx.pos(it.off)
	if it.tok != token.IDENT || (it.lit != "priv" && it.lit != "pub") {
		return diag.Config(pos, "invalid visibility %s", it).Expecting("priv", "pub", "pub(<path>)")
	}

	vis := PrivateVisibility
	if it.lit == "pub" {
		vis = PublicVisibility
		if p.lx.accept(token.LPAREN) {
			scope, _, err := p.lx.path()
			if err != nil {
				return err
			}
			if _, err := p.lx.expect(token.RPAREN); err != nil {
				return err
			}
			vis = RestrictedTo(scope)
		}
	}
	p.opts.Visibility = append(p.opts.Visibility, vis)
	return nil
}

func (p *optionParser) member() error {
	it := p.lx.next()
	pos := p.lx.pos(it.off)
	switch it.tok {
	case token.IDENT:
		p.opts.Flatten = append(p.opts.Flatten, MemberRef{Name: it.lit, Index: -1, Pos: pos})
	case token.INT:
		i, err := strconv.Atoi(it.lit)
		if err != nil {
			return diag.Config(pos, "invalid member index %s", it.lit)
		}
		p.opts.Flatten = append(p.opts.Flatten, MemberRef{Index: i, Pos: pos})
	default:
		return diag.Config(pos, "expected member name or index, found %s", it)
	}
	return nil
}
