package model

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/ecordell/fieldgen/internal/diag"
)

type item struct {
	tok token.Token
	lit string
	off int
}

func (it item) String() string {
	switch {
	case it.tok == token.EOF:
		return "end of directive"
	case it.lit != "":
		return fmt.Sprintf("%q", it.lit)
	default:
		return fmt.Sprintf("%q", it.tok.String())
	}
}

// lexer tokenizes the text of a single directive or tag value with
// go/scanner. Offsets are mapped back onto the source through base.
type lexer struct {
	items []item
	i     int
	base  token.Position
}

func newLexer(src string, base token.Position) (*lexer, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, 0)

	lx := &lexer{base: base}
	for {
		pos, tok, lit := s.Scan()
		off := file.Offset(pos)
		if tok == token.EOF {
			lx.items = append(lx.items, item{tok: tok, off: off})
			break
		}
		// automatic semicolon inserted at end of input
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		lx.items = append(lx.items, item{tok: tok, lit: lit, off: off})
	}
	if len(errs) > 0 {
		e := errs[0]
		return nil, diag.Config(lx.pos(e.Pos.Offset), "%s", e.Msg)
	}
	return lx, nil
}

func (lx *lexer) peek() item { return lx.items[lx.i] }

func (lx *lexer) next() item {
	it := lx.items[lx.i]
	if it.tok != token.EOF {
		lx.i++
	}
	return it
}

func (lx *lexer) accept(tok token.Token) bool {
	if lx.peek().tok == tok {
		lx.next()
		return true
	}
	return false
}

func (lx *lexer) expect(tok token.Token) (item, error) {
	it := lx.next()
	if it.tok != tok {
		return it, diag.Config(lx.pos(it.off), "expected %q, found %s", tok.String(), it)
	}
	return it, nil
}

// pos maps an offset in the lexed text to a source position. Directives
// and tags are single-line, so only the column moves.
func (lx *lexer) pos(off int) token.Position {
	p := lx.base
	if p.IsValid() {
		p.Offset += off
		p.Column += off
	}
	return p
}

func isSegment(it item) bool {
	return it.tok == token.IDENT || it.tok == token.INT || it.tok.IsKeyword()
}

func isSeparator(tok token.Token) bool {
	return tok == token.QUO || tok == token.PERIOD || tok == token.SUB
}

// path reads segment { sep segment } and returns it joined without
// whitespace.
func (lx *lexer) path() (string, token.Position, error) {
	first := lx.next()
	start := lx.pos(first.off)
	if !isSegment(first) {
		return "", start, diag.Config(start, "expected path, found %s", first)
	}

	var b strings.Builder
	b.WriteString(first.lit)
	for isSeparator(lx.peek().tok) {
		sep := lx.next()
		seg := lx.next()
		if !isSegment(seg) {
			return "", start, diag.Config(lx.pos(seg.off), "expected path segment after %q, found %s", sep.tok.String(), seg)
		}
		b.WriteString(sep.tok.String())
		b.WriteString(seg.lit)
	}
	return b.String(), start, nil
}

// ParseScopePath validates a scope path and returns its canonical spelling.
func ParseScopePath(src string, pos token.Position) (string, error) {
	lx, err := newLexer(src, pos)
	if err != nil {
		return "", err
	}
	path, _, err := lx.path()
	if err != nil {
		return "", err
	}
	if it := lx.peek(); it.tok != token.EOF {
		return "", diag.Config(lx.pos(it.off), "unexpected %s after scope path", it)
	}
	return path, nil
}
