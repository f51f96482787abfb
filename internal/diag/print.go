package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes errors to a terminal, quoting the offending source line
// with a caret under the reported column.
type Printer struct {
	w       io.Writer
	sources map[string][][]byte

	location *color.Color
	kind     *color.Color
	caret    *color.Color
}

// NewPrinter returns a Printer writing to w. Colors are used only when w is a
// terminal and noColor is false.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:        w,
		sources:  make(map[string][][]byte),
		location: color.New(color.Bold),
		kind:     color.New(color.FgRed, color.Bold),
		caret:    color.New(color.FgGreen, color.Bold),
	}
	if noColor || !isTerminal(w) {
		p.location.DisableColor()
		p.kind.DisableColor()
		p.caret.DisableColor()
	} else {
		p.location.EnableColor()
		p.kind.EnableColor()
		p.caret.EnableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes err. Errors that are not an *Error are written on one line.
func (p *Printer) Print(err error) {
	d, ok := As(err)
	if !ok {
		p.kind.Fprint(p.w, "error")
		fmt.Fprintf(p.w, ": %v\n", err)
		return
	}

	if d.Pos.IsValid() {
		p.location.Fprint(p.w, d.Pos.String())
		fmt.Fprint(p.w, ": ")
	}
	p.kind.Fprint(p.w, d.Kind.String())
	fmt.Fprintf(p.w, ": %s\n", d.Msg)

	if line, ok := p.line(d.Pos.Filename, d.Pos.Line); ok && d.Pos.Column > 0 {
		fmt.Fprintf(p.w, "\t%s\n", line)
		fmt.Fprintf(p.w, "\t%s", indent(line, d.Pos.Column-1))
		p.caret.Fprintln(p.w, "^")
	}
	if len(d.Expected) > 0 {
		fmt.Fprintf(p.w, "\texpected one of: %s\n", strings.Join(d.Expected, ", "))
	}
}

func (p *Printer) line(filename string, n int) ([]byte, bool) {
	if filename == "" || n <= 0 {
		return nil, false
	}
	lines, ok := p.sources[filename]
	if !ok {
		src, err := os.ReadFile(filename)
		if err != nil {
			p.sources[filename] = nil
			return nil, false
		}
		lines = bytes.Split(src, []byte("\n"))
		p.sources[filename] = lines
	}
	if n > len(lines) {
		return nil, false
	}
	return bytes.TrimRight(lines[n-1], "\r"), true
}

// indent reproduces the whitespace layout of the first n bytes of line so
// that a caret printed after it lines up with column n+1.
func indent(line []byte, n int) string {
	if n > len(line) {
		n = len(line)
	}
	var b strings.Builder
	for _, c := range line[:n] {
		if c == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
