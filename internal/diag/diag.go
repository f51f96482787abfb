// Package diag holds the positioned errors produced while reading a
// definition and renders them for the terminal.
package diag

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	// ShapeError reports a definition that is not a struct.
	ShapeError Kind = iota + 1
	// ConfigurationError reports an unknown or malformed directive or tag.
	ConfigurationError
)

func (k Kind) String() string {
	switch k {
	case ShapeError:
		return "shape error"
	case ConfigurationError:
		return "configuration error"
	default:
		return "error"
	}
}

// Error is a generation failure anchored to the offending source position.
type Error struct {
	Kind     Kind
	Pos      token.Position
	Msg      string
	Expected []string
}

// Shape returns a ShapeError at pos.
func Shape(pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: ShapeError, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Config returns a ConfigurationError at pos.
func Config(pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: ConfigurationError, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Expecting records the alternatives that would have been accepted.
func (e *Error) Expecting(alternatives ...string) *Error {
	e.Expected = append(e.Expected, alternatives...)
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Pos.IsValid() {
		b.WriteString(e.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " (expected one of %s)", strings.Join(e.Expected, ", "))
	}
	return b.String()
}

// As reports whether err wraps an *Error and returns it.
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
