// Package fields is the runtime contract implemented by code generated with
// fieldgen. A record R annotated with //fields: gets a sealed field type F
// with one variant per member, and implements Fields[F] and IntoAller[F].
package fields

import (
	"fmt"
	"iter"
)

// Fields is implemented by a record that can be updated one member at a time
// through its field type F.
type Fields[F any] interface {
	Set(field F)
	SetAll(updates ...F)
}

// AllFields is implemented by records generated with the all option.
type AllFields[F any] interface {
	Fields[F]
	All() iter.Seq[F]
}

// IntoAller is implemented by every generated record.
type IntoAller[F any] interface {
	IntoAll() []F
}

// Apply sets every field yielded by seq on dst, in order.
func Apply[F any](dst Fields[F], seq iter.Seq[F]) {
	for field := range seq {
		dst.Set(field)
	}
}

// Copy sets every member of src on dst.
func Copy[F any](dst Fields[F], src IntoAller[F]) {
	dst.SetAll(src.IntoAll()...)
}

// UnknownFieldError is returned by generated decoders for a variant name the
// field type does not have.
type UnknownFieldError struct {
	Type string
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for %s", e.Name, e.Type)
}

// Single returns the only entry of raw, the externally tagged form of a
// field. Any other number of entries is an error.
func Single[V any](raw map[string]V) (string, V, error) {
	var zero V
	if len(raw) != 1 {
		return "", zero, fmt.Errorf("expected a single field entry, found %d", len(raw))
	}
	for name, value := range raw {
		return name, value, nil
	}
	return "", zero, nil
}
