package model

import "fmt"

// VisibilityKind is the access class of a member or of a filter entry.
type VisibilityKind int

const (
	Private VisibilityKind = iota
	Public
	Restricted
)

// Visibility is the declared accessibility of a member. Scope is only set
// for Restricted and is compared syntactically.
type Visibility struct {
	Kind  VisibilityKind
	Scope string
}

var (
	PrivateVisibility = Visibility{Kind: Private}
	PublicVisibility  = Visibility{Kind: Public}
)

// RestrictedTo returns a Restricted visibility for the given scope path.
func RestrictedTo(scope string) Visibility {
	return Visibility{Kind: Restricted, Scope: scope}
}

// MemberVisibility derives the visibility class of a struct member from its
// Go name and an optional scope taken from its tag.
func MemberVisibility(exported bool, scope string) Visibility {
	switch {
	case scope != "":
		return RestrictedTo(scope)
	case exported:
		return PublicVisibility
	default:
		return PrivateVisibility
	}
}

// Equal reports whether v and o are the same class. Restricted values match
// only when their scope paths are identical.
func (v Visibility) Equal(o Visibility) bool {
	if v.Kind != o.Kind {
		return false
	}
	return v.Kind != Restricted || v.Scope == o.Scope
}

// String returns the directive spelling of v.
func (v Visibility) String() string {
	switch v.Kind {
	case Private:
		return "priv"
	case Public:
		return "pub"
	case Restricted:
		return fmt.Sprintf("pub(%s)", v.Scope)
	default:
		return fmt.Sprintf("Visibility(%d)", int(v.Kind))
	}
}
