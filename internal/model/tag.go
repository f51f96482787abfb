package model

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/fatih/structtag"

	"github.com/ecordell/fieldgen/internal/diag"
)

// TagKey is the struct tag key read on members.
const TagKey = "fields"

// MemberTag holds the options of a fields:"..." struct tag.
type MemberTag struct {
	Flatten bool
	Scope   string
}

// ParseMemberTag decodes the fields tag from a raw tag literal, as found in
// ast.Field.Tag.Value. A missing tag or missing fields key yields the zero
// MemberTag.
func ParseMemberTag(literal string, pos token.Position) (MemberTag, error) {
	var mt MemberTag
	if literal == "" {
		return mt, nil
	}
	raw, err := strconv.Unquote(literal)
	if err != nil {
		return mt, diag.Config(pos, "malformed struct tag %s: %v", literal, err)
	}
	tags, err := structtag.Parse(raw)
	if err != nil {
		return mt, diag.Config(pos, "malformed struct tag %s: %v", literal, err)
	}
	if tags == nil {
		return mt, nil
	}
	tag, err := tags.Get(TagKey)
	if err != nil {
		// no fields key
		return mt, nil
	}

	for _, opt := range append([]string{tag.Name}, tag.Options...) {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == "flatten":
			mt.Flatten = true
		case strings.HasPrefix(opt, "scope="):
			scope, err := ParseScopePath(strings.TrimPrefix(opt, "scope="), token.Position{})
			if err != nil {
				return mt, diag.Config(pos, "malformed scope in %s tag: %q", TagKey, opt)
			}
			mt.Scope = scope
		default:
			return mt, diag.Config(pos, "unknown %s tag option %q", TagKey, opt).Expecting("flatten", "scope=<path>")
		}
	}
	return mt, nil
}
