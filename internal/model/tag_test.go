package model

import (
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecordell/fieldgen/internal/diag"
)

func TestParseMemberTag(t *testing.T) {
	pos := token.Position{Filename: "input.go", Line: 7, Column: 14}
	tests := []struct {
		name    string
		literal string
		want    MemberTag
		wantErr string
	}{
		{name: "no tag", literal: "", want: MemberTag{}},
		{name: "other keys", literal: "`json:\"name\"`", want: MemberTag{}},
		{name: "flatten", literal: "`fields:\"flatten\"`", want: MemberTag{Flatten: true}},
		{
			name:    "scope",
			literal: "`json:\"x\" fields:\"scope=internal/auth\"`",
			want:    MemberTag{Scope: "internal/auth"},
		},
		{
			name:    "flatten and scope",
			literal: "`fields:\"flatten,scope=a.b-c\"`",
			want:    MemberTag{Flatten: true, Scope: "a.b-c"},
		},
		{name: "interpreted literal", literal: `"fields:\"flatten\""`, want: MemberTag{Flatten: true}},
		{name: "empty value", literal: "`fields:\"\"`", want: MemberTag{}},
		{name: "unknown item", literal: "`fields:\"flat\"`", wantErr: `unknown fields tag option "flat"`},
		{name: "bad scope", literal: "`fields:\"scope=a/.b\"`", wantErr: `malformed scope in fields tag: "scope=a/.b"`},
		{name: "empty scope", literal: "`fields:\"scope=\"`", wantErr: `malformed scope in fields tag: "scope="`},
		{name: "malformed tag", literal: "`fields:flatten`", wantErr: "malformed struct tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMemberTag(tt.literal, pos)
			if tt.wantErr != "" {
				d, ok := diag.As(err)
				if !ok {
					t.Fatalf("ParseMemberTag() error = %v, want a diagnostic", err)
				}
				if d.Pos != pos {
					t.Errorf("Pos = %s, want %s", d.Pos, pos)
				}
				if len(d.Msg) < len(tt.wantErr) || d.Msg[:len(tt.wantErr)] != tt.wantErr {
					t.Errorf("Msg = %q, want prefix %q", d.Msg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMemberTag() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMemberTag() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseScopePath(t *testing.T) {
	tests := []struct {
		src     string
		want    string
		wantErr bool
	}{
		{src: "internal/auth", want: "internal/auth"},
		{src: "internal / auth", want: "internal/auth"},
		{src: "crate.super", want: "crate.super"},
		{src: "go-yaml/v3", want: "go-yaml/v3"},
		{src: "type/func", want: "type/func"},
		{src: "", wantErr: true},
		{src: "a/", wantErr: true},
		{src: "a b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ParseScopePath(tt.src, token.Position{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScopePath(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseScopePath(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	for path, want := range map[string]Capability{
		"fmt.Stringer":  Stringer,
		"String":        Stringer,
		"Equal":         Equal,
		"json":          JSON,
		"encoding/json": JSON,
		"yaml":          YAML,
		"msgpack":       Msgpack,
	} {
		got, ok := LookupCapability(path)
		if !ok || got != want {
			t.Errorf("LookupCapability(%q) = %v, %v, want %v", path, got, ok, want)
		}
		if canonical, _ := LookupCapability(got.String()); canonical != want {
			t.Errorf("%v does not round-trip through its canonical path", want)
		}
	}
	if _, ok := LookupCapability("Debug"); ok {
		t.Errorf("LookupCapability(Debug) succeeded")
	}

	want := []string{
		"Equal",
		"encoding/json",
		"fmt.Stringer",
		"github.com/goccy/go-yaml",
		"github.com/vmihailenco/msgpack/v5",
	}
	if diff := cmp.Diff(want, KnownCapabilities()); diff != "" {
		t.Errorf("KnownCapabilities() mismatch (-want +got):\n%s", diff)
	}

	for _, c := range []Capability{JSON, YAML, Msgpack} {
		if !c.Decodes() {
			t.Errorf("%v.Decodes() = false", c)
		}
	}
	if Stringer.Decodes() || Equal.Decodes() {
		t.Errorf("printing capabilities report a decoder")
	}
}

func TestVisibility(t *testing.T) {
	tests := []struct {
		exported bool
		scope    string
		want     Visibility
		str      string
	}{
		{exported: false, want: PrivateVisibility, str: "priv"},
		{exported: true, want: PublicVisibility, str: "pub"},
		{exported: true, scope: "internal/auth", want: RestrictedTo("internal/auth"), str: "pub(internal/auth)"},
		{exported: false, scope: "x", want: RestrictedTo("x"), str: "pub(x)"},
	}
	for _, tt := range tests {
		got := MemberVisibility(tt.exported, tt.scope)
		if !got.Equal(tt.want) {
			t.Errorf("MemberVisibility(%v, %q) = %s, want %s", tt.exported, tt.scope, got, tt.want)
		}
		if got.String() != tt.str {
			t.Errorf("String() = %q, want %q", got.String(), tt.str)
		}
	}
	if RestrictedTo("a").Equal(RestrictedTo("b")) {
		t.Errorf("restricted visibilities with different scopes are equal")
	}
	if PublicVisibility.Equal(RestrictedTo("")) {
		t.Errorf("public equals restricted")
	}
}
