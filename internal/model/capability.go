package model

import "sort"

// Capability is something a generated field type can be derived with.
type Capability int

const (
	Stringer Capability = iota + 1
	Equal
	JSON
	YAML
	Msgpack
)

var capabilityPaths = map[string]Capability{
	"fmt.Stringer":                      Stringer,
	"Stringer":                          Stringer,
	"String":                            Stringer,
	"Equal":                             Equal,
	"encoding/json":                     JSON,
	"json":                              JSON,
	"github.com/goccy/go-yaml":          YAML,
	"yaml":                              YAML,
	"github.com/vmihailenco/msgpack/v5": Msgpack,
	"msgpack":                           Msgpack,
}

// LookupCapability resolves a derive path.
func LookupCapability(path string) (Capability, bool) {
	c, ok := capabilityPaths[path]
	return c, ok
}

// KnownCapabilities lists the canonical derive paths.
func KnownCapabilities() []string {
	out := []string{
		Stringer.String(),
		Equal.String(),
		JSON.String(),
		YAML.String(),
		Msgpack.String(),
	}
	sort.Strings(out)
	return out
}

// String returns the canonical path of c.
func (c Capability) String() string {
	switch c {
	case Stringer:
		return "fmt.Stringer"
	case Equal:
		return "Equal"
	case JSON:
		return "encoding/json"
	case YAML:
		return "github.com/goccy/go-yaml"
	case Msgpack:
		return "github.com/vmihailenco/msgpack/v5"
	default:
		return "unknown"
	}
}

// Decodes reports whether c generates a decoder. A flattened member must
// provide the same decoder on its own field type.
func (c Capability) Decodes() bool {
	return c == JSON || c == YAML || c == Msgpack
}
