package testdata

// DeriveTest derives every capability
//
//fields: derive(fmt.Stringer, Equal)
//fields: derive(encoding/json, yaml, github.com/vmihailenco/msgpack/v5)
type DeriveTest struct {
	Name string
	ID   int
}

// Empty has no members
//
//fields: derive(json, yaml)
type Empty struct{}
