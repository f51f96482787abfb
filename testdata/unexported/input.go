package testdata

// UnexportedTest generates fields for exported and unexported members
//
//fields: derive(Stringer)
type UnexportedTest struct {
	Host       string
	maxRetries int
	buffer     []byte
	Cache      map[string]any
	id         string
}
