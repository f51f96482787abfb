package testdata

// BasicConfig is a simple struct for testing basic field types
//
//fields:
type BasicConfig struct {
	Name    string
	Port    int
	Enabled bool
	Timeout *int
}

// Untouched has no directive and is only generated when named.
type Untouched struct {
	Value string
}
