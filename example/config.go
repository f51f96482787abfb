package example

//go:generate go run github.com/ecordell/fieldgen -output=fields_gen.go .

// Config represents a configuration struct for testing fieldgen
//
//fields: derive(fmt.Stringer, Equal, json, yaml, msgpack), all
type Config struct {
	Name    string
	Port    int
	Tags    []string
	Address Address  `fields:"flatten"`
	Backup  *Address `fields:"flatten"`
}

// Address is flattened into Config
//
//fields: derive(fmt.Stringer, Equal, json, yaml, msgpack), all
type Address struct {
	Host string
	Port int
}

// Server represents another test struct
//
//fields: name = "ServerOption", visibility(pub, pub(internal/secrets))
type Server struct {
	Host    string
	Port    int
	Cert    string `fields:"scope=internal/secrets"`
	key     string
	Workers int
}

// Pair is a generic record
//
//fields: derive(Stringer)
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
