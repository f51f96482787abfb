package testdata

// Address contains address information
//
//fields: derive(json), all
type Address struct {
	Street string
	City   string
}

// Config is a configuration with flattened nested struct
//
//fields: derive(json), all
type Config struct {
	Name    string
	Address Address `fields:"flatten"`
	Billing *Address `fields:"flatten"`
}
