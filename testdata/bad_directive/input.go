package testdata

// BadVisibility lists an unknown visibility
//
//fields: visibility(public)
type BadVisibility struct {
	Name string
}

// BadOption lists an unknown option
//
//fields: derive(json), flaten(Name)
type BadOption struct {
	Name string
}

// BadTag carries an unknown tag option
//
//fields:
type BadTag struct {
	Name string `fields:"flaten"`
}

// Collide has two members with the same variant
//
//fields:
type Collide struct {
	Max_Retries int
	MaxRetries  int
}

// Toggle has members named like its generated methods
//
//fields: all
type Toggle struct {
	Enabled bool
	All     bool
}

// Setter keeps only unexported members, yet Set still clashes with the
// generated method
//
//fields: visibility(priv)
type Setter struct {
	Name string
	set  string
	Set  string
}
