package testdata

// Mode is not a struct
//
//fields:
type Mode int

// Shape is an interface
//
//fields:
type Shape interface {
	Area() float64
}

// Alias is an alias
//
//fields:
type Alias = struct{ X int }

// Flat flattens a member that is not a struct
//
//fields:
type Flat struct {
	Mode Mode `fields:"flatten"`
}

// Builtin flattens a predeclared type
//
//fields:
type Builtin struct {
	Count int `fields:"flatten"`
}

// Missing flattens a member it does not have
//
//fields: flatten(Nope)
type Missing struct {
	Name string
}

// Incompatible needs decoders its flattened member does not derive
//
//fields: derive(json)
type Incompatible struct {
	Inner Inner `fields:"flatten"`
}

// Inner derives nothing
//
//fields:
type Inner struct {
	Value string
}

// Orphan flattens a struct that is never generated
//
//fields:
type Orphan struct {
	Loose Loose `fields:"flatten"`
}

// Loose has no directive
type Loose struct {
	Value string
}
