package testdata

// Container is a generic container type
//
//fields:
type Container[T any] struct {
	Value T
}

// Pair is a generic type with two type parameters
//
//fields: derive(fmt.Stringer)
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// GenericConfig demonstrates various generic field types
//
//fields:
type GenericConfig struct {
	StringContainer Container[string] `fields:"flatten"`
	StringIntPair   Pair[string, int]
	Containers      []Container[string]
	ContainerMap    map[string]Container[int]
}
