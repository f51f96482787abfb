package testdata

import "time"

// Base is embedded in Embedded
type Base struct {
	ID int
}

// Embedded mixes embedded and named members
//
//fields:
type Embedded struct {
	Base
	*time.Location
	_    int
	a, b string
}
