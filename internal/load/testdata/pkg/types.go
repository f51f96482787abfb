package pkg

import "time"

// Settings is selected by its directive.
//
//fields: all
type Settings struct {
	Timeout time.Duration
}

// Plain has no directive.
type Plain struct {
	Name string
}

type (
	// Grouped is selected by its own directive.
	//
	//fields:
	Grouped struct{ ID int }
	Other   struct{}
)
