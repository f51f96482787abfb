package testdata

import (
	"time"
)

// CrossPackage tests cross-package types
//
//fields:
type CrossPackage struct {
	Name      string
	Timestamp time.Time
	Duration  time.Duration
	Timeouts  map[string]time.Duration
}
