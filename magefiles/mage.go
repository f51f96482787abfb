//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

// Default target runs tests
var Default = Test.All

// CI runs all checks for continuous integration. Generated files are
// verified before linting so a stale example is reported as such.
func CI() error {
	fmt.Println("Running CI checks...")
	mg.SerialDeps(Gen.Verify, Test.All, Lint.All)
	return nil
}
