//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

// Example regenerates the example fields
func (Gen) Example() error {
	fmt.Println("Regenerating example fields...")
	return sh.RunV("go", "generate", "./example/...")
}

// Verify checks that the checked-in generated files match their definitions
func (Gen) Verify() error {
	fmt.Println("Verifying generated files are up to date...")
	if err := sh.RunV("go", "run", ".", "-verify", "example"); err != nil {
		return fmt.Errorf("generated files are out of date, run 'mage gen:example': %w", err)
	}

	fmt.Println("Generated files are up to date!")
	return nil
}
