//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Lint mg.Namespace

// Go runs golangci-lint on the generator and the example
func (Lint) Go() error {
	fmt.Println("Running golangci-lint...")
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Vet runs go vet, which also type-checks the generated example
func (Lint) Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Format fails when any file, generated ones included, is not gofmt'd
func (Lint) Format() error {
	fmt.Println("Checking code formatting...")
	out, err := sh.Output("gofmt", "-l", "-s", ".")
	if err != nil {
		return err
	}
	if files := strings.TrimSpace(out); files != "" {
		return fmt.Errorf("files are not formatted:\n%s", files)
	}
	return nil
}

// Tidy fails when go.mod is not tidy
func (Lint) Tidy() error {
	fmt.Println("Checking go.mod...")
	return sh.RunV("go", "mod", "tidy", "-diff")
}

// All runs all linting checks
func (Lint) All() error {
	mg.Deps(Lint.Go, Lint.Vet, Lint.Format, Lint.Tidy)
	return nil
}
