// Package main implements fieldgen, a code generator for field-level access
// to Go structs.
//
// For each selected struct R, fieldgen generates a sealed field type
// (RField by default) with one variant per member, and methods on R to set
// members through it and to enumerate them:
//   - Set and SetAll to apply field updates
//   - IntoAll to list every member as a field
//   - All, with the all option, to iterate over a snapshot of the members
//
// Usage:
//
//	fieldgen [flags] <package-dir> [<type-name>...]
//
// Flags:
//
//	-output <path>
//	    Location where generated fields will be written (default: fields_gen.go in the package)
//	-package <name>
//	    Name of package to use in output file (default: the package's name)
//	-config <path>
//	    Project file to read (default: the nearest fieldgen.toml)
//	-verify
//	    Do not write; fail when the file on disk is out of date
//	-no-color
//	    Never color diagnostics
//
// Example:
//
//	//go:generate go run github.com/ecordell/fieldgen -output=fields_gen.go .
//
// Directive Format:
//
// Types are selected and configured with //fields: lines in their doc comment:
//   - name = "X" - name of the generated field type
//   - derive(fmt.Stringer, Equal, json, yaml, msgpack) - capabilities of the field type
//   - visibility(priv, pub, pub(path)) - members to keep, by visibility
//   - flatten(member, ...) - members to flatten into their own fields
//   - all - also generate All
//
// Example struct:
//
//	//fields: derive(json), all
//	type Config struct {
//	    Name    string
//	    Address Address `fields:"flatten"`
//	    secret  string  `fields:"scope=internal/auth"`
//	}
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ecordell/fieldgen/internal/config"
	"github.com/ecordell/fieldgen/internal/diag"
	"github.com/ecordell/fieldgen/internal/emit"
	"github.com/ecordell/fieldgen/internal/load"
	"github.com/ecordell/fieldgen/internal/parse"
	"github.com/ecordell/fieldgen/internal/verify"
)

// options are the resolved settings of one run.
type options struct {
	dir     string
	output  string
	pkgName string
	types   []string
	verify  bool
	noColor bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		var stale *verify.StaleError
		if errors.As(err, &stale) {
			fmt.Fprint(os.Stderr, stale.Error())
			os.Exit(1)
		}
		diag.NewPrinter(os.Stderr, opts.noColor).Print(err)
		os.Exit(1)
	}
}

// parseArgs layers command-line flags over the project file and the
// defaults.
func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("fieldgen", flag.ContinueOnError)
	outputPathFlag := fs.String(
		"output",
		"",
		"Location where generated fields will be written",
	)
	pkgNameFlag := fs.String(
		"package",
		"",
		"Name of package to use in output file",
	)
	configFlag := fs.String(
		"config",
		"",
		"Path to a "+config.FileName+" project file",
	)
	verifyFlag := fs.Bool(
		"verify",
		false,
		"Fail with a diff instead of writing when the output file is out of date",
	)
	noColorFlag := fs.Bool(
		"no-color",
		false,
		"Disable colored diagnostics",
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, errors.New("must specify a package directory")
	}

	dir := fs.Arg(0)
	cfg, err := config.ForPackage(dir, *configFlag)
	if err != nil {
		return nil, err
	}

	opts := &options{
		dir:     dir,
		output:  cfg.OutputPath(dir),
		pkgName: cfg.Package,
		types:   cfg.Types,
		verify:  *verifyFlag,
		noColor: cfg.NoColor || *noColorFlag,
	}
	if *outputPathFlag != "" {
		opts.output = *outputPathFlag
	}
	if *pkgNameFlag != "" {
		opts.pkgName = *pkgNameFlag
	}
	if fs.NArg() > 1 {
		opts.types = fs.Args()[1:]
	}
	return opts, nil
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	generated, err := generate(ctx, opts, stdout)
	if err != nil {
		return err
	}
	if opts.verify {
		return verify.Check(opts.output, generated)
	}
	if err := os.WriteFile(opts.output, generated, 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", opts.output, err)
	}
	return nil
}

// generate renders the selected definitions of the package. Nothing is
// returned unless every definition parsed.
func generate(ctx context.Context, opts *options, stdout io.Writer) ([]byte, error) {
	pkg, err := load.Load(ctx, opts.dir)
	if err != nil {
		return nil, err
	}
	defs, err := pkg.Select(opts.types...)
	if err != nil {
		return nil, err
	}

	packageName := pkg.Name
	if opts.pkgName != "" {
		packageName = opts.pkgName
	}

	parser := pkg.Parser(defs...)
	inputs := make([]*parse.Input, 0, len(defs))
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		in, err := parser.Parse(def)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
		names = append(names, in.Record)
	}

	fmt.Fprintf(stdout, "Generating fields for %s.%s...\n", packageName, strings.Join(names, ", "))

	var buf bytes.Buffer
	if err := emit.Render(&buf, pkg.PkgPath, packageName, inputs); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
