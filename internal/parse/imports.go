package parse

import (
	"go/ast"
	"path"
	"sort"
	"strconv"
	"strings"
)

// ImportResolver maps package names to their full import paths
type ImportResolver struct {
	pkgToPath map[string]string
	aliased   map[string]bool
}

// NewImportResolver creates an ImportResolver from a file's imports.
// The resolver maps package names to their full import paths, handling both
// standard imports and aliased imports. names maps import paths to the
// declared package name when it is known (from the loader); otherwise the
// name is guessed from the path.
func NewImportResolver(file *ast.File, names map[string]string) *ImportResolver {
	resolver := &ImportResolver{
		pkgToPath: make(map[string]string),
		aliased:   make(map[string]bool),
	}
	if file == nil {
		return resolver
	}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		var pkgName string
		switch {
		case imp.Name != nil:
			pkgName = imp.Name.Name // Aliased import
		case names[importPath] != "":
			pkgName = names[importPath]
		default:
			pkgName = guessPackageName(importPath)
		}
		if pkgName == "_" || pkgName == "." {
			continue
		}

		resolver.pkgToPath[pkgName] = importPath
		resolver.aliased[pkgName] = imp.Name != nil
	}
	return resolver
}

// Resolve returns the full import path for a package name.
// For example, "sql" might resolve to "database/sql".
func (r *ImportResolver) Resolve(pkgName string) string {
	if p, ok := r.pkgToPath[pkgName]; ok {
		return p
	}
	// Fallback for standard library single-component imports
	return pkgName
}

// Each calls fn for every import, in name order.
func (r *ImportResolver) Each(fn func(name, path string, aliased bool)) {
	names := make([]string, 0, len(r.pkgToPath))
	for name := range r.pkgToPath {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, r.pkgToPath[name], r.aliased[name])
	}
}

// guessPackageName follows the usual conventions relating an import path to
// the name of the package: "github.com/vmihailenco/msgpack/v5" is msgpack,
// "gopkg.in/yaml.v3" is yaml and "github.com/goccy/go-yaml" is yaml.
func guessPackageName(importPath string) string {
	base := path.Base(importPath)
	if isMajorVersion(base) {
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}
	if i := strings.Index(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, "-go")
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, base)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
