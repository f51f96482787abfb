// Package verify compares a freshly generated file with the copy on disk.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StaleError reports a generated file that does not match its definitions.
type StaleError struct {
	Path string
	// Diff is a line diff from the file on disk to the generated output.
	Diff string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s is out of date; regenerate it:\n%s", e.Path, e.Diff)
}

// Check returns a *StaleError when the file at path is missing or differs
// from generated.
func Check(path string, generated []byte) error {
	current, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &StaleError{Path: path, Diff: Diff("", string(generated))}
	}
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if bytes.Equal(current, generated) {
		return nil
	}
	return &StaleError{Path: path, Diff: Diff(string(current), string(generated))}
}

// Diff renders a line diff of from and to, prefixing removed lines with "-"
// and added lines with "+". Unchanged lines are omitted.
func Diff(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}
