package verify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{name: "equal", from: "a\nb\n", to: "a\nb\n", want: ""},
		{name: "changed line", from: "a\nb\nc\n", to: "a\nx\nc\n", want: "-b\n+x\n"},
		{name: "added line", from: "a\n", to: "a\nb\n", want: "+b\n"},
		{name: "missing trailing newline", from: "", to: "a", want: "+a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diff(tt.from, tt.to); got != tt.want {
				t.Errorf("Diff() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields_gen.go")

	var stale *StaleError
	if err := Check(path, []byte("package p\n")); !errors.As(err, &stale) {
		t.Fatalf("Check() on missing file = %v, want *StaleError", err)
	}
	if stale.Diff != "+package p\n" {
		t.Errorf("Diff = %q", stale.Diff)
	}

	if err := os.WriteFile(path, []byte("package p\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Check(path, []byte("package p\n")); err != nil {
		t.Errorf("Check() on current file = %v, want nil", err)
	}
	if err := Check(path, []byte("package q\n")); !errors.As(err, &stale) {
		t.Errorf("Check() on stale file = %v, want *StaleError", err)
	}
}
