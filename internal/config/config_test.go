package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	want := &Config{Output: "fields_gen.go"}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr string
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    &Config{Output: "fields_gen.go"},
		},
		{
			name: "all keys",
			content: `output = "gen/fields.go"
package = "gen"
types = ["Config", "Address"]
no_color = true
`,
			want: &Config{
				Output:  "gen/fields.go",
				Package: "gen",
				Types:   []string{"Config", "Address"},
				NoColor: true,
			},
		},
		{
			name:    "unknown key",
			content: `outptu = "x.go"`,
			wantErr: `unknown key "outptu"`,
		},
		{
			name:    "malformed",
			content: `output = `,
			wantErr: "failed to parse TOML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)

			got, err := Load(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/m\n")
	writeFile(t, filepath.Join(root, FileName), "")
	pkg := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(pkg, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(pkg)
	if err != nil || !ok {
		t.Fatalf("Find() = %q, %v, %v", path, ok, err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("Find() = %q, want %q", path, filepath.Join(root, FileName))
	}
}

func TestFindStopsAtModuleRoot(t *testing.T) {
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, FileName), "")
	inner := filepath.Join(outer, "module")
	writeFile(t, filepath.Join(inner, "go.mod"), "module example.com/m\n")

	if path, ok, err := Find(inner); err != nil || ok {
		t.Errorf("Find() = %q, %v, %v, want no file", path, ok, err)
	}
}

func TestForPackage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/m\n")

	cfg, err := ForPackage(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("ForPackage() without file mismatch (-want +got):\n%s", diff)
	}

	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, `package = "custom"`)
	cfg, err = ForPackage(dir, explicit)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package != "custom" || cfg.Output != "fields_gen.go" {
		t.Errorf("ForPackage() = %+v", cfg)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := &Config{Output: "fields_gen.go"}
	if got, want := cfg.OutputPath("pkg"), filepath.Join("pkg", "fields_gen.go"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	abs := filepath.Join(t.TempDir(), "out.go")
	cfg.Output = abs
	if got := cfg.OutputPath("pkg"); got != abs {
		t.Errorf("OutputPath() = %q, want %q", got, abs)
	}
}
