package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeBlank(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab", "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.in); !errors.Is(err, ErrEmptyPath) {
				t.Errorf("Normalize(%q) error = %v, want ErrEmptyPath", tt.in, err)
			}
		})
	}
}

func TestNormalizeExistingDir(t *testing.T) {
	dir := t.TempDir()

	got, err := Normalize(dir + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", dir, got, want)
	}
}

func TestNormalizeMissingTargetKeepsExpandedForm(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	got, err := Normalize(missing)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got != missing {
		t.Errorf("Normalize(%q) = %q, want unchanged", missing, got)
	}
}

func TestNormalizeTilde(t *testing.T) {
	got, err := Normalize("~")
	if err != nil {
		t.Fatalf("Normalize(~) error = %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	wantPrefix, _ := filepath.EvalSymlinks(home)
	if got != wantPrefix && got != home {
		t.Errorf("Normalize(~) = %q, want %q", got, home)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	dir := t.TempDir()
	once, err := Normalize(dir)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Normalize(once)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("Normalize not idempotent: %q -> %q", once, twice)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	if got := DataDir(); got != "/custom/data" {
		t.Errorf("DataDir() = %q, want /custom/data", got)
	}
	want := filepath.Join("/custom/data", AppDirName, "state.json")
	if got := StatePath(); got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
}

func TestListDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Zeta", "alpha", "Beta"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o700); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	entries, err := ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("ListDirectory() returned %d entries, want 4", len(entries))
	}
	wantOrder := []string{"alpha", "Beta", "notes.txt", "Zeta"}
	for i, want := range wantOrder {
		if entries[i].Name != want {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].Name, want)
		}
	}
	if !entries[0].IsDir {
		t.Error("alpha should be a directory")
	}
	if entries[2].IsDir {
		t.Error("notes.txt should not be a directory")
	}
	if entries[0].ModDate == nil {
		t.Error("mod date missing for readable entry")
	}
}

func TestDetectProjects(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "proj")
	nested := filepath.Join(project, "sub", "deep")
	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, "go.mod"), []byte("module x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(project, "sub", ".git"), 0o700); err != nil {
		t.Fatal(err)
	}

	roots := DetectProjects(nested)
	if len(roots) < 2 {
		t.Fatalf("DetectProjects() = %v, want at least sub and proj", roots)
	}
	if roots[0].Path != filepath.Join(project, "sub") || roots[0].Marker != ".git" {
		t.Errorf("nearest root = %+v, want sub/.git", roots[0])
	}
	if roots[1].Path != project || roots[1].Marker != "go.mod" {
		t.Errorf("second root = %+v, want proj/go.mod", roots[1])
	}
}
