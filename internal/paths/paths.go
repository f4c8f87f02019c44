// Package paths holds the path plumbing shared by every surface:
// normalization, the per-user data directory, flat directory listing
// and ancestor project-root detection.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// AppDirName is the subdirectory under the per-user data directory
// that holds all persisted files.
const AppDirName = "Terminaut"

// ErrEmptyPath is returned when a path argument is empty or blank.
var ErrEmptyPath = errors.New("empty path")

// Normalize expands ~ and canonicalizes raw into the absolute path
// used as the equality key everywhere. When the target does not exist
// the expanded absolute form is returned as-is.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyPath
	}

	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		expanded = trimmed
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		abs = expanded
	}

	if canonical, err := filepath.EvalSymlinks(abs); err == nil {
		return canonical, nil
	}
	return abs, nil
}

// DataDir returns the per-user data directory, honoring XDG_DATA_HOME
// before the platform default. Falls back to the current directory
// when no home can be resolved.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := homedir.Dir()
	if err != nil {
		return "."
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support")
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(home, "AppData", "Roaming")
	default:
		return filepath.Join(home, ".local", "share")
	}
}

// StatePath returns the default location of the persisted state file.
func StatePath() string {
	return filepath.Join(DataDir(), AppDirName, "state.json")
}

// SettingsPath returns the default location of the settings file.
func SettingsPath() string {
	return filepath.Join(DataDir(), AppDirName, "settings.json5")
}

// Entry is one item of a flat directory listing.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	// Modification time as unix seconds, when available.
	ModDate *int64 `json:"mod_date,omitempty"`
}

// ListDirectory returns the entries of dir sorted by name,
// case-insensitive. Entries whose metadata cannot be read are listed
// without a mod date rather than dropped.
func ListDirectory(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{
			Name:  de.Name(),
			Path:  filepath.Join(dir, de.Name()),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			mod := info.ModTime().Unix()
			e.ModDate = &mod
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

// ProjectRoot is a detected project directory and the marker file that
// identified it.
type ProjectRoot struct {
	Path   string `json:"path"`
	Marker string `json:"marker"`
}

// projectMarkers identify a directory as a project root. The first
// marker present wins per ancestor.
var projectMarkers = []string{".git", "package.json", "Cargo.toml", "go.mod", "bunfig.toml"}

// DetectProjects walks from start up through its ancestors and reports
// every directory carrying a project marker, nearest first.
func DetectProjects(start string) []ProjectRoot {
	roots := []ProjectRoot{}
	for dir := start; ; dir = filepath.Dir(dir) {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				roots = append(roots, ProjectRoot{Path: dir, Marker: marker})
				break
			}
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	return roots
}
