// Package search implements the bounded fuzzy directory search: a
// depth-capped, ignore-aware walk that scores directory names against
// a query and returns the best matches. Each call is independent and
// touches only the filesystem.
package search

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sahilm/fuzzy"
)

// Defaults for the walk bounds. Both are heuristics trading
// completeness for predictable cost on large trees.
const (
	DefaultMaxDepth        = 5
	DefaultCandidateFactor = 2
)

// ErrEmptyQuery is returned when the query is empty or blank.
var ErrEmptyQuery = errors.New("query required")

// Options bound the walk. Zero values take the defaults.
type Options struct {
	// MaxDepth is how many levels below the root are visited.
	MaxDepth int
	// CandidateFactor stops the walk once CandidateFactor*limit
	// scored candidates have been collected.
	CandidateFactor int
}

func (o Options) withDefaults() Options {
	if o.MaxDepth < 1 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.CandidateFactor < 1 {
		o.CandidateFactor = DefaultCandidateFactor
	}
	return o
}

// Result is one ranked directory match.
type Result struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ignoreScope is a compiled .gitignore and the directory it governs.
type ignoreScope struct {
	dir     string
	matcher *ignore.GitIgnore
}

// Search walks the tree under root and returns up to limit directories
// whose base name fuzzy-matches query, best score first with ties
// broken by name. Hidden entries and gitignored entries are skipped,
// unreadable entries are skipped silently, and a query matching
// nothing yields an empty result, not an error.
func Search(root, query string, limit int, opts Options) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	opts = opts.withDefaults()
	if limit < 1 {
		limit = 1
	}
	maxCandidates := opts.CandidateFactor * limit

	sep := string(os.PathSeparator)
	var scopes []ignoreScope
	results := []Result{}

	score := func(path, name string) bool {
		matches := fuzzy.Find(query, []string{name})
		if len(matches) == 0 {
			return false
		}
		results = append(results, Result{Path: path, Name: name, Score: matches[0].Score})
		return len(results) >= maxCandidates
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are not an error
		}
		if path == root {
			scopes = appendScope(scopes, root)
			if score(path, filepath.Base(path)) {
				return fs.SkipAll
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if strings.Count(rel, sep)+1 > opts.MaxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		// Drop scopes the walk has left behind.
		for len(scopes) > 0 && !strings.HasPrefix(path, scopes[len(scopes)-1].dir+sep) {
			scopes = scopes[:len(scopes)-1]
		}
		if ignored(scopes, path, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}
		scopes = appendScope(scopes, path)
		if score(path, name) {
			return fs.SkipAll
		}
		return nil
	})

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// appendScope compiles dir's .gitignore, when present, onto the scope
// stack.
func appendScope(scopes []ignoreScope, dir string) []ignoreScope {
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return scopes
	}
	return append(scopes, ignoreScope{dir: dir, matcher: matcher})
}

// ignored reports whether any enclosing .gitignore excludes path.
func ignored(scopes []ignoreScope, path string, isDir bool) bool {
	for _, sc := range scopes {
		rel, err := filepath.Rel(sc.dir, path)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if sc.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}
