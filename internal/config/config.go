// Package config loads the optional settings file. Settings only tune
// bounds (search depth, candidate factor, recents cap) and the data
// directory; everything runs on defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/titanous/json5"

	"github.com/makalin/terminaut/internal/paths"
	"github.com/makalin/terminaut/internal/search"
	"github.com/makalin/terminaut/internal/store"
)

// SearchSettings tunes the fuzzy search walk bounds.
type SearchSettings struct {
	MaxDepth        int `json:"max_depth"`
	CandidateFactor int `json:"candidate_factor"`
}

// Settings is the parsed settings file. Zero values mean "use the
// default".
type Settings struct {
	// DataDir overrides the per-user data directory holding state.json.
	DataDir     string         `json:"data_dir"`
	RecentLimit int            `json:"recent_limit"`
	Search      SearchSettings `json:"search"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		RecentLimit: store.RecentLimit,
		Search: SearchSettings{
			MaxDepth:        search.DefaultMaxDepth,
			CandidateFactor: search.DefaultCandidateFactor,
		},
	}
}

// Load reads the settings file at path. A missing file is not an
// error; a file that fails to parse is.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	s := Settings{}
	if err := json5.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s.withDefaults(), nil
}

func (s Settings) withDefaults() Settings {
	def := Default()
	if s.RecentLimit < 1 {
		s.RecentLimit = def.RecentLimit
	}
	if s.Search.MaxDepth < 1 {
		s.Search.MaxDepth = def.Search.MaxDepth
	}
	if s.Search.CandidateFactor < 1 {
		s.Search.CandidateFactor = def.Search.CandidateFactor
	}
	return s
}

// StatePath resolves where the state file lives under these settings.
func (s Settings) StatePath() string {
	if s.DataDir != "" {
		return filepath.Join(s.DataDir, paths.AppDirName, "state.json")
	}
	return paths.StatePath()
}

// SearchOptions converts the settings into walk bounds.
func (s Settings) SearchOptions() search.Options {
	return search.Options{
		MaxDepth:        s.Search.MaxDepth,
		CandidateFactor: s.Search.CandidateFactor,
	}
}
