// Package termcore is the thin typed facade consumed by the CLI and
// by foreign hosts. It normalizes every path argument at this boundary
// before forwarding into the store or the search engine, so the inner
// components only ever see canonical keys.
package termcore

import (
	"sync"

	"github.com/google/uuid"

	"github.com/makalin/terminaut/internal/config"
	"github.com/makalin/terminaut/internal/paths"
	"github.com/makalin/terminaut/internal/search"
	"github.com/makalin/terminaut/internal/store"
)

// API forwards calls into the process-wide store and the search
// engine. Construct one with New, or share the process-wide instance
// from Default.
type API struct {
	store      *store.Store
	searchOpts search.Options
}

// New builds an API around an explicit store and search bounds.
func New(st *store.Store, searchOpts search.Options) *API {
	return &API{store: st, searchOpts: searchOpts}
}

// Default returns the process-wide API, built exactly once on first
// use from the settings file and the default state location. A broken
// settings file degrades to defaults rather than failing the process.
var Default = sync.OnceValue(func() *API {
	settings, err := config.Load(paths.SettingsPath())
	if err != nil {
		settings = config.Default()
	}
	st := store.Open(settings.StatePath())
	st.SetRecentLimit(settings.RecentLimit)
	return New(st, settings.SearchOptions())
})

// Store exposes the underlying store, mainly so callers can observe
// LoadErr and PersistErr.
func (a *API) Store() *store.Store { return a.store }

// NormalizePath expands and canonicalizes raw.
func (a *API) NormalizePath(raw string) (string, error) {
	return paths.Normalize(raw)
}

// ListDirectory returns the flat listing of the directory at raw.
func (a *API) ListDirectory(raw string) ([]paths.Entry, error) {
	dir, err := paths.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return paths.ListDirectory(dir)
}

// DetectProjects reports project roots on the ancestor chain of raw.
func (a *API) DetectProjects(raw string) ([]paths.ProjectRoot, error) {
	start, err := paths.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return paths.DetectProjects(start), nil
}

// ListFavorites returns the favorites, sorted.
func (a *API) ListFavorites() []string { return a.store.ListFavorites() }

// AddFavorite marks raw as a favorite.
func (a *API) AddFavorite(raw string) error {
	p, err := paths.Normalize(raw)
	if err != nil {
		return err
	}
	a.store.AddFavorite(p)
	return nil
}

// RemoveFavorite unmarks raw.
func (a *API) RemoveFavorite(raw string) error {
	p, err := paths.Normalize(raw)
	if err != nil {
		return err
	}
	a.store.RemoveFavorite(p)
	return nil
}

// ListRecents returns the recents, newest first.
func (a *API) ListRecents() []store.RecentEntry { return a.store.ListRecents() }

// TouchRecent records raw as just opened.
func (a *API) TouchRecent(raw string) error {
	p, err := paths.Normalize(raw)
	if err != nil {
		return err
	}
	a.store.TouchRecent(p)
	return nil
}

// ListTags returns every tag.
func (a *API) ListTags() []store.TaggedPath { return a.store.ListTags() }

// SetTag upserts a tag on raw; an empty color takes the default.
func (a *API) SetTag(raw, tag, color string) error {
	p, err := paths.Normalize(raw)
	if err != nil {
		return err
	}
	a.store.SetTag(p, tag, color)
	return nil
}

// RemoveTag removes a tag from raw.
func (a *API) RemoveTag(raw, tag string) error {
	p, err := paths.Normalize(raw)
	if err != nil {
		return err
	}
	a.store.RemoveTag(p, tag)
	return nil
}

// TagsFor returns the tags on raw.
func (a *API) TagsFor(raw string) ([]store.TaggedPath, error) {
	p, err := paths.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return a.store.TagsFor(p), nil
}

// ListProfiles returns the launch profiles sorted by name.
func (a *API) ListProfiles() []store.LaunchProfile { return a.store.ListProfiles() }

// SaveProfile validates and upserts a launch profile.
func (a *API) SaveProfile(in store.ProfileInput) (store.LaunchProfile, error) {
	return a.store.SaveProfile(in)
}

// DeleteProfile removes the profile with the given id.
func (a *API) DeleteProfile(id uuid.UUID) error { return a.store.DeleteProfile(id) }

// Search returns up to limit directories under raw ranked by how well
// their name matches query.
func (a *API) Search(raw, query string, limit int) ([]search.Result, error) {
	root, err := paths.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return search.Search(root, query, limit, a.searchOpts)
}
