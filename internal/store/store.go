// Package store is the single source of truth for favorites, recents,
// tags and launch profiles. The whole aggregate lives behind one mutex
// and is mirrored to a single JSON file: every mutation rewrites the
// file in full, and a write failure is logged and swallowed so the
// in-memory state stays authoritative for the running process.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the persisted state aggregate. Construct it with Open and
// share one instance per process; all methods are safe for concurrent
// use.
type Store struct {
	path string

	mu          sync.Mutex
	state       persistedState
	recentLimit int
	loadErr     error
	persistErr  error

	now func() time.Time
}

// Open loads the state file at path, or starts from an empty aggregate
// when it does not exist. A file that exists but fails to parse does
// not abort: the store starts empty and the failure is kept behind
// LoadErr. Open never returns nil.
func Open(path string) *Store {
	s := &Store{
		path:        path,
		recentLimit: RecentLimit,
		now:         time.Now,
	}
	s.load()
	return s
}

// SetRecentLimit overrides the default recents cap. Values below 1 are
// ignored.
func (s *Store) SetRecentLimit(n int) {
	if n < 1 {
		return
	}
	s.mu.Lock()
	s.recentLimit = n
	s.mu.Unlock()
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// LoadErr reports the initialization failure, if any. A non-nil value
// means the on-disk state existed but could not be read, and the store
// is running on an empty aggregate.
func (s *Store) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// PersistErr reports the most recent persistence failure. Mutations
// never fail on a bad disk write; this is the hook that makes the
// swallowed error observable.
func (s *Store) PersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// --- Favorites ---

// ListFavorites returns the favorites sorted alphabetically.
func (s *Store) ListFavorites() []string {
	s.mu.Lock()
	favs := make([]string, len(s.state.Favorites))
	copy(favs, s.state.Favorites)
	s.mu.Unlock()

	sort.Strings(favs)
	return favs
}

// AddFavorite adds path to the favorites. Adding a path that is
// already present is a no-op.
func (s *Store) AddFavorite(path string) {
	s.mu.Lock()
	changed := false
	if !slices.Contains(s.state.Favorites, path) {
		s.state.Favorites = append(s.state.Favorites, path)
		changed = true
	}
	s.mu.Unlock()

	if changed {
		s.persist()
	}
}

// RemoveFavorite removes path from the favorites. Removing an absent
// path is a no-op.
func (s *Store) RemoveFavorite(path string) {
	s.mu.Lock()
	s.state.Favorites = slices.DeleteFunc(s.state.Favorites, func(p string) bool {
		return p == path
	})
	s.mu.Unlock()

	s.persist()
}

// --- Recents ---

// ListRecents returns the recent entries, most recently opened first.
func (s *Store) ListRecents() []RecentEntry {
	s.mu.Lock()
	recents := make([]RecentEntry, len(s.state.Recents))
	copy(recents, s.state.Recents)
	s.mu.Unlock()

	// Touches append, so reversing before the stable sort lets the
	// later touch win when two entries share a timestamp second.
	slices.Reverse(recents)
	sort.SliceStable(recents, func(i, j int) bool {
		return recents[i].LastOpenedUTC > recents[j].LastOpenedUTC
	})
	return recents
}

// TouchRecent records that path was just opened. Any prior entry for
// the same path is replaced, and the collection is pruned to the
// recents cap, oldest first.
func (s *Store) TouchRecent(path string) {
	s.mu.Lock()
	s.state.Recents = slices.DeleteFunc(s.state.Recents, func(e RecentEntry) bool {
		return e.Path == path
	})
	s.state.Recents = append(s.state.Recents, RecentEntry{
		Path:          path,
		LastOpenedUTC: s.now().Unix(),
	})
	if len(s.state.Recents) > s.recentLimit {
		sort.SliceStable(s.state.Recents, func(i, j int) bool {
			return s.state.Recents[i].LastOpenedUTC > s.state.Recents[j].LastOpenedUTC
		})
		s.state.Recents = s.state.Recents[:s.recentLimit]
	}
	s.mu.Unlock()

	s.persist()
}

// --- Tags ---

// ListTags returns all tags in insertion order.
func (s *Store) ListTags() []TaggedPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]TaggedPath, len(s.state.Tags))
	copy(tags, s.state.Tags)
	return tags
}

// SetTag upserts a tag on path. The (path, tag) pair is the identity,
// with the tag compared case-insensitively: an existing pair only has
// its color replaced. An empty color takes DefaultTagColor.
func (s *Store) SetTag(path, tag, color string) {
	if color == "" {
		color = DefaultTagColor
	}

	s.mu.Lock()
	found := false
	for i := range s.state.Tags {
		e := &s.state.Tags[i]
		if e.Path == path && strings.EqualFold(e.Tag, tag) {
			e.Color = color
			found = true
			break
		}
	}
	if !found {
		s.state.Tags = append(s.state.Tags, TaggedPath{Path: path, Tag: tag, Color: color})
	}
	s.mu.Unlock()

	s.persist()
}

// RemoveTag removes the tag from path, matching the tag name
// case-insensitively.
func (s *Store) RemoveTag(path, tag string) {
	s.mu.Lock()
	s.state.Tags = slices.DeleteFunc(s.state.Tags, func(e TaggedPath) bool {
		return e.Path == path && strings.EqualFold(e.Tag, tag)
	})
	s.mu.Unlock()

	s.persist()
}

// TagsFor returns the tags attached to exactly path.
func (s *Store) TagsFor(path string) []TaggedPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := []TaggedPath{}
	for _, e := range s.state.Tags {
		if e.Path == path {
			tags = append(tags, e)
		}
	}
	return tags
}

// --- Profiles ---

// ListProfiles returns the profiles sorted by name, case-insensitive.
func (s *Store) ListProfiles() []LaunchProfile {
	s.mu.Lock()
	profiles := make([]LaunchProfile, len(s.state.Profiles))
	copy(profiles, s.state.Profiles)
	s.mu.Unlock()

	sort.SliceStable(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].Name) < strings.ToLower(profiles[j].Name)
	})
	return profiles
}

// SaveProfile validates and stores a launch profile. A matching id
// replaces the existing profile in place; otherwise the profile is
// appended under a fresh id (or the supplied one). Windows is clamped
// into [MinWindows, MaxWindows]. Returns the stored record.
func (s *Store) SaveProfile(in ProfileInput) (LaunchProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return LaunchProfile{}, ErrEmptyProfileName
	}

	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	windows := MinWindows
	if in.Windows != nil {
		windows = min(max(*in.Windows, MinWindows), MaxWindows)
	}
	profile := LaunchProfile{
		ID:         id,
		Name:       name,
		Command:    in.Command,
		WorkingDir: in.WorkingDir,
		Terminal:   in.Terminal,
		Windows:    windows,
	}

	s.mu.Lock()
	replaced := false
	for i := range s.state.Profiles {
		if s.state.Profiles[i].ID == id {
			s.state.Profiles[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Profiles = append(s.state.Profiles, profile)
	}
	s.mu.Unlock()

	s.persist()
	return profile, nil
}

// DeleteProfile removes the profile with the given id.
func (s *Store) DeleteProfile(id uuid.UUID) error {
	s.mu.Lock()
	before := len(s.state.Profiles)
	s.state.Profiles = slices.DeleteFunc(s.state.Profiles, func(p LaunchProfile) bool {
		return p.ID == id
	})
	removed := len(s.state.Profiles) != before
	s.mu.Unlock()

	if !removed {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	s.persist()
	return nil
}

// --- Persistence ---

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.loadErr = fmt.Errorf("read state file: %w", err)
			slog.Error("store: failed to read state file", "path", s.path, "error", err)
		}
		return
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.loadErr = &MalformedStateError{Path: s.path, Err: err}
		slog.Error("store: malformed state file, starting empty", "path", s.path, "error", err)
		return
	}
	s.state = state
	slog.Debug("store: state loaded", "path", s.path,
		"favorites", len(state.Favorites), "recents", len(state.Recents),
		"tags", len(state.Tags), "profiles", len(state.Profiles))
}

// persist rewrites the whole state file. The snapshot is taken under
// the mutex; the disk write happens outside it. A failure is logged
// and recorded, never returned: the call that triggered the write has
// already succeeded in memory.
func (s *Store) persist() {
	// Snapshot under the lock, serialize and write outside it. The
	// copies also make absent collections marshal as [] rather than
	// null.
	s.mu.Lock()
	snapshot := persistedState{
		Favorites: append([]string{}, s.state.Favorites...),
		Recents:   append([]RecentEntry{}, s.state.Recents...),
		Tags:      append([]TaggedPath{}, s.state.Tags...),
		Profiles:  append([]LaunchProfile{}, s.state.Profiles...),
	}
	s.mu.Unlock()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.setPersistErr(fmt.Errorf("marshal state: %w", err))
		slog.Error("store: failed to marshal state", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.setPersistErr(fmt.Errorf("create state dir: %w", err))
		slog.Error("store: failed to create state dir", "path", s.path, "error", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.setPersistErr(fmt.Errorf("write state file: %w", err))
		slog.Error("store: failed to write state file", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.setPersistErr(fmt.Errorf("replace state file: %w", err))
		slog.Error("store: failed to replace state file", "path", s.path, "error", err)
		return
	}
	s.setPersistErr(nil)
}

func (s *Store) setPersistErr(err error) {
	s.mu.Lock()
	s.persistErr = err
	s.mu.Unlock()
}
