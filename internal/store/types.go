package store

import "github.com/google/uuid"

// DefaultTagColor is the color assigned to a tag when none is given.
const DefaultTagColor = "#0a84ff"

// RecentLimit is the default cap on the recents collection; the oldest
// entries are evicted once the cap is exceeded.
const RecentLimit = 100

// Windows-per-profile bounds.
const (
	MinWindows = 1
	MaxWindows = 10
)

// RecentEntry records one recently opened directory.
type RecentEntry struct {
	Path          string `json:"path"`
	LastOpenedUTC int64  `json:"last_opened_utc"` // unix seconds
}

// TaggedPath is a user-assigned colored tag on a directory.
// A path may carry many tags; (path, tag) is unique, with the tag
// compared case-insensitively.
type TaggedPath struct {
	Path  string `json:"path"`
	Tag   string `json:"tag"`
	Color string `json:"color"`
}

// LaunchProfile is a reusable terminal launch configuration.
type LaunchProfile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Command    *string   `json:"command"`
	WorkingDir *string   `json:"working_dir"`
	Terminal   *string   `json:"terminal"`
	Windows    int       `json:"windows"`
}

// ProfileInput carries the caller-supplied fields for SaveProfile.
// Nil optionals take their defaults: a fresh ID, Windows = 1.
type ProfileInput struct {
	ID         *uuid.UUID
	Name       string
	Command    *string
	WorkingDir *string
	Terminal   *string
	Windows    *int
}

// persistedState is the on-disk document. All keys are optional on
// read; absent collections default to empty.
type persistedState struct {
	Favorites []string        `json:"favorites"`
	Recents   []RecentEntry   `json:"recents"`
	Tags      []TaggedPath    `json:"tags"`
	Profiles  []LaunchProfile `json:"profiles"`
}
