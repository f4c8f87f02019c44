package store

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyProfileName is returned by SaveProfile when the name is
	// blank after trimming.
	ErrEmptyProfileName = errors.New("profile name required")

	// ErrProfileNotFound is returned by DeleteProfile for an unknown id.
	ErrProfileNotFound = errors.New("profile not found")
)

// MalformedStateError reports a state file that exists but does not
// parse. The store falls back to an empty aggregate; the error stays
// retrievable through LoadErr.
type MalformedStateError struct {
	Path string
	Err  error
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("malformed state file %s: %v", e.Path, e.Err)
}

func (e *MalformedStateError) Unwrap() error { return e.Err }
