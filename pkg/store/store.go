// Package store provides scene persistence backends.
//
// This package defines an interface for scene storage with implementations
// for different backends:
//   - file: JSON files in a directory for CLI workflows
//   - mongo: MongoDB collection for shared scene libraries in serve mode
//
// Scenes are stored by name. Names are plain identifiers, not paths; the
// file backend derives filenames from them and rejects anything that would
// escape its directory.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a named scene does not exist.
	ErrNotFound = errors.New("scene not found")

	// ErrInvalidName is returned when a scene name is empty or contains
	// path separators.
	ErrInvalidName = errors.New("invalid scene name")
)

// Store is the interface for scene storage backends.
type Store interface {
	// Load retrieves a scene by name.
	// Returns ErrNotFound if no scene with that name exists.
	Load(ctx context.Context, name string) (*scene.Scene, error)

	// Save stores a scene under the given name, replacing any existing one.
	Save(ctx context.Context, name string, s *scene.Scene) error

	// List returns the names of all stored scenes in ascending order.
	List(ctx context.Context) ([]string, error)

	// Delete removes a named scene. Deleting a missing scene is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// ValidateName checks that a scene name is usable as a storage key.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return ErrInvalidName
	}
	return nil
}
