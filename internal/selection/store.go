// Package selection tracks which files the user has marked for the next
// commit, one ordered set per repository root.
package selection

import (
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

// keyPrefix namespaces selection entries in the backing store
const keyPrefix = "selected-files:"

// Store persists per-repository file selections. All mutations are
// idempotent with respect to final state: toggling twice restores the
// original set, setting an already-set value is a no-op.
type Store interface {
	// Get returns the ordered selection for the repository (never nil)
	Get(repo models.RepoInfo) []string

	// Toggle flips a path in or out of the selection
	Toggle(repo models.RepoInfo, path string) error

	// Set includes or excludes a path explicitly
	Set(repo models.RepoInfo, path string, included bool) error

	// Clear empties the selection
	Clear(repo models.RepoInfo) error
}

// Key returns the storage key for a repository's selection
func Key(repo models.RepoInfo) string {
	return keyPrefix + repo.Path
}

// toggle returns paths with path added if absent, removed if present.
// Insertion order is preserved.
func toggle(paths []string, path string) []string {
	if contains(paths, path) {
		return remove(paths, path)
	}
	return append(paths, path)
}

// set returns paths with path present or absent per included
func set(paths []string, path string, included bool) []string {
	if included {
		if contains(paths, path) {
			return paths
		}
		return append(paths, path)
	}
	return remove(paths, path)
}

func contains(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}

func remove(paths []string, path string) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != path {
			result = append(result, p)
		}
	}
	return result
}

// MemoryStore is an in-memory Store for tests and dry-run mode
type MemoryStore struct {
	selections map[string][]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selections: make(map[string][]string)}
}

// Get returns the ordered selection for the repository
func (s *MemoryStore) Get(repo models.RepoInfo) []string {
	paths := s.selections[Key(repo)]
	result := make([]string, len(paths))
	copy(result, paths)
	return result
}

// Toggle flips a path in or out of the selection
func (s *MemoryStore) Toggle(repo models.RepoInfo, path string) error {
	key := Key(repo)
	s.selections[key] = toggle(s.selections[key], path)
	return nil
}

// Set includes or excludes a path explicitly
func (s *MemoryStore) Set(repo models.RepoInfo, path string, included bool) error {
	key := Key(repo)
	s.selections[key] = set(s.selections[key], path, included)
	return nil
}

// Clear empties the selection
func (s *MemoryStore) Clear(repo models.RepoInfo) error {
	delete(s.selections, Key(repo))
	return nil
}
