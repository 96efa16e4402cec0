package selection

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

const defaultFilePerms = 0o600
const defaultDirPerms = 0o755

// FileStore persists selections as JSON files, one per repository, under
// a base directory (the user config dir in production). Every mutation
// writes through immediately; there is no batching and no cache, so
// readers always see the last written value.
//
// Concurrent commit flows against the same repository interleave writes
// to the same file. That race is tolerated, not guarded: the UI issues
// one commit sequence at a time.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at baseDir
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// DefaultDir returns the production selection directory
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attqc", "selections"), nil
}

// selectionFile is the persisted form of one repository's selection
type selectionFile struct {
	Key   string   `json:"key"`
	Paths []string `json:"paths"`
}

// Get returns the ordered selection for the repository
func (s *FileStore) Get(repo models.RepoInfo) []string {
	paths, _ := s.load(repo)
	return paths
}

// Toggle flips a path in or out of the selection
func (s *FileStore) Toggle(repo models.RepoInfo, path string) error {
	paths, err := s.load(repo)
	if err != nil {
		return err
	}
	return s.save(repo, toggle(paths, path))
}

// Set includes or excludes a path explicitly
func (s *FileStore) Set(repo models.RepoInfo, path string, included bool) error {
	paths, err := s.load(repo)
	if err != nil {
		return err
	}

	updated := set(paths, path, included)
	if len(updated) == len(paths) && included == contains(paths, path) {
		// Already in the requested state
		return nil
	}
	return s.save(repo, updated)
}

// Clear empties the selection
func (s *FileStore) Clear(repo models.RepoInfo) error {
	err := os.Remove(s.path(repo))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// load reads the selection file; a missing file is an empty selection
func (s *FileStore) load(repo models.RepoInfo) ([]string, error) {
	data, err := os.ReadFile(s.path(repo))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return []string{}, err
	}

	var file selectionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return []string{}, err
	}
	if file.Paths == nil {
		return []string{}, nil
	}
	return file.Paths, nil
}

// save writes the selection file, creating the directory on first use
func (s *FileStore) save(repo models.RepoInfo, paths []string) error {
	if err := os.MkdirAll(s.baseDir, defaultDirPerms); err != nil {
		return err
	}

	data, err := json.Marshal(selectionFile{Key: Key(repo), Paths: paths})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(repo), data, defaultFilePerms)
}

// path maps a repository to its selection file
func (s *FileStore) path(repo models.RepoInfo) string {
	return filepath.Join(s.baseDir, sanitizeKey(Key(repo))+".json")
}

// sanitizeKey flattens a storage key into a filename
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(strings.Trim(key, "/\\"))
}
