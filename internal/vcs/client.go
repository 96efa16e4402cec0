package vcs

import "github.com/wahlandcase/attuned.quickcommit/internal/models"

// StatusSnapshot is one reading of a repository's pending changes, split
// into the three buckets git reports them under.
type StatusSnapshot struct {
	// Staged are index (cached) changes
	Staged []models.ChangeRecord
	// Unstaged are working-tree changes
	Unstaged []models.ChangeRecord
	// Untracked are files git has never seen
	Untracked []models.ChangeRecord
}

// HasChanges returns true if any bucket is non-empty
func (s *StatusSnapshot) HasChanges() bool {
	return len(s.Staged) > 0 || len(s.Unstaged) > 0 || len(s.Untracked) > 0
}

// Capabilities describes which operations a client supports
type Capabilities struct {
	Stage  bool
	Commit bool
	Push   bool
	Diff   bool
}

// Client is a git backend. Two implementations exist: an in-process one
// built on go-git and a wrapper around the git binary. Callers try them
// in order, so new backends slot in without touching the orchestration.
type Client interface {
	// Name identifies the client in errors and results
	Name() string

	// Capabilities reports which operations the client supports
	Capabilities() Capabilities

	// Status returns the current three-bucket change listing
	Status(repo models.RepoInfo) (*StatusSnapshot, error)

	// Stage marks the given files (absolute paths) for the next commit
	Stage(repo models.RepoInfo, paths []string) error

	// Commit creates a commit from the staged content and returns its
	// short hash. With amend, the previous commit is replaced instead.
	Commit(repo models.RepoInfo, message string, amend bool) (string, error)

	// Push updates the remote tracking branch
	Push(repo models.RepoInfo) error

	// Diff returns the unified diff between HEAD and the working-tree
	// copy of one file (absolute path)
	Diff(repo models.RepoInfo, path string) (string, error)
}
