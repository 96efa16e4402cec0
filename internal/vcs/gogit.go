package vcs

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"

	"github.com/go-git/go-git/v5"
)

// GoGit is the in-process client built on go-git. It is the primary
// backend: no git binary required, errors come back as values rather
// than exit codes.
type GoGit struct{}

// NewGoGit creates the go-git backed client
func NewGoGit() *GoGit {
	return &GoGit{}
}

// Name identifies the client
func (c *GoGit) Name() string { return "go-git" }

// Capabilities reports supported operations. Worktree-vs-HEAD diffs are
// left to the CLI client; go-git has no direct equivalent.
func (c *GoGit) Capabilities() Capabilities {
	return Capabilities{Stage: true, Commit: true, Push: true, Diff: false}
}

// Status returns the three-bucket change listing
func (c *GoGit) Status(repo models.RepoInfo) (*StatusSnapshot, error) {
	wt, err := c.worktree(repo)
	if err != nil {
		return nil, err
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("go-git status: %w", err)
	}

	// Map iteration order is random; sort paths so repeated readings of
	// the same underlying state produce the same listing
	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	snapshot := &StatusSnapshot{}
	for _, path := range paths {
		fs := status[path]
		abs := filepath.Join(repo.Path, path)

		if fs.Worktree == git.Untracked {
			snapshot.Untracked = append(snapshot.Untracked,
				models.NewChangeRecord(abs, models.ChangeUntracked, models.CategoryUntracked))
			continue
		}

		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			rec := models.NewChangeRecord(abs, stagingToChangeType(fs.Staging), models.CategoryStaged)
			if fs.Extra != "" {
				rec.OldPath = filepath.Join(repo.Path, fs.Extra)
			}
			snapshot.Staged = append(snapshot.Staged, rec)
		}

		if fs.Worktree != git.Unmodified {
			snapshot.Unstaged = append(snapshot.Unstaged,
				models.NewChangeRecord(abs, worktreeToChangeType(fs.Worktree), models.CategoryUnstaged))
		}
	}

	return snapshot, nil
}

// Stage marks the given files for the next commit
func (c *GoGit) Stage(repo models.RepoInfo, paths []string) error {
	wt, err := c.worktree(repo)
	if err != nil {
		return err
	}

	for _, path := range paths {
		rel, err := relativeTo(repo.Path, path)
		if err != nil {
			return err
		}
		if _, err := wt.Add(rel); err != nil {
			return fmt.Errorf("go-git add %s: %w", rel, err)
		}
	}
	return nil
}

// Commit creates a commit from staged content and returns its short hash
func (c *GoGit) Commit(repo models.RepoInfo, message string, amend bool) (string, error) {
	wt, err := c.worktree(repo)
	if err != nil {
		return "", err
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Amend: amend})
	if err != nil {
		return "", fmt.Errorf("go-git commit: %w", err)
	}
	return hash.String()[:7], nil
}

// Push updates the remote tracking branch
func (c *GoGit) Push(repo models.RepoInfo) error {
	r, err := git.PlainOpen(repo.Path)
	if err != nil {
		return ErrNotRepository
	}

	if err := r.Push(&git.PushOptions{}); err != nil {
		if err == git.NoErrAlreadyUpToDate {
			return nil
		}
		return fmt.Errorf("go-git push: %w", err)
	}
	return nil
}

// Diff is not supported by the in-process client
func (c *GoGit) Diff(repo models.RepoInfo, path string) (string, error) {
	return "", ErrUnsupported
}

func (c *GoGit) worktree(repo models.RepoInfo) (*git.Worktree, error) {
	r, err := git.PlainOpen(repo.Path)
	if err != nil {
		return nil, ErrNotRepository
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("go-git worktree: %w", err)
	}
	return wt, nil
}

// relativeTo converts an absolute path to a repo-relative slash path
func relativeTo(root, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("path %s outside repository %s: %w", path, root, err)
	}
	return filepath.ToSlash(rel), nil
}

// stagingToChangeType maps a go-git index status code to a ChangeType
func stagingToChangeType(code git.StatusCode) models.ChangeType {
	switch code {
	case git.Added:
		return models.ChangeAdded
	case git.Deleted:
		return models.ChangeDeleted
	case git.Renamed:
		return models.ChangeRenamed
	case git.Copied:
		return models.ChangeCopied
	case git.UpdatedButUnmerged:
		return models.ChangeConflict
	default:
		return models.ChangeModified
	}
}

// worktreeToChangeType maps a go-git worktree status code to a ChangeType
func worktreeToChangeType(code git.StatusCode) models.ChangeType {
	switch code {
	case git.Added:
		// Worktree-side "added" is what intent-to-add looks like
		return models.ChangeIntentToAdd
	case git.Deleted:
		return models.ChangeDeleted
	case git.UpdatedButUnmerged:
		return models.ChangeConflict
	default:
		return models.ChangeModified
	}
}
