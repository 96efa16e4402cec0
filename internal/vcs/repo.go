package vcs

import (
	"os"
	"path/filepath"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"

	"github.com/go-git/go-git/v5"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// GetRepoInfo opens a repository and gets basic info
func GetRepoInfo(path, displayName string) (*models.RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, ErrNotRepository
	}

	branch := ""
	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branch = head.Name().Short()
		} else {
			// Detached HEAD
			branch = head.Hash().String()[:7]
		}
	}

	info := models.NewRepoInfo(path, displayName, branch)
	return &info, nil
}

// Discover finds the repository root containing path by walking up the
// directory tree
func Discover(path string) (*models.RepoInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	current := abs
	for {
		if IsGitRepo(current) {
			return GetRepoInfo(current, filepath.Base(current))
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, ErrNotRepository
		}
		current = parent
	}
}

// GetCurrentRepoInfo gets info for the current working directory
func GetCurrentRepoInfo() (*models.RepoInfo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Discover(cwd)
}
