package vcs

import (
	"errors"
	"strings"
)

// Error types for client operations.
var (
	// ErrNotRepository indicates the path is not a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNothingToCommit indicates there are no staged changes to commit.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrUnsupported indicates the client does not implement the operation.
	ErrUnsupported = errors.New("operation not supported by this client")
)

// GitError provides better context for git command failures
type GitError struct {
	Client  string
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return e.Client + ": git " + e.Command + ": " + strings.TrimSpace(e.Output)
}
