package vcs

import (
	"bufio"
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

// CLI is the fallback client wrapping the git binary. It inherits the
// user's full git configuration (hooks, credential helpers, SSH agent),
// which the in-process client cannot, so anything go-git refuses is
// retried here.
type CLI struct{}

// NewCLI creates the process-based client
func NewCLI() *CLI {
	return &CLI{}
}

// Name identifies the client
func (c *CLI) Name() string { return "git-cli" }

// Capabilities reports supported operations
func (c *CLI) Capabilities() Capabilities {
	return Capabilities{Stage: true, Commit: true, Push: true, Diff: true}
}

// Status returns the three-bucket change listing
func (c *CLI) Status(repo models.RepoInfo) (*StatusSnapshot, error) {
	output, err := c.run(repo.Path, "status", "--porcelain=v2", "--untracked-files=all")
	if err != nil {
		return nil, err
	}

	snapshot := &StatusSnapshot{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case '1':
			staged, unstaged := parseOrdinaryEntry(repo.Path, line)
			if staged != nil {
				snapshot.Staged = append(snapshot.Staged, *staged)
			}
			if unstaged != nil {
				snapshot.Unstaged = append(snapshot.Unstaged, *unstaged)
			}
		case '2':
			if rec := parseRenamedEntry(repo.Path, line); rec != nil {
				snapshot.Staged = append(snapshot.Staged, *rec)
			}
		case 'u':
			if path := parseUnmergedEntry(line); path != "" {
				snapshot.Unstaged = append(snapshot.Unstaged,
					models.NewChangeRecord(filepath.Join(repo.Path, path), models.ChangeConflict, models.CategoryUnstaged))
			}
		case '?':
			if len(line) > 2 {
				snapshot.Untracked = append(snapshot.Untracked,
					models.NewChangeRecord(filepath.Join(repo.Path, line[2:]), models.ChangeUntracked, models.CategoryUntracked))
			}
		case '!':
			if len(line) > 2 {
				snapshot.Unstaged = append(snapshot.Unstaged,
					models.NewChangeRecord(filepath.Join(repo.Path, line[2:]), models.ChangeIgnored, models.CategoryUnstaged))
			}
		}
	}

	return snapshot, scanner.Err()
}

// Stage marks the given files for the next commit
func (c *CLI) Stage(repo models.RepoInfo, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	args := []string{"add", "--"}
	for _, path := range paths {
		rel, err := relativeTo(repo.Path, path)
		if err != nil {
			return err
		}
		args = append(args, rel)
	}

	_, err := c.run(repo.Path, args...)
	return err
}

// Commit creates a commit from staged content and returns its short hash
func (c *CLI) Commit(repo models.RepoInfo, message string, amend bool) (string, error) {
	args := []string{"commit", "-m", message}
	if amend {
		args = append(args, "--amend")
	}

	if _, err := c.run(repo.Path, args...); err != nil {
		return "", err
	}

	hash, err := c.run(repo.Path, "rev-parse", "--short", "HEAD")
	if err != nil {
		// Commit succeeded; the missing hash is cosmetic
		return "", nil
	}
	return strings.TrimSpace(hash), nil
}

// Push updates the remote tracking branch
func (c *CLI) Push(repo models.RepoInfo) error {
	_, err := c.run(repo.Path, "push")
	return err
}

// Diff returns the unified diff between HEAD and the working-tree copy
// of one file
func (c *CLI) Diff(repo models.RepoInfo, path string) (string, error) {
	rel, err := relativeTo(repo.Path, path)
	if err != nil {
		return "", err
	}
	return c.run(repo.Path, "diff", "HEAD", "--", rel)
}

// run executes a git command in the repository
func (c *CLI) run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &GitError{
			Client:  c.Name(),
			Command: strings.Join(args, " "),
			Output:  stderr.String(),
		}
	}
	return stdout.String(), nil
}

// parseOrdinaryEntry parses a porcelain v2 ordinary entry.
// Format: 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
// A path with both index and worktree changes yields two records.
func parseOrdinaryEntry(root, line string) (staged, unstaged *models.ChangeRecord) {
	parts := strings.SplitN(line, " ", 9)
	if len(parts) < 9 {
		return nil, nil
	}

	xy := parts[1]
	abs := filepath.Join(root, parts[8])

	if xy[0] != '.' {
		rec := models.NewChangeRecord(abs, indexCharToChangeType(xy[0]), models.CategoryStaged)
		staged = &rec
	}
	if xy[1] != '.' {
		rec := models.NewChangeRecord(abs, worktreeCharToChangeType(xy[1]), models.CategoryUnstaged)
		unstaged = &rec
	}
	return staged, unstaged
}

// parseRenamedEntry parses a porcelain v2 renamed/copied entry.
// Format: 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path><tab><origPath>
func parseRenamedEntry(root, line string) *models.ChangeRecord {
	parts := strings.SplitN(line, " ", 10)
	if len(parts) < 10 {
		return nil
	}

	pathPair := strings.SplitN(parts[9], "\t", 2)
	if len(pathPair) < 2 {
		return nil
	}

	changeType := models.ChangeRenamed
	if parts[8][0] == 'C' {
		changeType = models.ChangeCopied
	}

	rec := models.NewChangeRecord(filepath.Join(root, pathPair[0]), changeType, models.CategoryStaged)
	rec.OldPath = filepath.Join(root, pathPair[1])
	return &rec
}

// parseUnmergedEntry parses a porcelain v2 unmerged entry.
// Format: u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
func parseUnmergedEntry(line string) string {
	parts := strings.SplitN(line, " ", 11)
	if len(parts) < 11 {
		return ""
	}
	return parts[10]
}

// indexCharToChangeType maps a porcelain index status char to a ChangeType
func indexCharToChangeType(c byte) models.ChangeType {
	switch c {
	case 'A':
		return models.ChangeAdded
	case 'D':
		return models.ChangeDeleted
	case 'R':
		return models.ChangeRenamed
	case 'C':
		return models.ChangeCopied
	case 'U':
		return models.ChangeConflict
	default:
		return models.ChangeModified
	}
}

// worktreeCharToChangeType maps a porcelain worktree status char to a ChangeType
func worktreeCharToChangeType(c byte) models.ChangeType {
	switch c {
	case 'A':
		// git add --intent-to-add shows up as a worktree-side addition
		return models.ChangeIntentToAdd
	case 'D':
		return models.ChangeDeleted
	case 'U':
		return models.ChangeConflict
	default:
		return models.ChangeModified
	}
}
