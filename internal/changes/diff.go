package changes

import (
	"fmt"
	"os"
	"strings"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

const (
	// MaxDiffChars caps every diff payload
	MaxDiffChars = 2000
	// MaxNewFileLines caps the synthetic diff for new files
	MaxNewFileLines = 50
	// truncationMarker is appended when output was cut
	truncationMarker = "... (truncated)"
)

// DiffReader renders one file's pending changes as a bounded string.
// Payloads are recomputed per request and never cached.
type DiffReader struct {
	client vcs.Client
}

// NewDiffReader creates a reader backed by the given client. The client
// must support diffing (in practice the CLI client; go-git does not
// diff worktree against HEAD).
func NewDiffReader(client vcs.Client) *DiffReader {
	return &DiffReader{client: client}
}

// Diff returns the diff payload for one change record. New files get a
// synthetic addition-style diff built from their content; everything
// else goes through the client's HEAD-to-worktree diff. Failures
// degrade to a one-line placeholder, never an error.
func (d *DiffReader) Diff(repo models.RepoInfo, rec models.ChangeRecord) string {
	switch rec.Type {
	case models.ChangeAdded, models.ChangeUntracked, models.ChangeIntentToAdd:
		return capChars(d.newFileDiff(rec))
	default:
		output, err := d.client.Diff(repo, rec.Path)
		if err != nil || strings.TrimSpace(output) == "" {
			return placeholder(rec)
		}
		return capChars(output)
	}
}

// newFileDiff renders a new file's content with a "+" prefix per line,
// bounded at MaxNewFileLines
func (d *DiffReader) newFileDiff(rec models.ChangeRecord) string {
	content, err := os.ReadFile(rec.Path)
	if err != nil {
		return placeholder(rec)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	truncated := false
	if len(lines) > MaxNewFileLines {
		lines = lines[:MaxNewFileLines]
		truncated = true
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("+")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if truncated {
		b.WriteString(truncationMarker)
		b.WriteString("\n")
	}
	return b.String()
}

// placeholder is the single-line fallback when no diff is available
func placeholder(rec models.ChangeRecord) string {
	return fmt.Sprintf("%s: %s", rec.Type, rec.Path)
}

// capChars bounds a payload at MaxDiffChars, marking the cut
func capChars(s string) string {
	if len(s) <= MaxDiffChars {
		return s
	}
	return s[:MaxDiffChars] + "\n" + truncationMarker
}
