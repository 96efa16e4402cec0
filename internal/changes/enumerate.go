// Package changes turns raw client status into the flat, deduplicated
// change list the UI and the commit flow work from, and renders
// size-capped per-file diffs.
package changes

import (
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

// Enumerator lists pending changes through a VCS client
type Enumerator struct {
	client vcs.Client
}

// NewEnumerator creates an enumerator backed by the given client
func NewEnumerator(client vcs.Client) *Enumerator {
	return &Enumerator{client: client}
}

// ListChanges returns the pending changes deduplicated by path. A path
// reported in several buckets keeps its first occurrence; the merge
// order is untracked, then staged, then unstaged. An invalid repository
// handle yields an empty list, not an error — the caller validated the
// handle before getting here.
func (e *Enumerator) ListChanges(repo models.RepoInfo) []models.ChangeRecord {
	if !repo.Valid() {
		return nil
	}

	snapshot, err := e.client.Status(repo)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var records []models.ChangeRecord

	for _, bucket := range [][]models.ChangeRecord{snapshot.Untracked, snapshot.Staged, snapshot.Unstaged} {
		for _, rec := range bucket {
			if seen[rec.Path] {
				continue
			}
			seen[rec.Path] = true
			records = append(records, rec)
		}
	}

	return records
}
