package commit

import (
	"fmt"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

// Report is the outcome of a pre-commit validation pass
type Report struct {
	// OK is true iff Issues is empty
	OK bool
	// Issues are human-readable problems, in check order
	Issues []string
}

// Validate inspects repository, client, and selection state and reports
// everything wrong at once. Checks run in a fixed order and never
// short-circuit; each appends an issue on failure. Pure function, no
// side effects.
func Validate(repo models.RepoInfo, clients []vcs.Client, selected []string, records []models.ChangeRecord) Report {
	var issues []string

	if !repo.Valid() {
		issues = append(issues, "no git repository detected")
	}

	if !anyCapable(clients) {
		issues = append(issues, "no git client available for staging and committing")
	}

	if len(selected) == 0 {
		issues = append(issues, "no files selected (commit would include all pending changes)")
	}

	// Stale selection: every selected path has no pending change
	if len(selected) > 0 && !intersects(selected, records) {
		issues = append(issues, "selected files have no pending changes")
	}

	if repo.Valid() {
		if err := stateReadable(repo, clients); err != nil {
			issues = append(issues, fmt.Sprintf("repository state unavailable: %v", err))
		}
	}

	return Report{OK: len(issues) == 0, Issues: issues}
}

// anyCapable reports whether some client can both stage and commit
func anyCapable(clients []vcs.Client) bool {
	for _, c := range clients {
		caps := c.Capabilities()
		if caps.Stage && caps.Commit {
			return true
		}
	}
	return false
}

// intersects reports whether any selected path has a pending change
func intersects(selected []string, records []models.ChangeRecord) bool {
	changed := make(map[string]bool, len(records))
	for _, rec := range records {
		changed[rec.Path] = true
	}
	for _, path := range selected {
		if changed[path] {
			return true
		}
	}
	return false
}

// stateReadable checks that at least one client can read status
func stateReadable(repo models.RepoInfo, clients []vcs.Client) error {
	var lastErr error
	for _, c := range clients {
		_, err := c.Status(repo)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return fmt.Errorf("no client configured")
	}
	return lastErr
}
