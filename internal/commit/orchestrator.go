// Package commit drives the staging-and-commit flow: resolve the user's
// selection, stage through the primary client, fall back to the
// secondary once on failure, commit the same way, then clear the
// selection and notify listeners.
package commit

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.quickcommit/internal/changes"
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/selection"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

// Orchestrator runs commit attempts against an ordered client list.
// The first client is tried for every operation; each later client gets
// exactly one fallback attempt with equivalent arguments.
type Orchestrator struct {
	clients    []vcs.Client
	store      selection.Store
	enumerator *changes.Enumerator

	// notify fires after every successful commit so the UI can refresh
	notify func()
}

// New creates an orchestrator. clients must be in trial order, primary
// first. notify may be nil.
func New(clients []vcs.Client, store selection.Store, enumerator *changes.Enumerator, notify func()) *Orchestrator {
	return &Orchestrator{
		clients:    clients,
		store:      store,
		enumerator: enumerator,
		notify:     notify,
	}
}

// Commit stages the selected files and creates a commit. An empty
// selection means "commit everything pending", not an error: staging
// falls back to the full change enumeration. With amend, staging is
// skipped entirely and the previous commit is replaced using whatever
// is already in the index.
//
// On success the selection is cleared. On any failure the selection is
// left untouched and already-staged files stay staged.
func (o *Orchestrator) Commit(repo models.RepoInfo, message string, amend bool) models.CommitResult {
	result := models.CommitResult{Repo: repo}

	if strings.TrimSpace(message) == "" {
		result.Status = models.SkippedCommit("empty commit message")
		return result
	}

	files := o.store.Get(repo)
	if len(files) == 0 {
		for _, rec := range o.enumerator.ListChanges(repo) {
			files = append(files, rec.Path)
		}
	}
	result.Files = files

	if !amend {
		if len(files) == 0 {
			result.Status = models.SkippedCommit("no changes to commit")
			return result
		}

		fallback, err := o.tryEach(
			func(c vcs.Client) bool { return c.Capabilities().Stage },
			func(c vcs.Client) error { return c.Stage(repo, files) },
		)
		if err != nil {
			result.Status = models.FailedCommit("staging failed: " + err.Error())
			return result
		}
		if fallback != "" {
			result.FallbackClient = fallback
		}
	}

	var hash string
	fallback, err := o.tryEach(
		func(c vcs.Client) bool { return c.Capabilities().Commit },
		func(c vcs.Client) error {
			var commitErr error
			hash, commitErr = c.Commit(repo, message, amend)
			return commitErr
		},
	)
	if err != nil {
		result.Status = models.FailedCommit("commit failed: " + err.Error())
		return result
	}
	if fallback != "" {
		result.FallbackClient = fallback
	}

	result.Hash = hash
	result.Status = models.Committed

	// Selection is consumed by the commit; storage failures here do not
	// undo the commit
	_ = o.store.Clear(repo)
	if o.notify != nil {
		o.notify()
	}

	return result
}

// CommitAndPush composes Commit with a push. A push failure is reported
// on the result but does not roll back or invalidate the commit.
func (o *Orchestrator) CommitAndPush(repo models.RepoInfo, message string, amend bool) models.CommitResult {
	result := o.Commit(repo, message, amend)
	if !models.IsStatusSuccess(result.Status) {
		return result
	}

	_, err := o.tryEach(
		func(c vcs.Client) bool { return c.Capabilities().Push },
		func(c vcs.Client) error { return c.Push(repo) },
	)
	if err != nil {
		result.PushError = err.Error()
		return result
	}

	result.Status = models.Pushed
	return result
}

// tryEach runs op against each capable client in order until one
// succeeds. The returned name is empty when the primary client
// succeeded, otherwise the name of the client that did. When every
// client fails the combined error carries all of them.
func (o *Orchestrator) tryEach(capable func(vcs.Client) bool, op func(vcs.Client) error) (string, error) {
	var errs []string
	tried := 0

	for i, client := range o.clients {
		if !capable(client) {
			continue
		}
		tried++

		err := op(client)
		if err == nil {
			if i > 0 && len(errs) > 0 {
				return client.Name(), nil
			}
			return "", nil
		}
		errs = append(errs, fmt.Sprintf("%s: %v", client.Name(), err))
	}

	if tried == 0 {
		return "", fmt.Errorf("no capable client")
	}
	return "", fmt.Errorf("%s", strings.Join(errs, "; "))
}
