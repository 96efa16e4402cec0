package commit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.quickcommit/internal/changes"
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/selection"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

// scriptedClient records calls and fails on demand
type scriptedClient struct {
	name string
	caps vcs.Capabilities

	snapshot *vcs.StatusSnapshot

	stageErr  error
	commitErr error
	pushErr   error

	stagedPaths   [][]string
	commitCalls   int
	commitAmend   []bool
	commitMessage []string
	pushCalls     int
}

func newScriptedClient(name string) *scriptedClient {
	return &scriptedClient{
		name:     name,
		caps:     vcs.Capabilities{Stage: true, Commit: true, Push: true, Diff: true},
		snapshot: &vcs.StatusSnapshot{},
	}
}

func (c *scriptedClient) Name() string                   { return c.name }
func (c *scriptedClient) Capabilities() vcs.Capabilities { return c.caps }

func (c *scriptedClient) Status(repo models.RepoInfo) (*vcs.StatusSnapshot, error) {
	return c.snapshot, nil
}

func (c *scriptedClient) Stage(repo models.RepoInfo, paths []string) error {
	copied := make([]string, len(paths))
	copy(copied, paths)
	c.stagedPaths = append(c.stagedPaths, copied)
	return c.stageErr
}

func (c *scriptedClient) Commit(repo models.RepoInfo, message string, amend bool) (string, error) {
	c.commitCalls++
	c.commitAmend = append(c.commitAmend, amend)
	c.commitMessage = append(c.commitMessage, message)
	if c.commitErr != nil {
		return "", c.commitErr
	}
	return "abc1234", nil
}

func (c *scriptedClient) Push(repo models.RepoInfo) error {
	c.pushCalls++
	return c.pushErr
}

func (c *scriptedClient) Diff(repo models.RepoInfo, path string) (string, error) {
	return "", nil
}

func testRepo() models.RepoInfo {
	return models.RepoInfo{Path: "/work/api", DisplayName: "api", Branch: "dev"}
}

func setup(primary, secondary *scriptedClient) (*Orchestrator, selection.Store) {
	store := selection.NewMemoryStore()
	enumerator := changes.NewEnumerator(primary)
	orch := New([]vcs.Client{primary, secondary}, store, enumerator, nil)
	return orch, store
}

func TestCommitSuccessClearsSelection(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "fix: something", false)

	assert.True(t, models.IsStatusCommitted(result.Status))
	assert.Equal(t, "abc1234", result.Hash)
	assert.Equal(t, []string{"/work/api/a.go"}, result.Files)
	assert.Empty(t, result.FallbackClient)
	assert.Empty(t, store.Get(repo))

	require.Len(t, primary.stagedPaths, 1)
	assert.Equal(t, []string{"/work/api/a.go"}, primary.stagedPaths[0])
	assert.Zero(t, secondary.commitCalls)
}

func TestCommitEmptyMessageRejectedBeforeStaging(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "   ", false)

	assert.True(t, models.IsStatusSkipped(result.Status))
	assert.Equal(t, "empty commit message", models.GetStatusReason(result.Status))
	assert.Empty(t, primary.stagedPaths)
	assert.Zero(t, primary.commitCalls)
	// Selection stays for the next attempt
	assert.Equal(t, []string{"/work/api/a.go"}, store.Get(repo))
}

func TestCommitEmptySelectionStagesAllChanges(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.snapshot = &vcs.StatusSnapshot{
		Staged: []models.ChangeRecord{
			models.NewChangeRecord("/work/api/a.go", models.ChangeModified, models.CategoryStaged),
		},
		Untracked: []models.ChangeRecord{
			models.NewChangeRecord("/work/api/new.txt", models.ChangeUntracked, models.CategoryUntracked),
		},
	}
	secondary := newScriptedClient("git-cli")
	orch, _ := setup(primary, secondary)

	result := orch.Commit(testRepo(), "chore: sweep", false)

	assert.True(t, models.IsStatusCommitted(result.Status))
	require.Len(t, primary.stagedPaths, 1)
	// Enumeration order: untracked before staged
	assert.Equal(t, []string{"/work/api/new.txt", "/work/api/a.go"}, primary.stagedPaths[0])
}

func TestCommitNothingToCommit(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	orch, _ := setup(primary, secondary)

	result := orch.Commit(testRepo(), "chore: nothing", false)

	assert.True(t, models.IsStatusSkipped(result.Status))
	assert.Equal(t, "no changes to commit", models.GetStatusReason(result.Status))
	assert.Empty(t, primary.stagedPaths)
}

func TestStageFallbackUsesSamePaths(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.stageErr = errors.New("index locked")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Toggle(repo, "/work/api/b.go"))

	result := orch.Commit(repo, "fix: fallback", false)

	assert.True(t, models.IsStatusCommitted(result.Status))
	assert.Equal(t, "git-cli", result.FallbackClient)

	// The secondary got exactly one attempt with equivalent arguments
	require.Len(t, secondary.stagedPaths, 1)
	assert.Equal(t, primary.stagedPaths[0], secondary.stagedPaths[0])
}

func TestAllClientsFailCombinedError(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.stageErr = errors.New("index locked")
	secondary := newScriptedClient("git-cli")
	secondary.stageErr = errors.New("exit status 128")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "fix: doomed", false)

	assert.True(t, models.IsStatusFailed(result.Status))
	reason := models.GetStatusReason(result.Status)
	assert.Contains(t, reason, "staging failed")
	assert.Contains(t, reason, "go-git: index locked")
	assert.Contains(t, reason, "git-cli: exit status 128")

	// Failure leaves the selection untouched
	assert.Equal(t, []string{"/work/api/a.go"}, store.Get(repo))
	assert.Zero(t, primary.commitCalls)
	assert.Zero(t, secondary.commitCalls)
}

func TestCommitFallback(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.commitErr = errors.New("object store corrupt")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "fix: commit fallback", false)

	assert.True(t, models.IsStatusCommitted(result.Status))
	assert.Equal(t, "git-cli", result.FallbackClient)
	assert.Equal(t, 1, primary.commitCalls)
	assert.Equal(t, 1, secondary.commitCalls)
	assert.Equal(t, "fix: commit fallback", secondary.commitMessage[0])
}

func TestAmendSkipsStaging(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "fix: amended", true)

	assert.True(t, models.IsStatusCommitted(result.Status))
	assert.Empty(t, primary.stagedPaths)
	require.Len(t, primary.commitAmend, 1)
	assert.True(t, primary.commitAmend[0])
}

func TestCommitAndPushSuccess(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.CommitAndPush(repo, "feat: shipped", false)

	assert.True(t, models.IsStatusPushed(result.Status))
	assert.Empty(t, result.PushError)
	assert.Equal(t, 1, primary.pushCalls)
}

func TestPushFailureKeepsCommit(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.pushErr = errors.New("remote rejected")
	secondary := newScriptedClient("git-cli")
	secondary.pushErr = errors.New("auth failed")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.CommitAndPush(repo, "feat: local only", false)

	// Commit stands; the push failure rides along separately
	assert.True(t, models.IsStatusCommitted(result.Status))
	assert.Equal(t, "abc1234", result.Hash)
	assert.Contains(t, result.PushError, "go-git: remote rejected")
	assert.Contains(t, result.PushError, "git-cli: auth failed")

	// The selection was still consumed by the successful commit
	assert.Empty(t, store.Get(repo))
}

func TestCommitAndPushSkipsPushWhenCommitFails(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.commitErr = errors.New("boom")
	secondary := newScriptedClient("git-cli")
	secondary.commitErr = errors.New("also boom")
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.CommitAndPush(repo, "feat: nope", false)

	assert.True(t, models.IsStatusFailed(result.Status))
	assert.Zero(t, primary.pushCalls)
	assert.Zero(t, secondary.pushCalls)
}

func TestNoCapableClient(t *testing.T) {
	primary := newScriptedClient("go-git")
	primary.caps = vcs.Capabilities{}
	secondary := newScriptedClient("git-cli")
	secondary.caps = vcs.Capabilities{}
	orch, store := setup(primary, secondary)
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	result := orch.Commit(repo, "fix: stranded", false)

	assert.True(t, models.IsStatusFailed(result.Status))
	assert.Contains(t, models.GetStatusReason(result.Status), "no capable client")
}

func TestNotifyFiresOnSuccessOnly(t *testing.T) {
	primary := newScriptedClient("go-git")
	secondary := newScriptedClient("git-cli")
	store := selection.NewMemoryStore()
	enumerator := changes.NewEnumerator(primary)

	notified := 0
	orch := New([]vcs.Client{primary, secondary}, store, enumerator, func() { notified++ })
	repo := testRepo()

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	orch.Commit(repo, "fix: one", false)
	assert.Equal(t, 1, notified)

	// A skipped attempt does not notify
	orch.Commit(repo, "", false)
	assert.Equal(t, 1, notified)
}
