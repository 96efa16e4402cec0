package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"
)

func TestValidateAllGood(t *testing.T) {
	client := newScriptedClient("go-git")
	records := []models.ChangeRecord{
		models.NewChangeRecord("/work/api/a.go", models.ChangeModified, models.CategoryUnstaged),
	}

	report := Validate(testRepo(), []vcs.Client{client}, []string{"/work/api/a.go"}, records)

	assert.True(t, report.OK)
	assert.Empty(t, report.Issues)
}

func TestValidateReportsEverythingAtOnce(t *testing.T) {
	// Invalid repo, no clients, nothing selected: every check fires
	report := Validate(models.RepoInfo{}, nil, nil, nil)

	assert.False(t, report.OK)
	assert.Equal(t, []string{
		"no git repository detected",
		"no git client available for staging and committing",
		"no files selected (commit would include all pending changes)",
	}, report.Issues)
}

func TestValidateEmptySelectionIsAdvisory(t *testing.T) {
	client := newScriptedClient("go-git")

	report := Validate(testRepo(), []vcs.Client{client}, nil, nil)

	assert.False(t, report.OK)
	assert.Equal(t, []string{"no files selected (commit would include all pending changes)"}, report.Issues)
}

func TestValidateStaleSelection(t *testing.T) {
	client := newScriptedClient("go-git")
	records := []models.ChangeRecord{
		models.NewChangeRecord("/work/api/b.go", models.ChangeModified, models.CategoryUnstaged),
	}

	// The selected file is no longer pending
	report := Validate(testRepo(), []vcs.Client{client}, []string{"/work/api/a.go"}, records)

	assert.False(t, report.OK)
	assert.Equal(t, []string{"selected files have no pending changes"}, report.Issues)
}

func TestValidatePartialOverlapIsFine(t *testing.T) {
	client := newScriptedClient("go-git")
	records := []models.ChangeRecord{
		models.NewChangeRecord("/work/api/a.go", models.ChangeModified, models.CategoryUnstaged),
	}

	// One selected path still pending is enough
	report := Validate(testRepo(), []vcs.Client{client}, []string{"/work/api/a.go", "/work/api/gone.go"}, records)

	assert.True(t, report.OK)
}

func TestValidateClientWithoutStageDoesNotCount(t *testing.T) {
	client := newScriptedClient("read-only")
	client.caps = vcs.Capabilities{Commit: true}
	records := []models.ChangeRecord{
		models.NewChangeRecord("/work/api/a.go", models.ChangeModified, models.CategoryUnstaged),
	}

	report := Validate(testRepo(), []vcs.Client{client}, []string{"/work/api/a.go"}, records)

	assert.False(t, report.OK)
	assert.Contains(t, report.Issues, "no git client available for staging and committing")
}
