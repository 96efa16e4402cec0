package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

const zeros = "0000000000000000000000000000000000000000"

func ordinaryLine(xy, path string) string {
	return "1 " + xy + " N... 100644 100644 100644 " + zeros + " " + zeros + " " + path
}

func TestParseOrdinaryEntryStagedOnly(t *testing.T) {
	staged, unstaged := parseOrdinaryEntry("/r", ordinaryLine("A.", "new.go"))

	require.NotNil(t, staged)
	assert.Nil(t, unstaged)
	assert.Equal(t, "/r/new.go", staged.Path)
	assert.Equal(t, models.ChangeAdded, staged.Type)
	assert.Equal(t, models.CategoryStaged, staged.Category)
}

func TestParseOrdinaryEntryUnstagedOnly(t *testing.T) {
	staged, unstaged := parseOrdinaryEntry("/r", ordinaryLine(".M", "main.go"))

	assert.Nil(t, staged)
	require.NotNil(t, unstaged)
	assert.Equal(t, models.ChangeModified, unstaged.Type)
	assert.Equal(t, models.CategoryUnstaged, unstaged.Category)
}

func TestParseOrdinaryEntryBothSides(t *testing.T) {
	// Staged addition with further worktree edits yields two records
	staged, unstaged := parseOrdinaryEntry("/r", ordinaryLine("AM", "both.go"))

	require.NotNil(t, staged)
	require.NotNil(t, unstaged)
	assert.Equal(t, models.ChangeAdded, staged.Type)
	assert.Equal(t, models.ChangeModified, unstaged.Type)
	assert.Equal(t, staged.Path, unstaged.Path)
}

func TestParseOrdinaryEntryIntentToAdd(t *testing.T) {
	_, unstaged := parseOrdinaryEntry("/r", ordinaryLine(".A", "planned.go"))

	require.NotNil(t, unstaged)
	assert.Equal(t, models.ChangeIntentToAdd, unstaged.Type)
}

func TestParseOrdinaryEntryMalformed(t *testing.T) {
	staged, unstaged := parseOrdinaryEntry("/r", "1 M. truncated")
	assert.Nil(t, staged)
	assert.Nil(t, unstaged)
}

func TestParseRenamedEntry(t *testing.T) {
	line := "2 R. N... 100644 100644 100644 " + zeros + " " + zeros + " R100 new/name.go\told/name.go"
	rec := parseRenamedEntry("/r", line)

	require.NotNil(t, rec)
	assert.Equal(t, models.ChangeRenamed, rec.Type)
	assert.Equal(t, "/r/new/name.go", rec.Path)
	assert.Equal(t, "/r/old/name.go", rec.OldPath)
	assert.Equal(t, models.CategoryStaged, rec.Category)
}

func TestParseCopiedEntry(t *testing.T) {
	line := "2 C. N... 100644 100644 100644 " + zeros + " " + zeros + " C075 copy.go\tsource.go"
	rec := parseRenamedEntry("/r", line)

	require.NotNil(t, rec)
	assert.Equal(t, models.ChangeCopied, rec.Type)
}

func TestParseRenamedEntryWithoutTab(t *testing.T) {
	line := "2 R. N... 100644 100644 100644 " + zeros + " " + zeros + " R100 notabhere"
	assert.Nil(t, parseRenamedEntry("/r", line))
}

func TestParseUnmergedEntry(t *testing.T) {
	line := "u UU N... 100644 100644 100644 100644 " + zeros + " " + zeros + " " + zeros + " conflicted.go"
	assert.Equal(t, "conflicted.go", parseUnmergedEntry(line))
}

func TestParseUnmergedEntryMalformed(t *testing.T) {
	assert.Equal(t, "", parseUnmergedEntry("u UU short"))
}

func TestIndexCharMapping(t *testing.T) {
	assert.Equal(t, models.ChangeAdded, indexCharToChangeType('A'))
	assert.Equal(t, models.ChangeDeleted, indexCharToChangeType('D'))
	assert.Equal(t, models.ChangeRenamed, indexCharToChangeType('R'))
	assert.Equal(t, models.ChangeCopied, indexCharToChangeType('C'))
	assert.Equal(t, models.ChangeConflict, indexCharToChangeType('U'))
	assert.Equal(t, models.ChangeModified, indexCharToChangeType('M'))
}

func TestWorktreeCharMapping(t *testing.T) {
	assert.Equal(t, models.ChangeIntentToAdd, worktreeCharToChangeType('A'))
	assert.Equal(t, models.ChangeDeleted, worktreeCharToChangeType('D'))
	assert.Equal(t, models.ChangeConflict, worktreeCharToChangeType('U'))
	assert.Equal(t, models.ChangeModified, worktreeCharToChangeType('M'))
}

func TestGitErrorMessage(t *testing.T) {
	err := &GitError{Client: "git-cli", Command: "commit -m x", Output: "nothing to commit"}
	assert.Equal(t, "git-cli: git commit -m x: nothing to commit", err.Error())
}
