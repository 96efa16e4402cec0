package changes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

func TestDiffModifiedFile(t *testing.T) {
	client := &fakeClient{diffs: map[string]string{
		"/r/main.go": "@@ -1 +1 @@\n-old\n+new",
	}}
	reader := NewDiffReader(client)

	rec := models.NewChangeRecord("/r/main.go", models.ChangeModified, models.CategoryUnstaged)
	got := reader.Diff(repoAt("/r"), rec)

	assert.Equal(t, "@@ -1 +1 @@\n-old\n+new", got)
}

func TestDiffCapsAtMaxChars(t *testing.T) {
	long := strings.Repeat("x", MaxDiffChars+500)
	client := &fakeClient{diffs: map[string]string{"/r/big.go": long}}
	reader := NewDiffReader(client)

	rec := models.NewChangeRecord("/r/big.go", models.ChangeModified, models.CategoryUnstaged)
	got := reader.Diff(repoAt("/r"), rec)

	assert.Equal(t, long[:MaxDiffChars]+"\n... (truncated)", got)
}

func TestDiffErrorFallsBackToPlaceholder(t *testing.T) {
	client := &fakeClient{diffErr: errors.New("git blew up")}
	reader := NewDiffReader(client)

	rec := models.NewChangeRecord("/r/main.go", models.ChangeModified, models.CategoryUnstaged)
	got := reader.Diff(repoAt("/r"), rec)

	assert.Equal(t, "modified: /r/main.go", got)
}

func TestDiffEmptyOutputFallsBackToPlaceholder(t *testing.T) {
	client := &fakeClient{diffs: map[string]string{"/r/main.go": "  \n"}}
	reader := NewDiffReader(client)

	rec := models.NewChangeRecord("/r/main.go", models.ChangeDeleted, models.CategoryStaged)
	got := reader.Diff(repoAt("/r"), rec)

	assert.Equal(t, "deleted: /r/main.go", got)
}

func TestDiffNewFileSynthetic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o600))

	reader := NewDiffReader(&fakeClient{})
	rec := models.NewChangeRecord(path, models.ChangeUntracked, models.CategoryUntracked)

	got := reader.Diff(repoAt(dir), rec)
	assert.Equal(t, "+first\n+second\n", got)
}

func TestDiffNewFileCapsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")

	var b strings.Builder
	for i := 0; i < MaxNewFileLines+10; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	reader := NewDiffReader(&fakeClient{})
	rec := models.NewChangeRecord(path, models.ChangeAdded, models.CategoryStaged)

	got := reader.Diff(repoAt(dir), rec)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// 50 content lines plus the truncation marker
	assert.Len(t, lines, MaxNewFileLines+1)
	assert.Equal(t, "+line 0", lines[0])
	assert.Equal(t, "... (truncated)", lines[len(lines)-1])
}

func TestDiffNewFileUnreadable(t *testing.T) {
	reader := NewDiffReader(&fakeClient{})
	rec := models.NewChangeRecord("/nonexistent/gone.txt", models.ChangeUntracked, models.CategoryUntracked)

	got := reader.Diff(repoAt("/nonexistent"), rec)
	assert.Equal(t, "untracked: /nonexistent/gone.txt", got)
}
