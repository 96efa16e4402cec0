package selection

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

func testRepo(path string) models.RepoInfo {
	return models.RepoInfo{Path: path, DisplayName: filepath.Base(path), Branch: "dev"}
}

func TestKey(t *testing.T) {
	repo := testRepo("/work/api")
	assert.Equal(t, "selected-files:/work/api", Key(repo))
}

func TestMemoryStoreToggle(t *testing.T) {
	store := NewMemoryStore()
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Toggle(repo, "/work/api/b.go"))
	assert.Equal(t, []string{"/work/api/a.go", "/work/api/b.go"}, store.Get(repo))

	// Toggling again removes, preserving the order of the rest
	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	assert.Equal(t, []string{"/work/api/b.go"}, store.Get(repo))

	// Toggle twice restores the original membership
	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	assert.Equal(t, []string{"/work/api/b.go"}, store.Get(repo))
}

func TestMemoryStoreSetIdempotent(t *testing.T) {
	store := NewMemoryStore()
	repo := testRepo("/work/api")

	require.NoError(t, store.Set(repo, "/work/api/a.go", true))
	require.NoError(t, store.Set(repo, "/work/api/a.go", true))
	assert.Equal(t, []string{"/work/api/a.go"}, store.Get(repo))

	require.NoError(t, store.Set(repo, "/work/api/a.go", false))
	require.NoError(t, store.Set(repo, "/work/api/a.go", false))
	assert.Empty(t, store.Get(repo))
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Clear(repo))
	assert.Empty(t, store.Get(repo))

	// Clearing an empty selection is fine
	require.NoError(t, store.Clear(repo))
}

func TestMemoryStoreIsolatesRepos(t *testing.T) {
	store := NewMemoryStore()
	apiRepo := testRepo("/work/api")
	webRepo := testRepo("/work/web")

	require.NoError(t, store.Toggle(apiRepo, "/work/api/a.go"))
	assert.Empty(t, store.Get(webRepo))
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	got := store.Get(repo)
	got[0] = "mutated"
	assert.Equal(t, []string{"/work/api/a.go"}, store.Get(repo))
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Toggle(repo, "/work/api/b.go"))

	// A fresh store over the same directory sees the same selection
	reopened := NewFileStore(dir)
	assert.Equal(t, []string{"/work/api/a.go", "/work/api/b.go"}, reopened.Get(repo))
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.Empty(t, store.Get(testRepo("/work/api")))
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))
	require.NoError(t, store.Clear(repo))
	assert.Empty(t, store.Get(repo))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing again is a no-op even though the file is gone
	require.NoError(t, store.Clear(repo))
}

func TestFileStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	repo := testRepo("/work/api")

	require.NoError(t, store.Toggle(repo, "/work/api/a.go"))

	// Corrupt the file on disk
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	path := filepath.Join(dir, entries[0].Name())
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Empty(t, store.Get(repo))

	// Mutations surface the parse error instead of silently overwriting
	assert.Error(t, store.Toggle(repo, "/work/api/b.go"))

	// Clearing discards the corrupt file and the store recovers
	require.NoError(t, store.Clear(repo))
	require.NoError(t, store.Toggle(repo, "/work/api/b.go"))
	assert.Equal(t, []string{"/work/api/b.go"}, store.Get(repo))
}

func TestFileStoreWritesValidJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	repo := testRepo("/work/api")

	require.NoError(t, store.Set(repo, "/work/api/a.go", true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var payload struct {
		Key   string   `json:"key"`
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, Key(repo), payload.Key)
	assert.Equal(t, []string{"/work/api/a.go"}, payload.Paths)
}
