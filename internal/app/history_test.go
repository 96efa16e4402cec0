package app

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	now := time.Now()
	saveHistory([]sessionCommit{
		{repoName: "api", hash: "abc1234", message: "fix(api): handle crash", committedAt: now},
		{repoName: "docs", hash: "def5678", message: "docs: update readme", committedAt: now},
	})

	loaded := loadHistory()
	require.Len(t, loaded, 2)
	assert.Equal(t, "api", loaded[0].repoName)
	assert.Equal(t, "abc1234", loaded[0].hash)
	assert.Equal(t, "docs: update readme", loaded[1].message)
}

func TestHistoryPrunesOldEntries(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saveHistory([]sessionCommit{
		{repoName: "api", hash: "old0000", message: "stale", committedAt: time.Now().Add(-25 * time.Hour)},
		{repoName: "api", hash: "new1111", message: "fresh", committedAt: time.Now()},
	})

	loaded := loadHistory()
	require.Len(t, loaded, 1)
	assert.Equal(t, "new1111", loaded[0].hash)

	// Pruning rewrites the file so stale entries do not come back
	path, err := historyPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []historyEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "new1111", entries[0].Hash)
}

func TestHistoryMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.Nil(t, loadHistory())
}

func TestHistoryCorruptFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := historyPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	assert.Nil(t, loadHistory())
}
