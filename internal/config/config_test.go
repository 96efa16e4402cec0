package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Commit.PushByDefault)
	assert.True(t, cfg.Assistant.Enabled)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.Assistant.APIKeyEnv)
	assert.True(t, cfg.Update.Enabled)
}

func TestLoadCreatesDefaultWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Load writes the default file so the user can find and edit it
	path, err := Path()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Commit.PushByDefault = true
	cfg.Update.SkippedVersion = "1.2.3"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.True(t, loaded.Commit.PushByDefault)
	assert.Equal(t, "1.2.3", loaded.Update.SkippedVersion)
}

func TestAPIKeyResolution(t *testing.T) {
	t.Setenv("ATTQC_TEST_KEY", "sk-test")

	cfg := DefaultConfig()
	cfg.Assistant.APIKeyEnv = "ATTQC_TEST_KEY"
	assert.Equal(t, "sk-test", cfg.APIKey())

	cfg.Assistant.Enabled = false
	assert.Equal(t, "", cfg.APIKey())

	cfg.Assistant.Enabled = true
	cfg.Assistant.APIKeyEnv = ""
	assert.Equal(t, "", cfg.APIKey())
}

func TestShouldCheckForUpdate(t *testing.T) {
	cfg := DefaultConfig()

	// Zero LastCheck means we have never checked
	assert.True(t, cfg.ShouldCheckForUpdate())

	cfg.RecordUpdateCheck()
	assert.False(t, cfg.ShouldCheckForUpdate())

	cfg.Update.LastCheck = time.Now().Add(-25 * time.Hour)
	assert.True(t, cfg.ShouldCheckForUpdate())

	cfg.Update.Enabled = false
	assert.False(t, cfg.ShouldCheckForUpdate())
}
