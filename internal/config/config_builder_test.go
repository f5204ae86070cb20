package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_DefaultsApplied(t *testing.T) {
	cfg, err := GetConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultFlushDebounce, cfg.Editor.FlushDebounce)
	assert.Equal(t, DefaultBranch, cfg.GitHub.Branch)
}

func TestGetConfig_OverridesWinOverEnv(t *testing.T) {
	t.Setenv("BIDIMD_GITHUB_OWNER", "env-owner")
	t.Setenv("BIDIMD_GITHUB_REPO", "env-repo")

	overrides := &StructuredConfig{
		GitHub: GitHub{Owner: "flag-owner"},
	}

	cfg, err := GetConfig(overrides)
	require.NoError(t, err)

	// override wins for owner, env fills the untouched repo
	assert.Equal(t, "flag-owner", cfg.GitHub.Owner)
	assert.Equal(t, "env-repo", cfg.GitHub.Repo)
}

func TestGetConfig_EnvSource(t *testing.T) {
	t.Setenv("BIDIMD_STORAGE_DSN", "/tmp/state.db")
	t.Setenv("BIDIMD_GITHUB_TOKEN", "tok")
	t.Setenv("BIDIMD_ADAPTER_REQUEST_TIMEOUT", "5s")

	cfg, err := GetConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/state.db", cfg.Storage.DSN)
	assert.Equal(t, "tok", cfg.GitHub.Token)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetConfig_JSONFileMergedLast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	payload := map[string]any{
		"github": map[string]any{
			"owner":  "json-owner",
			"repo":   "json-repo",
			"branch": "trunk",
		},
		"workers": map[string]any{
			"sync_interval": "2m",
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	t.Setenv("BIDIMD_GITHUB_OWNER", "env-owner")

	cfg, err := GetConfig(&StructuredConfig{JSONFilePath: path})
	require.NoError(t, err)

	// env beats JSON, JSON fills whatever remains zero
	assert.Equal(t, "env-owner", cfg.GitHub.Owner)
	assert.Equal(t, "json-repo", cfg.GitHub.Repo)
	assert.Equal(t, "trunk", cfg.GitHub.Branch)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestGetConfig_MissingJSONFileFails(t *testing.T) {
	_, err := GetConfig(&StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	require.Error(t, err)
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DSN: "state.db"},
		Adapter: Adapter{BaseURL: "not a url"},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
