package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for bidi-markdown.
// It aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line overrides, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment lookups are additionally prefixed with "BIDIMD_".
type StructuredConfig struct {
	// Storage holds the durable local state database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// GitHub identifies the remote repository target and the pre-issued
	// access token. Values left empty here fall back to whatever was last
	// persisted in the local state store.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// Adapter holds outbound transport settings for the remote store client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Editor holds document-service tuning such as the persistence debounce.
	Editor Editor `envPrefix:"EDITOR_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from the other sources.
	// Env: BIDIMD_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the durable local state database.
type Storage struct {
	// DSN is the sqlite file path of the state database
	// (e.g. "~/.bidimd/state.db"). The file is created on first use.
	// Env: BIDIMD_STORAGE_DSN
	DSN string `env:"DSN"`
}

// GitHub holds the remote repository target consumed by the contents API
// client. Token, Owner and Repo have no defaults; Branch defaults to "main".
type GitHub struct {
	// Token is the pre-issued access token sent as a bearer credential.
	// Env: BIDIMD_GITHUB_TOKEN
	Token string `env:"TOKEN"`

	// Owner is the account owning the target repository.
	// Env: BIDIMD_GITHUB_OWNER
	Owner string `env:"OWNER"`

	// Repo is the target repository name.
	// Env: BIDIMD_GITHUB_REPO
	Repo string `env:"REPO"`

	// Branch is the branch all reads and writes run against.
	// Env: BIDIMD_GITHUB_BRANCH
	Branch string `env:"BRANCH"`
}

// Adapter holds outbound transport settings for the remote store client.
type Adapter struct {
	// BaseURL is the API root of the remote host. Overridable for tests and
	// GitHub Enterprise installations.
	// Env: BIDIMD_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single outbound request (e.g. "30s").
	// Env: BIDIMD_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Editor holds document-service tuning values.
type Editor struct {
	// FlushDebounce is the quiescence interval after the last mutation
	// before the document state is flushed to durable storage.
	// Env: BIDIMD_EDITOR_FLUSH_DEBOUNCE
	FlushDebounce time.Duration `env:"FLUSH_DEBOUNCE"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval defines how often the background sync job pulls from the
	// remote repository. Zero disables the job.
	// Env: BIDIMD_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Defaults applied by the builder after all sources are merged.
const (
	DefaultDSN            = "bidimd.db"
	DefaultBaseURL        = "https://api.github.com"
	DefaultBranch         = "main"
	DefaultRequestTimeout = 30 * time.Second
	DefaultFlushDebounce  = time.Second
)

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Command-line overrides (supplied by the CLI layer)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load or the final config fails validation.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
}
