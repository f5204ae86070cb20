package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required before startup. The GitHub group is deliberately not
// validated here: token and repository target may legitimately be absent at
// startup (they fall back to persisted state) and are checked eagerly by the
// sync engine before any batch operation.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
