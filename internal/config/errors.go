package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid state-database settings
	// (for example, an empty DSN after defaulting).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote transport settings
	// (for example, an unparseable base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
