// Package config loads and merges the bidi-markdown application
// configuration from environment variables, CLI-supplied overrides, and an
// optional JSON file.
//
// Sources are combined by a small builder (see config_builder.go) using
// mergo: earlier sources win for non-zero fields, in the order overrides →
// environment → JSON file. After merging, zero-valued fields receive the
// package defaults and the result is validated.
package config
