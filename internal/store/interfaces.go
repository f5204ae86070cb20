// Package store persists the bidi-markdown application state to a durable
// sqlite-backed key-value table.
//
// The state database holds disjoint key namespaces: the serialized document
// collection and active selection, the remote repository target and access
// token, and the UI preference flags. All values are stored as strings and
// parsed defensively on load; corrupt or missing state is reported as
// absence, never as a startup failure.
package store

import (
	"context"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

// StateRepository is the persistence adapter for the document service and the
// configuration consumers. All methods are safe for concurrent use.
type StateRepository interface {
	// SaveDocumentState serializes the full document collection and the
	// active selection into durable storage, replacing the previous state.
	SaveDocumentState(ctx context.Context, state models.DocumentState) error

	// LoadDocumentState restores the persisted document collection. The
	// second return value is false when no usable state exists: never
	// written, or written but unparseable (the corruption is logged and
	// treated as absence so startup can seed a fresh collection).
	LoadDocumentState(ctx context.Context) (models.DocumentState, bool, error)

	// LoadLegacyContent returns the single-document content written by
	// pre-collection versions of the state schema, or an empty string. Used
	// once at startup when no document collection exists yet.
	LoadLegacyContent(ctx context.Context) (string, error)

	// SavePreferences persists every preference flag as its string form.
	SavePreferences(ctx context.Context, prefs models.Preferences) error

	// LoadPreferences restores the preference flags, substituting the
	// documented default for any value that is absent or unparseable.
	LoadPreferences(ctx context.Context) (models.Preferences, error)

	// SaveToken persists the remote access token.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the persisted access token, or an empty string when
	// none was stored.
	LoadToken(ctx context.Context) (string, error)

	// SaveRepoTarget persists the remote repository target.
	SaveRepoTarget(ctx context.Context, target models.RepoTarget) error

	// LoadRepoTarget returns the persisted repository target. Missing fields
	// come back empty; the caller decides whether that is an error.
	LoadRepoTarget(ctx context.Context) (models.RepoTarget, error)
}
