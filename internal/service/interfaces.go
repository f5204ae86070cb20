// Package service implements the bidi-markdown core: the canonical
// in-memory document collection with debounced persistence, and the sync
// engine reconciling it against the remote repository-backed file store.
package service

import (
	"context"
	"time"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

// DocumentService owns the canonical in-memory document collection and its
// persistence. It enforces the collection invariants: at least one document
// after initialization, a valid active selection, and immutable ids. All
// methods are safe for concurrent use.
//
// The service does not own the live text-input widget; callers hand the
// current editor buffer in at the points where it must be captured
// (SwitchActive, Close).
type DocumentService interface {
	// Create inserts a new document and returns its id. An empty name (after
	// trimming) falls back to "New File"; content may be empty. The active
	// selection is not changed. The returned id is unique even under rapid
	// successive calls within the same millisecond.
	Create(ctx context.Context, name, content string) string

	// SwitchActive makes the document with the given id active. Unknown ids
	// are a silent no-op (ok is false). When a previous active document
	// exists, currentBuffer (the caller-supplied live editor content) is
	// flushed into it first. Returns the newly active document so the caller
	// can load it into the editor and re-render.
	SwitchActive(ctx context.Context, id, currentBuffer string) (doc models.Document, ok bool)

	// UpdateContent replaces the content of the document with the given id.
	// Unknown ids are a silent no-op.
	UpdateContent(ctx context.Context, id, content string)

	// Delete removes the document with the given id. It returns false and
	// mutates nothing when the collection holds a single document, so the
	// store is never left empty. When the removed document was active the
	// selection moves to the first remaining document in insertion order;
	// callers should reload the active document afterwards.
	Delete(ctx context.Context, id string) bool

	// Rename changes the display name of the document with the given id.
	// Unknown ids and names that are empty after trimming are silent no-ops.
	Rename(ctx context.Context, id, newName string)

	// UpsertByName overwrites the content of the first document (in
	// insertion order) whose name equals name, creating a new document when
	// no match exists. Returns the affected id. This is the pull-side entry
	// point of the sync engine.
	UpsertByName(ctx context.Context, name, content string) string

	// Get returns the document with the given id, or [ErrDocumentNotFound].
	Get(ctx context.Context, id string) (models.Document, error)

	// Active returns the currently active document. ok is false only before
	// a selection has ever been set.
	Active(ctx context.Context) (doc models.Document, ok bool)

	// Snapshot returns a read-only copy of the whole collection and the
	// active selection, in insertion order, for the sync engine.
	Snapshot(ctx context.Context) models.DocumentState

	// Close captures currentBuffer into the active document and flushes the
	// full state to durable storage unconditionally, bypassing the debounce.
	// Called at process teardown.
	Close(ctx context.Context, currentBuffer string) error
}

// UpsertFunc applies one pulled remote file to the local collection and
// returns the id of the affected document. [DocumentService.UpsertByName]
// wrapped in a closure is the canonical implementation.
type UpsertFunc func(name, content string) string

// SyncService is the bulk reconciliation engine between the local document
/// collection and the remote store. Invocations are serialized internally:
// a second call blocks until the running one finishes, so two concurrent
// pushes can never race on version-marker reads.
type SyncService interface {
	// PushAll uploads every document of state to the remote store. Each
	// document is processed independently and sequentially, in the order of
	// state.Documents; one file's failure never aborts its siblings. A
	// document whose remote path already exists is skipped (reason "exists")
	// unless overwrite is set, in which case it is updated under its current
	// version marker. Configuration errors (missing token or repository)
	// abort the whole batch before any file is touched.
	PushAll(ctx context.Context, state models.DocumentState, overwrite bool) (models.SyncResult, error)

	// PullAll downloads every markdown file from the remote store root and
	// applies each through upsert. Per-file read failures are captured in
	// the result; a failure of the initial listing aborts the whole
	// operation since there is nothing to iterate. The result never
	// populates the skipped category. Pull-side overwrites carry no
	// version-marker check: last write wins.
	PullAll(ctx context.Context, upsert UpsertFunc) (models.SyncResult, error)
}

// SyncJob is a background worker that periodically pulls the remote store
// into the local collection.
type SyncJob interface {
	// Start launches the background goroutine. It pulls every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}

// SettingsService exposes the persisted remote target, access token, and UI
// preference flags.
type SettingsService interface {
	// Preferences loads the stored preference flags, substituting documented
	// defaults for absent or unparseable values.
	Preferences(ctx context.Context) (models.Preferences, error)

	// SavePreferences persists the preference flags.
	SavePreferences(ctx context.Context, prefs models.Preferences) error

	// Token returns the persisted access token, or an empty string.
	Token(ctx context.Context) (string, error)

	// SetToken persists the access token.
	SetToken(ctx context.Context, token string) error

	// RepoTarget returns the persisted remote repository target.
	RepoTarget(ctx context.Context) (models.RepoTarget, error)

	// SetRepoTarget persists the remote repository target.
	SetRepoTarget(ctx context.Context, target models.RepoTarget) error
}
