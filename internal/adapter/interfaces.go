// Package adapter provides the transport layer between bidi-markdown and the
// remote repository-backed file store.
//
// The primary abstraction is [RemoteStore], a thin typed client over the
// GitHub contents API: read, write, delete and list files by path, each read
// returning the content together with its version marker (content hash).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

// RemoteStore defines typed access to a remote repository content API under
// one authentication token and one fixed {owner, repository, branch} target.
// Implementations are responsible for transport encoding, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package. Errors are always surfaced to the caller,
// never swallowed at this layer.
type RemoteStore interface {
	// ReadFile fetches the file at path on the configured branch. The
	// returned RemoteFile carries the decoded UTF-8 content and the version
	// marker. Returns [ErrNotFound] (wrapped) when the path does not exist.
	ReadFile(ctx context.Context, path string) (models.RemoteFile, error)

	// WriteFile creates or updates the file at path. When sha is empty the
	// file is created; when set, the remote performs an atomic
	// compare-and-swap and the write fails with [ErrConflict] (wrapped) if
	// the marker is stale. Content is transport-encoded (UTF-8 bytes, then
	// base64) before sending.
	WriteFile(ctx context.Context, path, content, message, sha string) (models.CommitInfo, error)

	// DeleteFile removes the file at path. Fails with [ErrConflict]
	// (wrapped) when sha does not match the current remote state.
	DeleteFile(ctx context.Context, path, message, sha string) (models.CommitInfo, error)

	// ListMarkdownFiles lists the repository root and returns the entries
	// that are files with a ".md" path suffix. Listing entries carry name,
	// path and version marker but no content.
	ListMarkdownFiles(ctx context.Context) ([]models.RemoteFile, error)
}
