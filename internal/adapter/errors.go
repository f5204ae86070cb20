package adapter

import "errors"

// Sentinel errors surfaced by [RemoteStore] implementations. Match with
// [errors.Is]; transport-level failures (DNS, TLS, timeouts) are wrapped
// driver errors and match none of these.
var (
	// ErrNoToken indicates that no access token is configured. Checked
	// eagerly, before any request is sent.
	ErrNoToken = errors.New("no access token configured")

	// ErrNoRepository indicates that the repository owner or name is
	// missing. Checked eagerly, before any request is sent.
	ErrNoRepository = errors.New("no repository configured")

	// ErrNotFound indicates the requested path does not exist at the
	// configured branch.
	ErrNotFound = errors.New("remote file not found")

	// ErrConflict indicates the supplied version marker is stale: the remote
	// file changed since it was last read.
	ErrConflict = errors.New("remote version conflict")

	// ErrUnauthorized indicates the remote rejected the configured token.
	ErrUnauthorized = errors.New("remote rejected credentials")

	// ErrRemoteAPI indicates any other non-2xx response; the wrapped message
	// carries the server-supplied error text.
	ErrRemoteAPI = errors.New("remote api error")
)
