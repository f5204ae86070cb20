package models

// RemoteFile describes one file fetched from or destined for the remote
// repository-backed store. Values of this type are transient: they are
// produced per sync operation and never persisted locally.
type RemoteFile struct {
	// Name is the file name without directory components, e.g. "notes.md".
	Name string `json:"name"`

	// Path is the repository-relative path of the file.
	Path string `json:"path"`

	// Content is the decoded UTF-8 text of the file. Empty for entries
	// returned by a directory listing.
	Content string `json:"-"`

	// SHA is the remote version marker (content hash) used for optimistic
	// concurrency control on writes and deletes.
	SHA string `json:"sha"`
}

// CommitInfo describes the commit produced by a remote write or delete.
type CommitInfo struct {
	// SHA is the hash of the commit that recorded the change.
	SHA string `json:"sha"`

	// HTMLURL points at the commit on the remote host, when provided.
	HTMLURL string `json:"html_url"`
}

// RepoTarget identifies the remote repository and branch all sync operations
// run against. The zero value means no repository has been configured.
type RepoTarget struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

// IsConfigured reports whether both owner and repository name are set.
func (t RepoTarget) IsConfigured() bool {
	return t.Owner != "" && t.Repo != ""
}
