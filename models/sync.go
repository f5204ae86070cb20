package models

// SyncedFile records one document that was successfully pushed or pulled.
type SyncedFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// FailedFile records one document whose sync attempt failed, together with a
// human-readable error message. Failures are always per-file: one file's
// failure never aborts its siblings.
type FailedFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Err  string `json:"error"`
}

// SkippedFile records one document that was deliberately not written, e.g.
// because the remote file already exists and overwrite was not requested.
type SkippedFile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SkipReasonExists marks documents skipped because the remote path is
// already occupied and the overwrite policy was off.
const SkipReasonExists = "exists"

// SyncResult is the per-invocation classification of a bulk sync run. It is
// transient and never persisted; the three sequences preserve the processing
// order of the input collection.
type SyncResult struct {
	Succeeded []SyncedFile  `json:"succeeded"`
	Failed    []FailedFile  `json:"failed"`
	Skipped   []SkippedFile `json:"skipped"`
}

// Total returns the number of files the sync run classified.
func (r SyncResult) Total() int {
	return len(r.Succeeded) + len(r.Failed) + len(r.Skipped)
}
