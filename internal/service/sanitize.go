package service

import (
	"regexp"
	"strings"
)

const (
	// markdownSuffix is the remote file extension appended to every
	// sanitized document name.
	markdownSuffix = ".md"

	// fallbackFileName is used when sanitization leaves nothing of a name.
	fallbackFileName = "untitled-file"

	// maxFileNameLength caps the sanitized name, before the suffix.
	maxFileNameLength = 100
)

// invalidPathChars matches every run of characters that may not appear in a
// remote path segment. Whitespace falls in this class, so whitespace runs and
// forbidden characters alike collapse into a single hyphen.
var invalidPathChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

var repeatedHyphens = regexp.MustCompile(`-{2,}`)

// SanitizeName deterministically transforms a document display name into a
// filesystem- and URL-safe path segment. The transformation is idempotent:
// applying it to its own output changes nothing.
func SanitizeName(name string) string {
	s := strings.TrimSpace(name)
	s = invalidPathChars.ReplaceAllString(s, "-")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	s = strings.ToLower(s)

	if len(s) > maxFileNameLength {
		s = s[:maxFileNameLength]
	}
	// trailing hyphens may reappear after truncation, so trim last
	s = strings.Trim(s, "-")

	if s == "" {
		return fallbackFileName
	}
	return s
}

// RemotePath maps a document name onto its remote repository path.
func RemotePath(name string) string {
	return SanitizeName(name) + markdownSuffix
}

// NameFromPath derives the local document name for a pulled remote file by
// stripping the trailing ".md" suffix. The mapping is lossy: a document named
// "Notes" pushes to "notes.md", and pulling that file yields a distinct
// document named "notes". This asymmetry is accepted, not corrected.
func NameFromPath(path string) string {
	return strings.TrimSuffix(path, markdownSuffix)
}
