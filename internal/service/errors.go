package service

import "errors"

var (
	// ErrDocumentNotFound is returned by lookups targeting an id that does
	// not exist in the collection.
	ErrDocumentNotFound = errors.New("document not found")
)
