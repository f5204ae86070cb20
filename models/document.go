package models

// Document represents a single user-authored markdown text unit managed by
// the editor. Documents are owned exclusively by the document service:
// created on a new-file action or a remote pull, mutated on edit or rename,
// and destroyed only by an explicit delete.
type Document struct {
	// ID is the opaque unique identifier of the document. It is immutable
	// once assigned and never reused while the document exists.
	ID string `json:"id"`

	// Name is the display name of the document. Names are not required to
	// be unique across the collection.
	Name string `json:"name"`

	// Content is the raw markdown text of the document.
	Content string `json:"content"`
}

// DocumentState is a snapshot of the whole document collection together with
// the current active selection. Documents preserves insertion order, which is
// the deterministic iteration order for sync and name lookup.
type DocumentState struct {
	// Documents holds every document in insertion order.
	Documents []Document `json:"documents"`

	// ActiveID is the id of the document currently loaded into the editor,
	// or an empty string when no selection is set. When set it always
	// references an entry in Documents.
	ActiveID string `json:"active_id"`
}

// Get returns the document with the given id and whether it exists.
func (s DocumentState) Get(id string) (Document, bool) {
	for _, doc := range s.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}
