package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/store"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

// defaultDocumentName is given to documents created without a name.
const defaultDocumentName = "New File"

type documentService struct {
	repo     store.StateRepository
	debounce time.Duration
	logger   *logger.Logger

	mu       sync.Mutex
	docs     []models.Document
	activeID string
	lastID   int64

	timerMu    sync.Mutex
	flushTimer *time.Timer
	closed     bool
}

// NewDocumentService restores the document collection from the persistence
// adapter, seeding one empty "New File" document when no usable state exists
// (never written, or written but corrupt). Restoration never fails startup on
// bad data; only an unreachable state database is an error.
//
// debounce is the quiescence interval between the last mutation and the
// asynchronous flush of the full state to durable storage.
func NewDocumentService(ctx context.Context, repo store.StateRepository, debounce time.Duration, log *logger.Logger) (DocumentService, error) {
	s := &documentService{
		repo:     repo,
		debounce: debounce,
		logger:   log,
	}

	state, ok, err := repo.LoadDocumentState(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		// pre-collection schema versions stored a single markdown blob;
		// recover it into the seeded document instead of discarding it
		content, err := repo.LoadLegacyContent(ctx)
		if err != nil {
			return nil, err
		}

		id := s.nextID()
		state = models.DocumentState{
			Documents: []models.Document{{ID: id, Name: defaultDocumentName, Content: content}},
			ActiveID:  id,
		}
		log.Info().Str("id", id).Msg("no saved documents, seeding a fresh collection")
	}
	if state.ActiveID == "" {
		state.ActiveID = state.Documents[0].ID
	}

	s.docs = state.Documents
	s.activeID = state.ActiveID

	return s, nil
}

// nextID issues a millisecond-timestamp-based id, resolving collisions within
// the same instant by incrementing. Callers must hold no assumption about the
// format beyond opacity and uniqueness.
func (s *documentService) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

// Create implements [DocumentService].
func (s *documentService) Create(ctx context.Context, name, content string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultDocumentName
	}

	s.mu.Lock()
	id := s.nextID()
	s.docs = append(s.docs, models.Document{ID: id, Name: name, Content: content})
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("id", id).Str("name", name).Msg("document created")
	s.markDirty()
	return id
}

// SwitchActive implements [DocumentService].
func (s *documentService) SwitchActive(ctx context.Context, id, currentBuffer string) (models.Document, bool) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Document{}, false
	}

	// the editor buffer belongs to the outgoing document; capture it before
	// the selection moves
	if prev := s.indexOf(s.activeID); prev >= 0 {
		s.docs[prev].Content = currentBuffer
	}
	s.activeID = id
	doc := s.docs[idx]
	s.mu.Unlock()

	s.markDirty()
	return doc, true
}

// UpdateContent implements [DocumentService].
func (s *documentService) UpdateContent(ctx context.Context, id, content string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.docs[idx].Content = content
	s.mu.Unlock()

	s.markDirty()
}

// Delete implements [DocumentService].
func (s *documentService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()

	if len(s.docs) <= 1 {
		s.mu.Unlock()
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.docs = append(s.docs[:idx], s.docs[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.docs[0].ID
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("id", id).Msg("document deleted")
	s.markDirty()
	return true
}

// Rename implements [DocumentService].
func (s *documentService) Rename(ctx context.Context, id, newName string) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.docs[idx].Name = newName
	s.mu.Unlock()

	s.markDirty()
}

// UpsertByName implements [DocumentService]. The lookup is a deliberate
// linear scan in insertion order: collections are small and the first match
// is the documented winner when names collide.
func (s *documentService) UpsertByName(ctx context.Context, name, content string) string {
	s.mu.Lock()
	for i := range s.docs {
		if s.docs[i].Name == name {
			s.docs[i].Content = content
			id := s.docs[i].ID
			s.mu.Unlock()
			s.markDirty()
			return id
		}
	}

	id := s.nextID()
	s.docs = append(s.docs, models.Document{ID: id, Name: name, Content: content})
	s.mu.Unlock()

	s.markDirty()
	return id
}

// Get implements [DocumentService].
func (s *documentService) Get(ctx context.Context, id string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.docs[idx], nil
	}
	return models.Document{}, ErrDocumentNotFound
}

// Active implements [DocumentService].
func (s *documentService) Active(ctx context.Context) (models.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(s.activeID); idx >= 0 {
		return s.docs[idx], true
	}
	return models.Document{}, false
}

// Snapshot implements [DocumentService].
func (s *documentService) Snapshot(ctx context.Context) models.DocumentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]models.Document, len(s.docs))
	copy(docs, s.docs)
	return models.DocumentState{Documents: docs, ActiveID: s.activeID}
}

// Close implements [DocumentService].
func (s *documentService) Close(ctx context.Context, currentBuffer string) error {
	s.timerMu.Lock()
	s.closed = true
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
	s.timerMu.Unlock()

	s.mu.Lock()
	if idx := s.indexOf(s.activeID); idx >= 0 {
		s.docs[idx].Content = currentBuffer
	}
	state := models.DocumentState{Documents: s.docs, ActiveID: s.activeID}
	s.mu.Unlock()

	return s.repo.SaveDocumentState(ctx, state)
}

// indexOf returns the insertion-order index of id, or -1. Callers must hold
// s.mu.
func (s *documentService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.docs {
		if s.docs[i].ID == id {
			return i
		}
	}
	return -1
}

// markDirty arms the debounced flush. A new mutation resets the timer rather
// than queueing another flush, so only the most recent mutation's flush fires
// after the quiescence interval.
func (s *documentService) markDirty() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.closed {
		return
	}
	if s.flushTimer != nil {
		s.flushTimer.Stop()
	}
	s.flushTimer = time.AfterFunc(s.debounce, s.flush)
}

// flush persists the current state. It is fire-and-forget: no mutating caller
// ever awaits it, and failures are only logged.
func (s *documentService) flush() {
	s.mu.Lock()
	docs := make([]models.Document, len(s.docs))
	copy(docs, s.docs)
	state := models.DocumentState{Documents: docs, ActiveID: s.activeID}
	s.mu.Unlock()

	if err := s.repo.SaveDocumentState(context.Background(), state); err != nil {
		s.logger.Err(err).Msg("debounced document flush failed")
	}
}
