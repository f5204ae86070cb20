package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m-hosseinpour/bidi-markdown/internal/adapter"
	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/utils"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

type syncService struct {
	remote adapter.RemoteStore
	logger *logger.Logger
	uuid   *utils.UUIDGenerator

	// runMu serializes whole sync invocations: concurrent pushes against the
	// same document set would race on version-marker reads.
	runMu sync.Mutex
}

// NewSyncService constructs the reconciliation engine over the given remote
// store.
func NewSyncService(remote adapter.RemoteStore, log *logger.Logger) SyncService {
	return &syncService{
		remote: remote,
		logger: log,
		uuid:   utils.NewUUIDGenerator(),
	}
}

// PushAll implements [SyncService]. Files are processed strictly one at a
// time, in the order of state.Documents; per-file outcomes land in the
// result's succeeded, failed, or skipped sequences and never abort siblings.
func (s *syncService) PushAll(ctx context.Context, state models.DocumentState, overwrite bool) (models.SyncResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log := s.runLogger("push")
	var result models.SyncResult

	for _, doc := range state.Documents {
		path := RemotePath(doc.Name)

		existing, err := s.remote.ReadFile(ctx, path)
		switch {
		case err == nil:
			if !overwrite {
				log.Debug().Str("path", path).Msg("remote file exists, skipping")
				result.Skipped = append(result.Skipped, models.SkippedFile{
					ID: doc.ID, Name: doc.Name, Reason: models.SkipReasonExists,
				})
				continue
			}
			s.writeDocument(ctx, log, &result, doc, path,
				fmt.Sprintf("Update %s via bidi-markdown", path), existing.SHA)

		case errors.Is(err, adapter.ErrNotFound):
			s.writeDocument(ctx, log, &result, doc, path,
				fmt.Sprintf("Create %s via bidi-markdown", path), "")

		case errors.Is(err, adapter.ErrNoToken), errors.Is(err, adapter.ErrNoRepository):
			// configuration errors block the whole batch, not one file
			return models.SyncResult{}, err

		default:
			log.Warn().Err(err).Str("path", path).Msg("remote read failed")
			result.Failed = append(result.Failed, models.FailedFile{
				ID: doc.ID, Name: doc.Name, Err: err.Error(),
			})
		}
	}

	log.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Int("skipped", len(result.Skipped)).
		Msg("push finished")

	return result, nil
}

func (s *syncService) writeDocument(ctx context.Context, log *logger.Logger, result *models.SyncResult, doc models.Document, path, message, sha string) {
	if _, err := s.remote.WriteFile(ctx, path, doc.Content, message, sha); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("remote write failed")
		result.Failed = append(result.Failed, models.FailedFile{
			ID: doc.ID, Name: doc.Name, Err: err.Error(),
		})
		return
	}

	result.Succeeded = append(result.Succeeded, models.SyncedFile{
		ID: doc.ID, Name: doc.Name, Path: path,
	})
}

// PullAll implements [SyncService]. The listing failure mode is the only one
// that aborts: with no file list there is nothing to isolate. Each listed
// file is then read and applied independently.
func (s *syncService) PullAll(ctx context.Context, upsert UpsertFunc) (models.SyncResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log := s.runLogger("pull")

	files, err := s.remote.ListMarkdownFiles(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("list remote files: %w", err)
	}

	var result models.SyncResult
	for _, file := range files {
		remote, err := s.remote.ReadFile(ctx, file.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", file.Path).Msg("remote read failed")
			result.Failed = append(result.Failed, models.FailedFile{
				Name: NameFromPath(file.Path), Err: err.Error(),
			})
			continue
		}

		name := NameFromPath(file.Path)
		id := upsert(name, remote.Content)
		result.Succeeded = append(result.Succeeded, models.SyncedFile{
			ID: id, Name: name, Path: file.Path,
		})
	}

	log.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("pull finished")

	return result, nil
}

// runLogger returns a child logger tagged with a fresh correlation id so all
// entries of one sync run can be grouped.
func (s *syncService) runLogger(direction string) *logger.Logger {
	child := s.logger.GetChildLogger()
	child.Logger = child.With().
		Str("sync_run", s.uuid.Generate()).
		Str("direction", direction).
		Logger()
	return child
}
