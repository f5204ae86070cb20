package service

import (
	"context"

	"github.com/m-hosseinpour/bidi-markdown/internal/adapter"
	"github.com/m-hosseinpour/bidi-markdown/internal/config"
	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/store"
)

// Services bundles every application service behind its interface.
type Services struct {
	Documents DocumentService
	Sync      SyncService
	SyncJob   SyncJob
	Settings  SettingsService
}

// NewServices wires the full service layer over the state repository and the
// remote store. The document collection is restored from the repository (or
// seeded) before this returns.
func NewServices(ctx context.Context, cfg *config.StructuredConfig, repo store.StateRepository, remote adapter.RemoteStore, log *logger.Logger) (*Services, error) {
	documents, err := NewDocumentService(ctx, repo, cfg.Editor.FlushDebounce, log.GetChildLogger())
	if err != nil {
		return nil, err
	}

	syncSvc := NewSyncService(remote, log.GetChildLogger())

	return &Services{
		Documents: documents,
		Sync:      syncSvc,
		SyncJob:   NewSyncJob(syncSvc, documents, log.GetChildLogger()),
		Settings:  NewSettingsService(repo, log.GetChildLogger()),
	}, nil
}
