package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

// countingSyncService counts PullAll invocations.
type countingSyncService struct {
	pulls atomic.Int64
}

func (s *countingSyncService) PushAll(ctx context.Context, state models.DocumentState, overwrite bool) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (s *countingSyncService) PullAll(ctx context.Context, upsert UpsertFunc) (models.SyncResult, error) {
	s.pulls.Add(1)
	return models.SyncResult{}, nil
}

func TestSyncJob_RunsPeriodically(t *testing.T) {
	docs := newTestDocumentService(t, &stubStateRepository{}, time.Hour)
	syncSvc := &countingSyncService{}

	job := NewSyncJob(syncSvc, docs, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return syncSvc.pulls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestSyncJob_StopTerminatesRun(t *testing.T) {
	docs := newTestDocumentService(t, &stubStateRepository{}, time.Hour)
	syncSvc := &countingSyncService{}

	job := NewSyncJob(syncSvc, docs, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return syncSvc.pulls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	after := syncSvc.pulls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, syncSvc.pulls.Load())
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewSyncJob(&countingSyncService{}, nil, logger.Nop())
	assert.NotPanics(t, job.Stop)
	assert.NotPanics(t, job.Stop)
}

func TestSyncJob_RestartReplacesPreviousRun(t *testing.T) {
	docs := newTestDocumentService(t, &stubStateRepository{}, time.Hour)
	syncSvc := &countingSyncService{}

	job := NewSyncJob(syncSvc, docs, logger.Nop())
	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return syncSvc.pulls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}
