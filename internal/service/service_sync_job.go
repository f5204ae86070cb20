package service

import (
	"context"
	"sync"
	"time"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	sync      SyncService
	documents DocumentService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob constructs the periodic pull job. The job applies remote
// documents through documents.UpsertByName, so local files with the same
// sanitized name are overwritten in place.
func NewSyncJob(syncSvc SyncService, documents DocumentService, log *logger.Logger) SyncJob {
	return &syncJob{
		sync:      syncSvc,
		documents: documents,
		logger:    log,
	}
}

// Start implements [SyncJob]. A non-positive interval falls back to the
// five-minute default. Calling Start again stops the previous run first.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	runCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(runCtx, interval)
}

func (j *syncJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", interval).Msg("periodic pull started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("periodic pull stopped")
			return
		case <-ticker.C:
			j.pullOnce(ctx)
		}
	}
}

func (j *syncJob) pullOnce(ctx context.Context) {
	upsert := func(name, content string) string {
		return j.documents.UpsertByName(ctx, name, content)
	}

	result, err := j.sync.PullAll(ctx, upsert)
	if err != nil {
		j.logger.Warn().Err(err).Msg("periodic pull failed")
		return
	}

	j.logger.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("periodic pull finished")
}

// Stop implements [SyncJob]. It is a no-op if the job never started and is
// safe to call more than once.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()
}
