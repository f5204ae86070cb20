package service

import (
	"context"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/store"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

type settingsService struct {
	repo   store.StateRepository
	logger *logger.Logger
}

// NewSettingsService constructs the settings facade over the state repository.
func NewSettingsService(repo store.StateRepository, log *logger.Logger) SettingsService {
	return &settingsService{repo: repo, logger: log}
}

func (s *settingsService) Preferences(ctx context.Context) (models.Preferences, error) {
	return s.repo.LoadPreferences(ctx)
}

func (s *settingsService) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	return s.repo.SavePreferences(ctx, prefs)
}

func (s *settingsService) Token(ctx context.Context) (string, error) {
	return s.repo.LoadToken(ctx)
}

func (s *settingsService) SetToken(ctx context.Context, token string) error {
	return s.repo.SaveToken(ctx, token)
}

func (s *settingsService) RepoTarget(ctx context.Context) (models.RepoTarget, error) {
	return s.repo.LoadRepoTarget(ctx)
}

func (s *settingsService) SetRepoTarget(ctx context.Context, target models.RepoTarget) error {
	return s.repo.SaveRepoTarget(ctx, target)
}
