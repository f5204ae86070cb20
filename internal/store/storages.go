package store

import (
	"context"
	"fmt"

	"github.com/m-hosseinpour/bidi-markdown/internal/config"
	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer. Currently it holds only [StateRepository];
// additional repositories can be added here as the feature set grows.
type Storages struct {
	// State is the sqlite-backed key-value repository holding documents,
	// remote target configuration, and UI preferences.
	State StateRepository

	db *DB
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It opens (creating if needed) the sqlite state
// database at cfg.DSN, runs pending schema migrations, and wires a fresh
// [StateRepository].
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		State: NewStateRepository(db, log),
		db:    db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
