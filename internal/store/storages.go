package store

import (
	"context"
	"fmt"

	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/migrations"
)

// Storages bundles all repositories behind one constructor so that the
// service layer receives a single wired dependency.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	CapsuleRepository CapsuleRepository
	MediaRepository   MediaRepository
	ShareRepository   ShareRepository
	FileStorage       FileStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// every repository to the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		CapsuleRepository: NewCapsuleRepository(db, log),
		MediaRepository:   NewMediaRepository(db, log),
		ShareRepository:   NewShareRepository(db, log),
		FileStorage:       NewLocalFileStorage(cfg.Files, log),
	}, nil
}
