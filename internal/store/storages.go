package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/staff-keeper/internal/config"
	"github.com/MKhiriev/staff-keeper/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. Services receive repositories through this container.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}, nil
}
