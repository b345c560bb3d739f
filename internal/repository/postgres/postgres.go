package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"genrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.GeneratorRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		RentalRepository:    NewRentalRepository(db),
		GeneratorRepository: NewGeneratorRepository(db),
	}
}

// EnsureSchema creates the two collections if they do not exist yet.
// There is no migration mechanism; structure changes need a compatible
// default on the new column.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rentals (
			id            BIGINT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL,
			phone         TEXT NOT NULL,
			start_date    TEXT NOT NULL,
			end_date      TEXT NOT NULL,
			delivery_type TEXT NOT NULL,
			address       TEXT NOT NULL DEFAULT '',
			price_cents   INTEGER NOT NULL,
			status        TEXT NOT NULL,
			generator_id  INTEGER,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS generators (
			id           INTEGER PRIMARY KEY,
			name         TEXT NOT NULL,
			is_active    BOOLEAN NOT NULL DEFAULT TRUE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
