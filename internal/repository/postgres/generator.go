package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/repository"
)

const defaultPoolSize = 3

type generatorRepository struct {
	db *sql.DB
}

func NewGeneratorRepository(db *sql.DB) repository.GeneratorRepository {
	return &generatorRepository{db: db}
}

func (r *generatorRepository) InitializeDefault(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM generators`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := 1; i <= defaultPoolSize; i++ {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO generators (id, name, is_active, is_available) VALUES ($1, $2, TRUE, TRUE)
			 ON CONFLICT (id) DO NOTHING`,
			i, fmt.Sprintf("Generator %d", i))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *generatorRepository) List(ctx context.Context) ([]domain.Generator, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, is_active, is_available FROM generators ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generators []domain.Generator
	for rows.Next() {
		var g domain.Generator
		if err := rows.Scan(&g.ID, &g.Name, &g.InService, &g.Available); err != nil {
			return nil, err
		}
		generators = append(generators, g)
	}
	return generators, rows.Err()
}

func (r *generatorRepository) GetByID(ctx context.Context, id int32) (*domain.Generator, error) {
	g := &domain.Generator{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, is_active, is_available FROM generators WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.InService, &g.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGeneratorNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *generatorRepository) FindAvailable(ctx context.Context) (*domain.Generator, error) {
	g := &domain.Generator{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, is_active, is_available FROM generators
		 WHERE is_active AND is_available ORDER BY id ASC LIMIT 1`).
		Scan(&g.ID, &g.Name, &g.InService, &g.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoGeneratorsAvailable
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *generatorRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE generators SET is_available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGeneratorNotFound
	}
	return nil
}

func (r *generatorRepository) ToggleInService(ctx context.Context, id int32) (*domain.Generator, error) {
	g := &domain.Generator{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE generators SET is_active = NOT is_active WHERE id = $1
		 RETURNING id, name, is_active, is_available`, id).
		Scan(&g.ID, &g.Name, &g.InService, &g.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGeneratorNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
