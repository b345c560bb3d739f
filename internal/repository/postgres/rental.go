package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, name, email, phone, start_date, end_date, delivery_type, address, price_cents, status, generator_id, created_at`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	rental.CreatedAt = time.Now().UTC()
	rental.ID = time.Now().UnixMilli()

	query := `INSERT INTO rentals (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for {
		_, err := r.db.ExecContext(ctx, query,
			rental.ID, rental.Name, rental.Email, rental.Phone,
			rental.StartDate, rental.EndDate, rental.DeliveryType, rental.Address,
			rental.PriceCents, rental.Status, rental.GeneratorID, rental.CreatedAt)
		if err == nil {
			return nil
		}
		// Millisecond ids can collide under back-to-back creates; bump and retry.
		if isUniqueViolation(err) {
			rental.ID++
			continue
		}
		return err
	}
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rental := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rental.ID, &rental.Name, &rental.Email, &rental.Phone,
		&rental.StartDate, &rental.EndDate, &rental.DeliveryType, &rental.Address,
		&rental.PriceCents, &rental.Status, &rental.GeneratorID, &rental.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *rentalRepository) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := rows.Scan(
			&rental.ID, &rental.Name, &rental.Email, &rental.Phone,
			&rental.StartDate, &rental.EndDate, &rental.DeliveryType, &rental.Address,
			&rental.PriceCents, &rental.Status, &rental.GeneratorID, &rental.CreatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, generator_id=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, rental.Status, rental.GeneratorID, rental.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return rental, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
