package repository

import (
	"context"

	"genrent-backend/internal/domain"
)

type RentalRepository interface {
	// Create assigns a unique time-based id and the creation timestamp,
	// then persists the record with whatever status and assignment the
	// caller set.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// List returns all rentals, or only those matching status when it is
	// non-empty, sorted by creation time descending.
	List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// Delete removes the record and returns it, or ErrRentalNotFound.
	Delete(ctx context.Context, id int64) (*domain.Rental, error)
}

type GeneratorRepository interface {
	// InitializeDefault seeds the fixed starting pool if, and only if,
	// no pool exists yet. Calling it against an existing pool is a no-op.
	InitializeDefault(ctx context.Context) error
	List(ctx context.Context) ([]domain.Generator, error)
	GetByID(ctx context.Context, id int32) (*domain.Generator, error)
	// FindAvailable returns the lowest-id generator that is in service
	// and not currently assigned, or ErrNoGeneratorsAvailable.
	FindAvailable(ctx context.Context) (*domain.Generator, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	// ToggleInService flips the in-service flag and returns the updated
	// generator. It never releases a unit a rental already holds.
	ToggleInService(ctx context.Context, id int32) (*domain.Generator, error)
}
