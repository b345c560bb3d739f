package jsonfile

import (
	"context"
	"sort"
	"sync"
	"time"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
)

type rentalRepository struct {
	mu   sync.RWMutex
	path string
}

func NewRentalRepository(path string) repository.RentalRepository {
	return &rentalRepository{path: path}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rentals, err := readCollection[domain.Rental](r.path)
	if err != nil {
		return err
	}

	rental.ID = nextID(rentals)
	rental.CreatedAt = time.Now().UTC()
	rentals = append(rentals, *rental)

	logger.StorageCall("create", "rentals.json", "rental_id", rental.ID)
	err = writeCollection(r.path, rentals)
	logger.StorageResult("create", err, "rental_id", rental.ID)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rentals, err := readCollection[domain.Rental](r.path)
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		if rentals[i].ID == id {
			rental := rentals[i]
			return &rental, nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

func (r *rentalRepository) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rentals, err := readCollection[domain.Rental](r.path)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := rentals[:0:0]
		for _, rental := range rentals {
			if rental.Status == status {
				filtered = append(filtered, rental)
			}
		}
		rentals = filtered
	}

	sort.Slice(rentals, func(i, j int) bool {
		if !rentals[i].CreatedAt.Equal(rentals[j].CreatedAt) {
			return rentals[i].CreatedAt.After(rentals[j].CreatedAt)
		}
		return rentals[i].ID > rentals[j].ID
	})
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rentals, err := readCollection[domain.Rental](r.path)
	if err != nil {
		return err
	}
	for i := range rentals {
		if rentals[i].ID == rental.ID {
			rentals[i] = *rental
			logger.StorageCall("update", "rentals.json", "rental_id", rental.ID, "status", rental.Status)
			err = writeCollection(r.path, rentals)
			logger.StorageResult("update", err, "rental_id", rental.ID)
			return err
		}
	}
	return domain.ErrRentalNotFound
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) (*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rentals, err := readCollection[domain.Rental](r.path)
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		if rentals[i].ID == id {
			removed := rentals[i]
			rentals = append(rentals[:i], rentals[i+1:]...)
			logger.StorageCall("delete", "rentals.json", "rental_id", id)
			err = writeCollection(r.path, rentals)
			logger.StorageResult("delete", err, "rental_id", id)
			if err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

// nextID assigns a Unix-millisecond id, bumped past any collision so ids
// stay unique and monotonic within the collection.
func nextID(rentals []domain.Rental) int64 {
	id := time.Now().UnixMilli()
	for _, rental := range rentals {
		if rental.ID >= id {
			id = rental.ID + 1
		}
	}
	return id
}
