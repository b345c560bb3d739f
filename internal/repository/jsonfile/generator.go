package jsonfile

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
)

// defaultPoolSize is the fixed starting fleet seeded on first run.
const defaultPoolSize = 3

type generatorRepository struct {
	mu   sync.RWMutex
	path string
}

func NewGeneratorRepository(path string) repository.GeneratorRepository {
	return &generatorRepository{path: path}
}

func (r *generatorRepository) InitializeDefault(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return err
	}
	if len(generators) > 0 {
		return nil
	}

	for i := 1; i <= defaultPoolSize; i++ {
		generators = append(generators, domain.Generator{
			ID:        int32(i),
			Name:      fmt.Sprintf("Generator %d", i),
			InService: true,
			Available: true,
		})
	}
	logger.StorageCall("seed", "generators.json", "count", defaultPoolSize)
	err = writeCollection(r.path, generators)
	logger.StorageResult("seed", err)
	return err
}

func (r *generatorRepository) List(ctx context.Context) ([]domain.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return nil, err
	}
	sort.Slice(generators, func(i, j int) bool { return generators[i].ID < generators[j].ID })
	return generators, nil
}

func (r *generatorRepository) GetByID(ctx context.Context, id int32) (*domain.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return nil, err
	}
	for i := range generators {
		if generators[i].ID == id {
			generator := generators[i]
			return &generator, nil
		}
	}
	return nil, domain.ErrGeneratorNotFound
}

func (r *generatorRepository) FindAvailable(ctx context.Context) (*domain.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return nil, err
	}
	sort.Slice(generators, func(i, j int) bool { return generators[i].ID < generators[j].ID })
	for i := range generators {
		if generators[i].InService && generators[i].Available {
			generator := generators[i]
			return &generator, nil
		}
	}
	return nil, domain.ErrNoGeneratorsAvailable
}

func (r *generatorRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return err
	}
	for i := range generators {
		if generators[i].ID == id {
			generators[i].Available = available
			logger.StorageCall("set_availability", "generators.json", "generator_id", id, "available", available)
			err = writeCollection(r.path, generators)
			logger.StorageResult("set_availability", err, "generator_id", id)
			return err
		}
	}
	return domain.ErrGeneratorNotFound
}

func (r *generatorRepository) ToggleInService(ctx context.Context, id int32) (*domain.Generator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	generators, err := readCollection[domain.Generator](r.path)
	if err != nil {
		return nil, err
	}
	for i := range generators {
		if generators[i].ID == id {
			generators[i].InService = !generators[i].InService
			logger.StorageCall("toggle_in_service", "generators.json", "generator_id", id, "in_service", generators[i].InService)
			err = writeCollection(r.path, generators)
			logger.StorageResult("toggle_in_service", err, "generator_id", id)
			if err != nil {
				return nil, err
			}
			generator := generators[i]
			return &generator, nil
		}
	}
	return nil, domain.ErrGeneratorNotFound
}
