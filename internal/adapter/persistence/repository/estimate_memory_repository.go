package repository

import (
	"context"
	"sync"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"
)

// EstimateMemoryRepository keeps estimates in an append-only slice for
// the lifetime of the process. This is the default store.
//
// gin serves requests concurrently, so appends and reads are serialized
// with a single RWMutex; the slice itself is never mutated in place.

type EstimateMemoryRepository struct {
	mu        sync.RWMutex
	estimates []entities.Estimate
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository() *EstimateMemoryRepository {
	return &EstimateMemoryRepository{}
}

func (r *EstimateMemoryRepository) Append(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.estimates = append(r.estimates, e)
	return e, nil
}

func (r *EstimateMemoryRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.estimates {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.Estimate{}, nil
}

func (r *EstimateMemoryRepository) ListAll(ctx context.Context) ([]entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Estimate, len(r.estimates))
	copy(out, r.estimates)
	return out, nil
}

func (r *EstimateMemoryRepository) ListByStatus(ctx context.Context, status entities.EstimateStatus) ([]entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Estimate, 0, len(r.estimates))
	for _, e := range r.estimates {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}
