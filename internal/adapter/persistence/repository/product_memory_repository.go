package repository

import (
	"context"
	"sync"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"
)

// ProductMemoryRepository is the in-memory product catalog.
//
// A map holds the entries and a slice remembers insertion order, so the
// catalog lists the way it was built. Saving an existing name replaces
// the entry in place without moving it.

type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[string]entities.Product
	order    []string
}

var _ interfaces.IProductRepository = (*ProductMemoryRepository)(nil)

func NewProductMemoryRepository(seed ...entities.Product) *ProductMemoryRepository {
	r := &ProductMemoryRepository{products: make(map[string]entities.Product, len(seed))}
	for _, p := range seed {
		r.put(p)
	}
	return r
}

func (r *ProductMemoryRepository) put(p entities.Product) {
	if _, exists := r.products[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.products[p.Name] = p
}

func (r *ProductMemoryRepository) Save(ctx context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(p)
	return p, nil
}

func (r *ProductMemoryRepository) GetByName(ctx context.Context, name string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.products[name], nil
}

func (r *ProductMemoryRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Product, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.products[name])
	}
	return out, nil
}
