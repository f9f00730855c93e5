package interfaces

import (
	"context"

	"agroexport/internal/domain/entities"
)

// IProductRepository abstracts the product catalog.
//
// ListAll returns products in insertion order. Save inserts a new entry
// or overwrites an existing one in place, keeping its position.

type IProductRepository interface {
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByName(ctx context.Context, name string) (entities.Product, error)
	ListAll(ctx context.Context) ([]entities.Product, error)
}
