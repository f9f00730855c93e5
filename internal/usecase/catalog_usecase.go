package usecase

import (
	"context"
	"errors"
	"strings"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"
)

var ErrEmptyProductField = errors.New("empty product field")

// ICatalogUseCase manages the product reference data.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	AddProduct(ctx context.Context, name, category, unit string) (entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.ListAll(ctx)
}

// AddProduct inserts a catalog entry. Adding a name that already exists
// overwrites the prior entry in place; the name is the catalog key and
// no uniqueness error is raised.
func (u *CatalogUseCase) AddProduct(ctx context.Context, name, category, unit string) (entities.Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	unit = strings.TrimSpace(unit)
	if name == "" || category == "" || unit == "" {
		return entities.Product{}, ErrEmptyProductField
	}

	return u.repo.Save(ctx, entities.Product{Name: name, Category: category, Unit: unit})
}
