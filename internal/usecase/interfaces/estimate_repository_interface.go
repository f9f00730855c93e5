package interfaces

import (
	"context"

	"agroexport/internal/domain/entities"
)

// IEstimateRepository abstracts the estimate store.
//
// The store is append-only: estimates are immutable once appended and
// every reporting feature derives from ListAll/ListByStatus on demand.

type IEstimateRepository interface {
	Append(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListAll(ctx context.Context) ([]entities.Estimate, error)
	ListByStatus(ctx context.Context, status entities.EstimateStatus) ([]entities.Estimate, error)
}
