package usecase

import (
	"context"
	"time"

	"agroexport/internal/domain/entities"
)

// IFreightUseCase serves the freight price table. The rates are static
// reference data; live freight pricing integration is out of scope.

type IFreightUseCase interface {
	ListFreightRates(ctx context.Context) ([]entities.FreightRate, error)
}

type FreightUseCase struct{}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase() *FreightUseCase {
	return &FreightUseCase{}
}

func (u *FreightUseCase) ListFreightRates(ctx context.Context) ([]entities.FreightRate, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return []entities.FreightRate{
		{Route: "India-US", CostPerMT: 120, LastUpdated: today},
		{Route: "India-UK", CostPerMT: 150, LastUpdated: today},
		{Route: "India-Emirates", CostPerMT: 100, LastUpdated: today},
		{Route: "India-Saudi Arabia", CostPerMT: 90, LastUpdated: today},
		{Route: "India-China", CostPerMT: 130, LastUpdated: today},
	}, nil
}
