package usecase

import (
	"context"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"
)

// projectionUplift is the fixed forecasting bump over the historical
// mean retail price. Not a statistical model.
const projectionUplift = 1.05

// IForecastUseCase projects the next-quarter retail price from the
// stored history. Access control (admin only) is enforced by the
// surrounding application, not here.

type IForecastUseCase interface {
	Forecast(ctx context.Context) (entities.Forecast, error)
}

type ForecastUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IForecastUseCase = (*ForecastUseCase)(nil)

func NewForecastUseCase(repo interfaces.IEstimateRepository) *ForecastUseCase {
	return &ForecastUseCase{repo: repo}
}

func (u *ForecastUseCase) Forecast(ctx context.Context) (entities.Forecast, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.Forecast{}, err
	}
	if len(all) == 0 {
		return entities.Forecast{}, nil
	}

	sum := 0.0
	for _, e := range all {
		sum += e.Results.RetailPrice
	}
	average := sum / float64(len(all))

	return entities.Forecast{
		AveragePrice:   average,
		ProjectedPrice: average * projectionUplift,
	}, nil
}
