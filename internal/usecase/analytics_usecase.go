package usecase

import (
	"context"
	"sort"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"
)

// IAnalyticsUseCase derives reporting views from the estimate store.
//
// Nothing here is cached: the store grows between calls, so every view
// is recomputed from the current contents on demand. Every aggregate
// over an empty store degrades to zero values instead of failing.

type IAnalyticsUseCase interface {
	Dashboard(ctx context.Context) (entities.DashboardMetrics, error)
	RevenueByDate(ctx context.Context) ([]entities.RevenuePoint, error)
	RevenueByProduct(ctx context.Context) (map[string]float64, error)
	MarginByProduct(ctx context.Context) (map[string]float64, error)
}

type AnalyticsUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IEstimateRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

func (u *AnalyticsUseCase) Dashboard(ctx context.Context) (entities.DashboardMetrics, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	active, err := u.repo.ListByStatus(ctx, entities.EstimateStatusActive)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}

	metrics := entities.DashboardMetrics{
		TotalEstimates:   len(all),
		ActiveContainers: len(active),
	}
	if len(all) == 0 {
		return metrics, nil
	}

	marginSum := 0.0
	for _, e := range all {
		marginSum += e.Results.Margin
		metrics.TotalValue += e.Results.TotalValue
	}
	metrics.AverageMargin = marginSum / float64(len(all))
	return metrics, nil
}

// RevenueByDate returns one (date, retail price) pair per estimate,
// sorted ascending by date. Estimates sharing a date keep their
// insertion order.
func (u *AnalyticsUseCase) RevenueByDate(ctx context.Context) ([]entities.RevenuePoint, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]entities.RevenuePoint, 0, len(all))
	for _, e := range all {
		points = append(points, entities.RevenuePoint{
			Date:        e.Date,
			RetailPrice: e.Results.RetailPrice,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

// RevenueByProduct sums the line-item totals of each product across all
// estimates. Ordering is left to the presentation layer.
func (u *AnalyticsUseCase) RevenueByProduct(ctx context.Context) (map[string]float64, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	revenues := make(map[string]float64)
	for _, e := range all {
		for _, line := range e.Products {
			revenues[line.Product] += line.TotalValue
		}
	}
	return revenues, nil
}

// MarginByProduct accumulates the whole-estimate margin percentage into
// every product present in that estimate. This is an additive
// attribution, not a per-product margin decomposition.
func (u *AnalyticsUseCase) MarginByProduct(ctx context.Context) (map[string]float64, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	margins := make(map[string]float64)
	for _, e := range all {
		for _, line := range e.Products {
			margins[line.Product] += e.Results.Margin
		}
	}
	return margins, nil
}
