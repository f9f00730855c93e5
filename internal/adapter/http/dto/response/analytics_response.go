package response

import (
	"sort"
	"time"

	"agroexport/internal/domain/entities"
)

type DashboardResponse struct {
	TotalEstimates   int     `json:"total_estimates"`
	ActiveContainers int     `json:"active_containers"`
	AverageMargin    float64 `json:"average_margin"`
	TotalValue       float64 `json:"total_value"`
}

func FromDashboardMetrics(m entities.DashboardMetrics) DashboardResponse {
	return DashboardResponse{
		TotalEstimates:   m.TotalEstimates,
		ActiveContainers: m.ActiveContainers,
		AverageMargin:    m.AverageMargin,
		TotalValue:       m.TotalValue,
	}
}

type RevenuePointResponse struct {
	Date        string  `json:"date"`
	RetailPrice float64 `json:"retail_price"`
}

func FromRevenuePoints(points []entities.RevenuePoint) []RevenuePointResponse {
	out := make([]RevenuePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, RevenuePointResponse{
			Date:        p.Date.Format("2006-01-02"),
			RetailPrice: p.RetailPrice,
		})
	}
	return out
}

type ProductTotalResponse struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

// FromProductTotals flattens an aggregate map into rows sorted by
// product name. The core leaves ordering to the presentation layer;
// sorting here keeps the payload deterministic.
func FromProductTotals(totals map[string]float64) []ProductTotalResponse {
	out := make([]ProductTotalResponse, 0, len(totals))
	for product, total := range totals {
		out = append(out, ProductTotalResponse{Product: product, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}

type ForecastResponse struct {
	AveragePrice   float64 `json:"average_price"`
	ProjectedPrice float64 `json:"projected_price"`
}

func FromForecast(f entities.Forecast) ForecastResponse {
	return ForecastResponse{
		AveragePrice:   f.AveragePrice,
		ProjectedPrice: f.ProjectedPrice,
	}
}

type FreightRateResponse struct {
	Route       string    `json:"route"`
	CostPerMT   float64   `json:"cost_per_mt"`
	LastUpdated time.Time `json:"last_updated"`
}

func FromFreightRates(rates []entities.FreightRate) []FreightRateResponse {
	out := make([]FreightRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, FreightRateResponse{
			Route:       r.Route,
			CostPerMT:   r.CostPerMT,
			LastUpdated: r.LastUpdated,
		})
	}
	return out
}

type ProductResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{Name: p.Name, Category: p.Category, Unit: p.Unit})
	}
	return out
}
