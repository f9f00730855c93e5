package entities

import "time"

// DashboardMetrics are the headline aggregates shown on the dashboard.
// All values degrade to zero over an empty store; "no data" is a normal
// displayable state, not an error.
type DashboardMetrics struct {
	TotalEstimates   int     `json:"total_estimates"`
	ActiveContainers int     `json:"active_containers"`
	AverageMargin    float64 `json:"average_margin"`
	TotalValue       float64 `json:"total_value"`
}

// RevenuePoint is one (date, retail price) sample of the revenue trend,
// one per estimate.
type RevenuePoint struct {
	Date        time.Time `json:"date"`
	RetailPrice float64   `json:"retail_price"`
}

// Forecast is the simple projection over historical retail prices:
// the mean and a fixed 5% uplift on it.
type Forecast struct {
	AveragePrice   float64 `json:"average_price"`
	ProjectedPrice float64 `json:"projected_price"`
}

// FreightRate is one row of the static freight price table.
type FreightRate struct {
	Route       string    `json:"route"`
	CostPerMT   float64   `json:"cost_per_mt"`
	LastUpdated time.Time `json:"last_updated"`
}
