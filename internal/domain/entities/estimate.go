package entities

import "time"

// EstimateStatus represents the lifecycle of a container estimate.
//
// Domain notes:
//   - The estimation service is the source of truth for estimate state.
//   - "active" is the only status produced today; the store is append-only
//     and exposes no transition operation.

type EstimateStatus string

const (
	EstimateStatusActive EstimateStatus = "active"
)

// LineItem is one product line inside an estimate.
//
// TotalValue is always derived from Quantity × UnitPrice; it is never
// accepted from the outside.
type LineItem struct {
	Product    string  `json:"product"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalValue float64 `json:"total_value"`
}

// NewLineItem builds a line item with its derived total.
func NewLineItem(product string, quantity, unitPrice float64) LineItem {
	return LineItem{
		Product:    product,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalValue: quantity * unitPrice,
	}
}

// CostInputs are the export-side cost entries of an estimate.
// DutyPercent applies to the total product value and must sit in [0,100].
type CostInputs struct {
	Transport   float64 `json:"transport"`
	Packing     float64 `json:"packing"`
	Fumigation  float64 `json:"fumigation"`
	Customs     float64 `json:"customs"`
	DutyPercent float64 `json:"duty"`
}

// MarginInputs are the percentage markups applied after the FOB price,
// in fixed order: importer, then distributor, then retailer.
type MarginInputs struct {
	Importer    float64 `json:"importer"`
	Distributor float64 `json:"distributor"`
	Retailer    float64 `json:"retailer"`
}

// EstimateResult is the calculator output attached to an estimate.
//
// Margin is the uplift of the retail price over the raw product value,
// defined as 0 when the product value is 0.
type EstimateResult struct {
	TotalValue  float64 `json:"total_value"`
	Margin      float64 `json:"margin"`
	FOBPrice    float64 `json:"fob_price"`
	RetailPrice float64 `json:"retail_price"`
}

// Estimate is one persisted pricing computation tied to a shipping
// container.
//
// Products keeps the line items in the order they were entered; a slice
// preserves that order where a Go map would not.
//
// Storage model (DynamoDB backend):
//   - PK: id
//   - created_at (RFC3339Nano) recovers insertion order on scans.

type Estimate struct {
	ID          string         `json:"id"`
	ContainerID string         `json:"container_id"`
	Destination string         `json:"destination"`
	Date        time.Time      `json:"date"`
	Products    []LineItem     `json:"products"`
	Costs       CostInputs     `json:"costs"`
	Margins     MarginInputs   `json:"margins"`
	Results     EstimateResult `json:"results"`
	Status      EstimateStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
