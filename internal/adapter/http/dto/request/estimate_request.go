package request

import (
	"errors"
	"strings"
	"time"

	"agroexport/internal/domain/entities"
)

var ErrInvalidDateFormat = errors.New("invalid estimate date format")

const dateLayout = "2006-01-02"

type LineItemRequest struct {
	Product   string  `json:"product" binding:"required"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CostsRequest struct {
	Transport  float64 `json:"transport"`
	Packing    float64 `json:"packing"`
	Fumigation float64 `json:"fumigation"`
	Customs    float64 `json:"customs"`
	Duty       float64 `json:"duty"`
}

type MarginsRequest struct {
	Importer    float64 `json:"importer"`
	Distributor float64 `json:"distributor"`
	Retailer    float64 `json:"retailer"`
}

// EstimateRequest is the payload accepted by POST /estimates. Products
// lists only the line items included in the container; an empty list is
// a valid estimate with zero product value.
type EstimateRequest struct {
	ContainerID string            `json:"container_id" binding:"required"`
	Destination string            `json:"destination" binding:"required"`
	Date        string            `json:"date" binding:"required"`
	Products    []LineItemRequest `json:"products"`
	Costs       CostsRequest      `json:"costs"`
	Margins     MarginsRequest    `json:"margins"`
}

func (r EstimateRequest) ResolveContainerID() string {
	return strings.TrimSpace(r.ContainerID)
}

func (r EstimateRequest) ResolveDate() (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

func (r EstimateRequest) ResolveLineItems() []entities.LineItem {
	lines := make([]entities.LineItem, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, entities.NewLineItem(strings.TrimSpace(p.Product), p.Quantity, p.UnitPrice))
	}
	return lines
}

func (r EstimateRequest) ResolveCosts() entities.CostInputs {
	return entities.CostInputs{
		Transport:   r.Costs.Transport,
		Packing:     r.Costs.Packing,
		Fumigation:  r.Costs.Fumigation,
		Customs:     r.Costs.Customs,
		DutyPercent: r.Costs.Duty,
	}
}

func (r EstimateRequest) ResolveMargins() entities.MarginInputs {
	return entities.MarginInputs{
		Importer:    r.Margins.Importer,
		Distributor: r.Margins.Distributor,
		Retailer:    r.Margins.Retailer,
	}
}
