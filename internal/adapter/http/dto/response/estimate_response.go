package response

import (
	"time"

	"agroexport/internal/domain/entities"
)

type LineItemResponse struct {
	Product    string  `json:"product"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalValue float64 `json:"total_value"`
}

type CostsResponse struct {
	Transport  float64 `json:"transport"`
	Packing    float64 `json:"packing"`
	Fumigation float64 `json:"fumigation"`
	Customs    float64 `json:"customs"`
	Duty       float64 `json:"duty"`
}

type MarginsResponse struct {
	Importer    float64 `json:"importer"`
	Distributor float64 `json:"distributor"`
	Retailer    float64 `json:"retailer"`
}

type ResultsResponse struct {
	TotalValue  float64 `json:"total_value"`
	Margin      float64 `json:"margin"`
	FOBPrice    float64 `json:"fob_price"`
	RetailPrice float64 `json:"retail_price"`
}

type EstimateResponse struct {
	ID          string             `json:"id"`
	ContainerID string             `json:"container_id"`
	Destination string             `json:"destination"`
	Date        string             `json:"date"`
	Products    []LineItemResponse `json:"products"`
	Costs       CostsResponse      `json:"costs"`
	Margins     MarginsResponse    `json:"margins"`
	Results     ResultsResponse    `json:"results"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	products := make([]LineItemResponse, 0, len(e.Products))
	for _, l := range e.Products {
		products = append(products, LineItemResponse{
			Product:    l.Product,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalValue: l.TotalValue,
		})
	}
	return EstimateResponse{
		ID:          e.ID,
		ContainerID: e.ContainerID,
		Destination: e.Destination,
		Date:        e.Date.Format("2006-01-02"),
		Products:    products,
		Costs: CostsResponse{
			Transport:  e.Costs.Transport,
			Packing:    e.Costs.Packing,
			Fumigation: e.Costs.Fumigation,
			Customs:    e.Costs.Customs,
			Duty:       e.Costs.DutyPercent,
		},
		Margins: MarginsResponse{
			Importer:    e.Margins.Importer,
			Distributor: e.Margins.Distributor,
			Retailer:    e.Margins.Retailer,
		},
		Results: ResultsResponse{
			TotalValue:  e.Results.TotalValue,
			Margin:      e.Results.Margin,
			FOBPrice:    e.Results.FOBPrice,
			RetailPrice: e.Results.RetailPrice,
		},
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
