package pricing

import "agroexport/internal/domain/entities"

// Calculate runs the export markup chain over the included line items.
//
// The step order is the business rule and must not be reordered:
//
//	totalProductValue = Σ line totals
//	exportCost        = transport + packing + fumigation + customs
//	                    + totalProductValue * duty% / 100
//	fobPrice          = totalProductValue + exportCost
//	importerPrice     = fobPrice * (1 + importer%/100)
//	distributorPrice  = importerPrice * (1 + distributor%/100)
//	retailPrice       = distributorPrice * (1 + retailer%/100)
//
// Each margin applies to the price so far, never to the raw total.
// With no line items everything collapses to zero, including the margin.
func Calculate(lines []entities.LineItem, costs entities.CostInputs, margins entities.MarginInputs) entities.EstimateResult {
	totalProductValue := 0.0
	for _, line := range lines {
		totalProductValue += line.Quantity * line.UnitPrice
	}

	exportCost := (costs.Transport + costs.Packing + costs.Fumigation + costs.Customs) +
		totalProductValue*costs.DutyPercent/100
	fobPrice := totalProductValue + exportCost

	importerPrice := fobPrice * (1 + margins.Importer/100)
	distributorPrice := importerPrice * (1 + margins.Distributor/100)
	retailPrice := distributorPrice * (1 + margins.Retailer/100)

	margin := 0.0
	if totalProductValue > 0 {
		margin = (retailPrice - totalProductValue) / totalProductValue * 100
	}

	return entities.EstimateResult{
		TotalValue:  retailPrice,
		Margin:      margin,
		FOBPrice:    fobPrice,
		RetailPrice: retailPrice,
	}
}
