package pricing

import (
	"math"
	"testing"

	"agroexport/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_SingleProductContainer(t *testing.T) {
	lines := []entities.LineItem{
		entities.NewLineItem("Basmati Rice", 10, 500),
	}
	costs := entities.CostInputs{DutyPercent: 5}
	margins := entities.MarginInputs{Importer: 15, Distributor: 10, Retailer: 20}

	res := Calculate(lines, costs, margins)

	if !almostEqual(res.FOBPrice, 5250) {
		t.Fatalf("expected fob 5250, got %v", res.FOBPrice)
	}
	if !almostEqual(res.RetailPrice, 7969.5) {
		t.Fatalf("expected retail 7969.5, got %v", res.RetailPrice)
	}
	if !almostEqual(res.TotalValue, 7969.5) {
		t.Fatalf("expected total_value to equal retail price, got %v", res.TotalValue)
	}
	if !almostEqual(res.Margin, 59.39) {
		t.Fatalf("expected margin 59.39, got %v", res.Margin)
	}
}

func TestCalculate_NoProducts(t *testing.T) {
	res := Calculate(nil, entities.CostInputs{}, entities.MarginInputs{Importer: 15, Distributor: 10, Retailer: 20})

	if res.FOBPrice != 0 || res.RetailPrice != 0 || res.TotalValue != 0 {
		t.Fatalf("expected zero prices, got %+v", res)
	}
	if res.Margin != 0 {
		t.Fatalf("expected zero margin, got %v", res.Margin)
	}
	if math.IsNaN(res.Margin) || math.IsInf(res.Margin, 0) {
		t.Fatalf("margin must stay finite on empty input, got %v", res.Margin)
	}
}

func TestCalculate_FixedCostsOnlyFeedTheChain(t *testing.T) {
	// Costs with no products still produce a positive price chain but
	// a zero margin, since there is no product value to uplift.
	costs := entities.CostInputs{Transport: 100, Packing: 50, Fumigation: 25, Customs: 25, DutyPercent: 10}
	res := Calculate(nil, costs, entities.MarginInputs{Importer: 10})

	if !almostEqual(res.FOBPrice, 200) {
		t.Fatalf("expected fob 200, got %v", res.FOBPrice)
	}
	if !almostEqual(res.RetailPrice, 220) {
		t.Fatalf("expected retail 220, got %v", res.RetailPrice)
	}
	if res.Margin != 0 {
		t.Fatalf("expected zero margin without product value, got %v", res.Margin)
	}
}

func TestCalculate_MarginChainComposition(t *testing.T) {
	lines := []entities.LineItem{
		entities.NewLineItem("Red Lentils", 4, 250),
		entities.NewLineItem("Black Gram", 2, 300),
	}
	costs := entities.CostInputs{Transport: 120, DutyPercent: 2.5}
	margins := entities.MarginInputs{Importer: 12, Distributor: 8, Retailer: 18}

	res := Calculate(lines, costs, margins)

	totalProductValue := 4*250.0 + 2*300.0
	exportCost := 120 + totalProductValue*2.5/100
	wantFOB := totalProductValue + exportCost
	wantRetail := wantFOB * 1.12 * 1.08 * 1.18

	if !almostEqual(res.FOBPrice, wantFOB) {
		t.Fatalf("expected fob %v, got %v", wantFOB, res.FOBPrice)
	}
	if !almostEqual(res.RetailPrice, wantRetail) {
		t.Fatalf("expected retail %v, got %v", wantRetail, res.RetailPrice)
	}
	wantMargin := (wantRetail - totalProductValue) / totalProductValue * 100
	if !almostEqual(res.Margin, wantMargin) {
		t.Fatalf("expected margin %v, got %v", wantMargin, res.Margin)
	}
}

func TestCalculate_ZeroMarginsPassThrough(t *testing.T) {
	lines := []entities.LineItem{entities.NewLineItem("Sunflower Oil", 1, 1000)}
	res := Calculate(lines, entities.CostInputs{}, entities.MarginInputs{})

	if !almostEqual(res.FOBPrice, 1000) || !almostEqual(res.RetailPrice, 1000) {
		t.Fatalf("expected pass-through prices, got %+v", res)
	}
	if !almostEqual(res.Margin, 0) {
		t.Fatalf("expected zero margin, got %v", res.Margin)
	}
}
