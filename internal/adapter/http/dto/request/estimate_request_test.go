package request

import (
	"errors"
	"testing"
	"time"
)

func TestEstimateRequest_ResolveDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := EstimateRequest{Date: " 2026-03-15 "}
		d, err := r.ResolveDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", d)
		}
	})

	t.Run("wrong layout", func(t *testing.T) {
		r := EstimateRequest{Date: "15/03/2026"}
		_, err := r.ResolveDate()
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		r := EstimateRequest{}
		_, err := r.ResolveDate()
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
		}
	})
}

func TestEstimateRequest_ResolveLineItems(t *testing.T) {
	r := EstimateRequest{Products: []LineItemRequest{
		{Product: " Basmati Rice ", Quantity: 10, UnitPrice: 500},
		{Product: "Red Lentils", Quantity: 5, UnitPrice: 700},
	}}

	lines := r.ResolveLineItems()
	if len(lines) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(lines))
	}
	if lines[0].Product != "Basmati Rice" || lines[0].TotalValue != 5000 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].TotalValue != 3500 {
		t.Fatalf("unexpected second line: %+v", lines[1])
	}
}

func TestEstimateRequest_ResolveCostsAndMargins(t *testing.T) {
	r := EstimateRequest{
		ContainerID: " CONT-1 ",
		Costs:       CostsRequest{Transport: 120, Packing: 50, Fumigation: 30, Customs: 25, Duty: 0.5},
		Margins:     MarginsRequest{Importer: 10, Distributor: 15, Retailer: 20},
	}

	if r.ResolveContainerID() != "CONT-1" {
		t.Fatalf("expected trimmed container id, got %q", r.ResolveContainerID())
	}

	costs := r.ResolveCosts()
	if costs.DutyPercent != 0.5 || costs.Transport != 120 {
		t.Fatalf("unexpected costs: %+v", costs)
	}

	margins := r.ResolveMargins()
	if margins.Importer != 10 || margins.Distributor != 15 || margins.Retailer != 20 {
		t.Fatalf("unexpected margins: %+v", margins)
	}
}
