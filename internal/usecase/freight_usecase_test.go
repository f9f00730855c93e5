package usecase

import (
	"context"
	"testing"
)

func TestFreightUseCase_ListFreightRates(t *testing.T) {
	uc := NewFreightUseCase()

	rates, err := uc.ListFreightRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 5 {
		t.Fatalf("expected 5 routes, got %d", len(rates))
	}

	expected := map[string]float64{
		"India-US":           120,
		"India-UK":           150,
		"India-Emirates":     100,
		"India-Saudi Arabia": 90,
		"India-China":        130,
	}
	for _, r := range rates {
		cost, ok := expected[r.Route]
		if !ok {
			t.Fatalf("unexpected route %q", r.Route)
		}
		if r.CostPerMT != cost {
			t.Fatalf("route %s: expected %v, got %v", r.Route, cost, r.CostPerMT)
		}
		if r.LastUpdated.IsZero() {
			t.Fatalf("route %s: expected last_updated to be set", r.Route)
		}
	}
}
