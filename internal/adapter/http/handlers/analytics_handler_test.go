package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agroexport/internal/adapter/http/handlers/mocks"
	"agroexport/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(entities.DashboardMetrics{
			TotalEstimates:   3,
			ActiveContainers: 3,
			AverageMargin:    43.96,
			TotalValue:       13100,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_estimates"] != float64(3) || body["total_value"] != float64(13100) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(entities.DashboardMetrics{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_RevenueTrend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAnalyticsHandler(uc)

	r := gin.New()
	r.GET("/v1/analytics/revenue", h.RevenueTrend)

	uc.EXPECT().RevenueByDate(gomock.Any()).Return([]entities.RevenuePoint{
		{Date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), RetailPrice: 3135},
		{Date: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), RetailPrice: 13548.16},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/revenue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["date"] != "2026-04-10" || body[1]["date"] != "2026-04-20" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestAnalyticsHandler_RevenueByProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAnalyticsHandler(uc)

	r := gin.New()
	r.GET("/v1/analytics/products", h.RevenueByProduct)

	uc.EXPECT().RevenueByProduct(gomock.Any()).Return(map[string]float64{
		"Red Lentils":  3500,
		"Basmati Rice": 7200,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	// Rows come back sorted by product name.
	if len(body) != 2 || body[0]["product"] != "Basmati Rice" || body[1]["product"] != "Red Lentils" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestAnalyticsHandler_MarginDistribution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAnalyticsHandler(uc)

	r := gin.New()
	r.GET("/v1/analytics/margins", h.MarginDistribution)

	uc.EXPECT().MarginByProduct(gomock.Any()).Return(map[string]float64{"Basmati Rice": 101.89}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/margins", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["total"] != 101.89 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestForecastHandler_Forecast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIForecastUseCase(ctrl)
		h := NewForecastHandler(uc)

		r := gin.New()
		r.GET("/v1/forecast", h.Forecast)

		uc.EXPECT().Forecast(gomock.Any()).Return(entities.Forecast{AveragePrice: 8984.75, ProjectedPrice: 9433.9875}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/forecast", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["average_price"] != 8984.75 || body["projected_price"] != 9433.9875 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIForecastUseCase(ctrl)
		h := NewForecastHandler(uc)

		r := gin.New()
		r.GET("/v1/forecast", h.Forecast)

		uc.EXPECT().Forecast(gomock.Any()).Return(entities.Forecast{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/forecast", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestFreightHandler_ListFreightRates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFreightUseCase(ctrl)
	h := NewFreightHandler(uc)

	r := gin.New()
	r.GET("/v1/freight-rates", h.ListFreightRates)

	uc.EXPECT().ListFreightRates(gomock.Any()).Return([]entities.FreightRate{
		{Route: "India-US", CostPerMT: 120, LastUpdated: time.Now().UTC()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/freight-rates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["route"] != "India-US" || body[0]["cost_per_mt"] != float64(120) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
