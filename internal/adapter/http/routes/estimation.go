package routes

import (
	"agroexport/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathProducts  = "/products"
	PathAnalytics = "/analytics"
)

func addEstimationRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	forecastHandler *handlers.ForecastHandler,
	freightHandler *handlers.FreightHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.GET("/:id/report", estimateHandler.DownloadEstimateReport)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.POST("", catalogHandler.AddProduct)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/revenue", analyticsHandler.RevenueTrend)
		analytics.GET("/products", analyticsHandler.RevenueByProduct)
		analytics.GET("/margins", analyticsHandler.MarginDistribution)
	}

	rg.GET("/dashboard", analyticsHandler.Dashboard)
	rg.GET("/forecast", forecastHandler.Forecast)
	rg.GET("/freight-rates", freightHandler.ListFreightRates)
}
