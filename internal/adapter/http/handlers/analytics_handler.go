package handlers

import (
	"net/http"

	response "agroexport/internal/adapter/http/dto/response"
	"agroexport/internal/usecase"
	"agroexport/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard and business intelligence views.
// Each request recomputes its aggregate from the current store.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	metrics, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardMetrics(metrics))
}

func (h *AnalyticsHandler) RevenueTrend(c *gin.Context) {
	points, err := h.usecase.RevenueByDate(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRevenuePoints(points))
}

func (h *AnalyticsHandler) RevenueByProduct(c *gin.Context) {
	totals, err := h.usecase.RevenueByProduct(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductTotals(totals))
}

func (h *AnalyticsHandler) MarginDistribution(c *gin.Context) {
	margins, err := h.usecase.MarginByProduct(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductTotals(margins))
}

func mapAnalyticsError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
