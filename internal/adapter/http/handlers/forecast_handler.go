package handlers

import (
	"net/http"

	response "agroexport/internal/adapter/http/dto/response"
	"agroexport/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ForecastHandler serves the retail price projection. Role-based access
// to this endpoint is enforced by the surrounding deployment.

type ForecastHandler struct {
	usecase usecase.IForecastUseCase
}

func NewForecastHandler(uc usecase.IForecastUseCase) *ForecastHandler {
	return &ForecastHandler{usecase: uc}
}

func (h *ForecastHandler) Forecast(c *gin.Context) {
	forecast, err := h.usecase.Forecast(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForecast(forecast))
}
