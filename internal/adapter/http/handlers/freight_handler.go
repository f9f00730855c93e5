package handlers

import (
	"net/http"

	response "agroexport/internal/adapter/http/dto/response"
	"agroexport/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FreightHandler serves the static freight rate table.

type FreightHandler struct {
	usecase usecase.IFreightUseCase
}

func NewFreightHandler(uc usecase.IFreightUseCase) *FreightHandler {
	return &FreightHandler{usecase: uc}
}

func (h *FreightHandler) ListFreightRates(c *gin.Context) {
	rates, err := h.usecase.ListFreightRates(c.Request.Context())
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFreightRates(rates))
}
