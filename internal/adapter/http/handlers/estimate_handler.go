package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "agroexport/internal/adapter/http/dto/request"
	response "agroexport/internal/adapter/http/dto/response"
	"agroexport/internal/usecase"
	"agroexport/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EstimateHandler handles HTTP requests for container estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate validates the payload, runs the pricing chain and
// appends the resulting estimate to the store.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ESTIMATE_DATE", "Invalid estimate date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.CreateEstimateCommand{
		ContainerID: payload.ResolveContainerID(),
		Destination: payload.Destination,
		Date:        date,
		Products:    payload.ResolveLineItems(),
		Costs:       payload.ResolveCosts(),
		Margins:     payload.ResolveMargins(),
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// ListEstimates returns the full history in insertion order.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListEstimates(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DownloadEstimateReport streams the XLSX report for one estimate.
func (h *EstimateHandler) DownloadEstimateReport(c *gin.Context) {
	id := c.Param("id")
	report, err := h.usecase.ExportReport(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+"_report.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, report)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContainerID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDestination):
		return pkg.NewDomainErrorSimple("INVALID_DESTINATION", "Destination is not a supported country", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProduct):
		return pkg.NewDomainErrorSimple("UNKNOWN_PRODUCT", "Product is not in the catalog", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeQuantity),
		errors.Is(err, usecase.ErrNegativeUnitPrice),
		errors.Is(err, usecase.ErrNegativeCost),
		errors.Is(err, usecase.ErrNegativeMargin):
		return pkg.NewDomainErrorSimple("NEGATIVE_INPUT", "Quantities, prices, costs and margins must be non-negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDutyOutOfRange):
		return pkg.NewDomainErrorSimple("DUTY_OUT_OF_RANGE", "Export duty must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExporterNotAvailable):
		return pkg.NewDomainErrorSimple("REPORT_UNAVAILABLE", "Report export is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
