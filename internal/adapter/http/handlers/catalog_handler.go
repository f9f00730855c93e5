package handlers

import (
	"errors"
	"net/http"

	request "agroexport/internal/adapter/http/dto/request"
	response "agroexport/internal/adapter/http/dto/response"
	"agroexport/internal/usecase"
	"agroexport/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the product catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.AddProduct(c.Request.Context(), payload.Name, payload.Category, payload.Unit)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ProductResponse{Name: product.Name, Category: product.Category, Unit: product.Unit})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyProductField):
		return pkg.NewDomainErrorSimple("EMPTY_PRODUCT_FIELD", "Product name, category and unit are required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
