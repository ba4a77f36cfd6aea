package handlers

import (
	"context"
	"errors"
	"net/http"
	request "saudeplus/internal/adapter/http/dto/request"
	response "saudeplus/internal/adapter/http/dto/response"
	"saudeplus/internal/adapter/http/middleware"
	"saudeplus/internal/usecase"
	"saudeplus/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)
)

// SaleHandler handles HTTP requests for sale issuance and the
// cancellation/reversal cascade.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// IssueSale creates a sale directly from a line-item payload, without a
// preceding quote.
func (h *SaleHandler) IssueSale(c *gin.Context) {
	var payload request.IssueSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	items, err := payload.ResolveItems()
	if err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.IssueSale(c.Request.Context(), usecase.IssueSaleInput{
		ClientID:      payload.ClientID,
		PaymentMethod: payload.PaymentMethod,
		Observation:   payload.Observation,
		Items:         items,
		Actor:         middleware.Actor(c),
	})
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIssueSaleResult(result))
}

// GetSale returns a sale with its line items and authorizations.
func (h *SaleHandler) GetSale(c *gin.Context) {
	details, err := h.usecase.GetByID(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSaleDetails(details))
}

// CancelSale cancels the sale and cascades the cancellation to every
// still-cancellable authorization, reporting per-authorization outcomes.
func (h *SaleHandler) CancelSale(c *gin.Context) {
	h.cascade(c, h.usecase.CancelSale)
}

// ReverseSale reverses (estorna) the sale and cascades the reversal to its
// paid authorizations, reporting per-authorization outcomes.
func (h *SaleHandler) ReverseSale(c *gin.Context) {
	h.cascade(c, h.usecase.ReverseSale)
}

func (h *SaleHandler) cascade(c *gin.Context, run func(ctx context.Context, id string) (usecase.CascadeResult, error)) {
	result, err := run(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCascadeResult(result))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidSaleInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleIssuanceFailed):
		return pkg.NewDomainError("SALE_ISSUANCE_FAILED", "Sale issuance failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
