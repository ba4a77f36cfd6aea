package handlers

import (
	"errors"
	"net/http"
	request "saudeplus/internal/adapter/http/dto/request"
	response "saudeplus/internal/adapter/http/dto/response"
	"saudeplus/internal/adapter/http/middleware"
	"saudeplus/internal/usecase"
	"saudeplus/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote decision workflow.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote registers a new pending quote for a client.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote, time.Now().UTC()))
}

// GetQuote returns a quote with its effective status derived at read time.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

// ApproveQuote approves a pending quote and issues the resulting sale.
//
// A committed sale whose authorization batch failed still answers 200: the
// issuance_error field tells the caller the batch must be retried.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	result, err := h.usecase.Approve(c.Request.Context(), c.Param("quote_id"), middleware.Actor(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApproveQuoteResult(result, time.Now().UTC()))
}

// RejectQuote rejects a pending quote, optionally recording a reason.
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.Reject(c.Request.Context(), c.Param("quote_id"), payload.Reason, middleware.Actor(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

// NegotiateQuote records a counter-proposal for a pending quote and notifies
// the commercial follow-up channel. The quote itself does not change state.
func (h *QuoteHandler) NegotiateQuote(c *gin.Context) {
	var payload request.NegotiateQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	if err := h.usecase.Negotiate(c.Request.Context(), c.Param("quote_id"), payload.Message, middleware.Actor(c)); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "negotiation_requested"})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteInput), errors.Is(err, usecase.ErrEmptyNegotiationMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainError("QUOTE_NOT_PENDING", "Quote is not pending", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleIssuanceFailed):
		return pkg.NewDomainError("SALE_ISSUANCE_FAILED", "Sale issuance failed; quote remains pending", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
