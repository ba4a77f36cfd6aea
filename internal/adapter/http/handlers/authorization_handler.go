package handlers

import (
	"errors"
	"fmt"
	"net/http"
	response "saudeplus/internal/adapter/http/dto/response"
	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase"
	"saudeplus/pkg"

	"github.com/gin-gonic/gin"
)

// IVoucherGenerator renders the printable guia for an authorization.
type IVoucherGenerator interface {
	Voucher(a entities.ServiceAuthorization) ([]byte, error)
}

// AuthorizationHandler handles HTTP requests for the service-authorization
// lifecycle.

type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
	voucher IVoucherGenerator
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase, voucher IVoucherGenerator) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc, voucher: voucher}
}

// GetAuthorization returns a single service authorization.
func (h *AuthorizationHandler) GetAuthorization(c *gin.Context) {
	auth, err := h.usecase.GetByID(c.Request.Context(), c.Param("authorization_id"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(auth))
}

// RealizeAuthorization records that the provider delivered the service.
func (h *AuthorizationHandler) RealizeAuthorization(c *gin.Context) {
	h.patchAuthorizationStatus(c, usecase.ActionRealize)
}

// BillAuthorization records that the delivered service was invoiced.
func (h *AuthorizationHandler) BillAuthorization(c *gin.Context) {
	h.patchAuthorizationStatus(c, usecase.ActionBill)
}

// PayAuthorization records that the provider was paid for the service.
func (h *AuthorizationHandler) PayAuthorization(c *gin.Context) {
	h.patchAuthorizationStatus(c, usecase.ActionPay)
}

// CancelAuthorization cancels an authorization that was not paid yet.
func (h *AuthorizationHandler) CancelAuthorization(c *gin.Context) {
	h.patchAuthorizationStatus(c, usecase.ActionCancel)
}

// ReverseAuthorization reverses (estorna) a paid authorization.
func (h *AuthorizationHandler) ReverseAuthorization(c *gin.Context) {
	h.patchAuthorizationStatus(c, usecase.ActionReverse)
}

func (h *AuthorizationHandler) patchAuthorizationStatus(c *gin.Context, action usecase.AuthorizationAction) {
	auth, err := h.usecase.Transition(c.Request.Context(), c.Param("authorization_id"), action)
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(auth))
}

// GetAuthorizationVoucher renders the authorization as a printable PDF guia.
func (h *AuthorizationHandler) GetAuthorizationVoucher(c *gin.Context) {
	auth, err := h.usecase.GetByID(c.Request.Context(), c.Param("authorization_id"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.voucher.Voucher(auth)
	if err != nil {
		appErr := pkg.NewDomainError("VOUCHER_GENERATION_FAILED", "Could not render the authorization voucher", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", auth.AuthCode))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuthorizationID), errors.Is(err, usecase.ErrInvalidAuthorizationAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthorizationNotFound):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_NOT_FOUND", "Authorization not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Authorization cannot make this transition", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
