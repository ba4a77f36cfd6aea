package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saudeplus/internal/adapter/http/handlers/mocks"
	"saudeplus/internal/domain/entities"
	"saudeplus/internal/pdf"
	"saudeplus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func emittedAuth() entities.ServiceAuthorization {
	now := time.Now().UTC()
	return entities.ServiceAuthorization{
		ID: "auth-1", ClientID: "client-1", ProviderID: "prov-1", ServiceID: "svc-1",
		Value: 100, Status: entities.AuthorizationStatusEmitida,
		AuthCode: "GSA-ABC123", SaleID: "sale-1", EmittedAt: now, UpdatedAt: now,
	}
}

func TestAuthorizationHandler_GetAuthorization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc, pdf.NewGenerator())

		r := gin.New()
		r.GET("/v1/authorizations/:authorization_id", h.GetAuthorization)

		uc.EXPECT().GetByID(gomock.Any(), "auth-1").Return(entities.ServiceAuthorization{}, usecase.ErrAuthorizationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/authorizations/auth-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc, pdf.NewGenerator())

		r := gin.New()
		r.GET("/v1/authorizations/:authorization_id", h.GetAuthorization)

		uc.EXPECT().GetByID(gomock.Any(), "auth-1").Return(emittedAuth(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/authorizations/auth-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthorizationHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	patch := map[string]struct {
		action  usecase.AuthorizationAction
		handler func(h *AuthorizationHandler) gin.HandlerFunc
	}{
		"realize": {usecase.ActionRealize, func(h *AuthorizationHandler) gin.HandlerFunc { return h.RealizeAuthorization }},
		"bill":    {usecase.ActionBill, func(h *AuthorizationHandler) gin.HandlerFunc { return h.BillAuthorization }},
		"pay":     {usecase.ActionPay, func(h *AuthorizationHandler) gin.HandlerFunc { return h.PayAuthorization }},
		"cancel":  {usecase.ActionCancel, func(h *AuthorizationHandler) gin.HandlerFunc { return h.CancelAuthorization }},
		"reverse": {usecase.ActionReverse, func(h *AuthorizationHandler) gin.HandlerFunc { return h.ReverseAuthorization }},
	}

	for name, tc := range patch {
		t.Run(name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAuthorizationUseCase(ctrl)
			h := NewAuthorizationHandler(uc, pdf.NewGenerator())

			r := gin.New()
			r.PATCH("/v1/authorizations/:authorization_id/"+name, tc.handler(h))

			uc.EXPECT().Transition(gomock.Any(), "auth-1", tc.action).Return(emittedAuth(), nil)

			req := httptest.NewRequest(http.MethodPatch, "/v1/authorizations/auth-1/"+name, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})
	}

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc, pdf.NewGenerator())

		r := gin.New()
		r.PATCH("/v1/authorizations/:authorization_id/cancel", h.CancelAuthorization)

		uc.EXPECT().Transition(gomock.Any(), "auth-1", usecase.ActionCancel).Return(entities.ServiceAuthorization{},
			&entities.TransitionError{AuthorizationID: "auth-1", From: entities.AuthorizationStatusPaga, To: entities.AuthorizationStatusCancelada})

		req := httptest.NewRequest(http.MethodPatch, "/v1/authorizations/auth-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAuthorizationHandler_GetAuthorizationVoucher(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthorizationUseCase(ctrl)
		h := NewAuthorizationHandler(uc, pdf.NewGenerator())

		r := gin.New()
		r.GET("/v1/authorizations/:authorization_id/voucher", h.GetAuthorizationVoucher)

		uc.EXPECT().GetByID(gomock.Any(), "auth-1").Return(emittedAuth(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/authorizations/auth-1/voucher", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected a pdf document")
		}
	})
}

func TestMapAuthorizationError(t *testing.T) {
	if got := mapAuthorizationError(usecase.ErrInvalidAuthorizationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAuthorizationError(usecase.ErrInvalidAuthorizationAction); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAuthorizationError(usecase.ErrAuthorizationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	terr := &entities.TransitionError{AuthorizationID: "auth-1", From: entities.AuthorizationStatusPaga, To: entities.AuthorizationStatusCancelada}
	if got := mapAuthorizationError(terr); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAuthorizationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
