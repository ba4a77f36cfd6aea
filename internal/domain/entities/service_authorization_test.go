package entities

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	all := []AuthorizationStatus{
		AuthorizationStatusEmitida,
		AuthorizationStatusRealizada,
		AuthorizationStatusFaturada,
		AuthorizationStatusPaga,
		AuthorizationStatusCancelada,
		AuthorizationStatusEstornada,
	}

	allowed := map[AuthorizationStatus][]AuthorizationStatus{
		AuthorizationStatusEmitida:   {AuthorizationStatusRealizada, AuthorizationStatusCancelada},
		AuthorizationStatusRealizada: {AuthorizationStatusFaturada, AuthorizationStatusCancelada},
		AuthorizationStatusFaturada:  {AuthorizationStatusPaga, AuthorizationStatusCancelada},
		AuthorizationStatusPaga:      {AuthorizationStatusEstornada},
		AuthorizationStatusCancelada: {},
		AuthorizationStatusEstornada: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, expected %v", from, to, got, want)
			}
		}
	}
}

func TestCancellableAndReversible(t *testing.T) {
	if !AuthorizationStatusEmitida.Cancellable() || !AuthorizationStatusRealizada.Cancellable() || !AuthorizationStatusFaturada.Cancellable() {
		t.Fatalf("pre-paid statuses must be cancellable")
	}
	if AuthorizationStatusPaga.Cancellable() {
		t.Fatalf("paga must not be cancellable")
	}
	if !AuthorizationStatusPaga.Reversible() {
		t.Fatalf("paga must be reversible")
	}
	for _, s := range []AuthorizationStatus{AuthorizationStatusEmitida, AuthorizationStatusRealizada, AuthorizationStatusFaturada, AuthorizationStatusCancelada, AuthorizationStatusEstornada} {
		if s.Reversible() {
			t.Fatalf("%s must not be reversible", s)
		}
	}
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{AuthorizationID: "auth-1", From: AuthorizationStatusPaga, To: AuthorizationStatusCancelada}

	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected TransitionError to wrap ErrInvalidTransition")
	}
	msg := err.Error()
	if !strings.Contains(msg, "auth-1") || !strings.Contains(msg, "paga") || !strings.Contains(msg, "cancelada") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestNewServiceAuthorization(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sale := Sale{ID: "sale-1", ClientID: "client-1"}
	item := SaleService{ID: "item-1", SaleID: "sale-1", ServiceID: "svc-1", ProviderID: "prov-1", Value: 150}

	a := NewServiceAuthorization(sale, item, now)

	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
	if a.Status != AuthorizationStatusEmitida {
		t.Fatalf("expected emitida, got %s", a.Status)
	}
	if a.ClientID != "client-1" || a.ProviderID != "prov-1" || a.ServiceID != "svc-1" || a.Value != 150 {
		t.Fatalf("authorization does not mirror its line item: %+v", a)
	}
	if a.SaleID != "sale-1" || a.SaleServiceID != "item-1" {
		t.Fatalf("authorization not linked to sale/item: %+v", a)
	}
	if !a.EmittedAt.Equal(now) || !a.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", a)
	}
	if a.RealizedAt != nil || a.BilledAt != nil || a.PaidAt != nil || a.CanceledAt != nil || a.ReversedAt != nil {
		t.Fatalf("lifecycle timestamps must start unset")
	}
}

func TestNewAuthenticationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewAuthenticationCode()
		if !strings.HasPrefix(code, "GSA-") {
			t.Fatalf("unexpected prefix in %q", code)
		}
		if len(code) != len("GSA-")+32 {
			t.Fatalf("unexpected length in %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code must be uppercase: %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}
