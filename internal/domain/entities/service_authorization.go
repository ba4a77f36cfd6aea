package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthorizationStatus represents the lifecycle of a service authorization
// ("guia"): the voucher that authorizes a provider to deliver one sold
// service.
//
// Forward path: emitida → realizada → faturada → paga.
// Exit paths: cancelada (from any pre-paid state), estornada (only from paga).
// No transition moves backward into an earlier forward state.

type AuthorizationStatus string

const (
	AuthorizationStatusEmitida   AuthorizationStatus = "emitida"
	AuthorizationStatusRealizada AuthorizationStatus = "realizada"
	AuthorizationStatusFaturada  AuthorizationStatus = "faturada"
	AuthorizationStatusPaga      AuthorizationStatus = "paga"
	AuthorizationStatusCancelada AuthorizationStatus = "cancelada"
	AuthorizationStatusEstornada AuthorizationStatus = "estornada"
)

// ErrInvalidTransition is the sentinel wrapped by every TransitionError.
var ErrInvalidTransition = errors.New("invalid authorization transition")

// TransitionError reports an illegal state-machine transition with enough
// detail for the caller to decide whether to skip or escalate.
type TransitionError struct {
	AuthorizationID string
	From            AuthorizationStatus
	To              AuthorizationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: authorization %s cannot go from %s to %s",
		ErrInvalidTransition, e.AuthorizationID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CanTransition reports whether the state machine allows from → to.
func CanTransition(from, to AuthorizationStatus) bool {
	switch to {
	case AuthorizationStatusRealizada:
		return from == AuthorizationStatusEmitida
	case AuthorizationStatusFaturada:
		return from == AuthorizationStatusRealizada
	case AuthorizationStatusPaga:
		return from == AuthorizationStatusFaturada
	case AuthorizationStatusCancelada:
		return from.Cancellable()
	case AuthorizationStatusEstornada:
		return from.Reversible()
	default:
		return false
	}
}

// Cancellable reports whether a cancel is still legal from this status.
// A paid authorization must be reversed, not canceled.
func (s AuthorizationStatus) Cancellable() bool {
	switch s {
	case AuthorizationStatusEmitida, AuthorizationStatusRealizada, AuthorizationStatusFaturada:
		return true
	}
	return false
}

// Reversible reports whether a reversal (estorno) is legal from this status.
func (s AuthorizationStatus) Reversible() bool {
	return s == AuthorizationStatusPaga
}

// ServiceAuthorization is the per-line-item voucher persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: sale_id-index (PK: sale_id)
//
// Invariant: client/provider/service and value always match the SaleService
// line item that spawned the authorization; records are never deleted.
type ServiceAuthorization struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	ProviderID    string              `json:"provider_id"`
	ServiceID     string              `json:"service_id"`
	Value         float64             `json:"value"`
	Status        AuthorizationStatus `json:"status"`
	AuthCode      string              `json:"auth_code"`
	SaleID        string              `json:"sale_id,omitempty"`
	SaleServiceID string              `json:"sale_service_id,omitempty"`
	EmittedAt     time.Time           `json:"emitted_at"`
	RealizedAt    *time.Time          `json:"realized_at,omitempty"`
	BilledAt      *time.Time          `json:"billed_at,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	CanceledAt    *time.Time          `json:"canceled_at,omitempty"`
	ReversedAt    *time.Time          `json:"reversed_at,omitempty"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// NewServiceAuthorization synthesizes the emitted authorization for one sale
// line item, copying the client/provider/service triple and the line value.
func NewServiceAuthorization(sale Sale, item SaleService, now time.Time) ServiceAuthorization {
	return ServiceAuthorization{
		ID:            uuid.NewString(),
		ClientID:      sale.ClientID,
		ProviderID:    item.ProviderID,
		ServiceID:     item.ServiceID,
		Value:         item.Value,
		Status:        AuthorizationStatusEmitida,
		AuthCode:      NewAuthenticationCode(),
		SaleID:        sale.ID,
		SaleServiceID: item.ID,
		EmittedAt:     now,
		UpdatedAt:     now,
	}
}

// NewAuthenticationCode generates the opaque, human-presentable code printed
// on the guia. Uniqueness comes from the underlying UUID; the value is stable
// once issued.
func NewAuthenticationCode() string {
	return "GSA-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
