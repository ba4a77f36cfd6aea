package response

import (
	"time"

	"saudeplus/internal/domain/entities"
)

type AuthorizationResponse struct {
	ID         string     `json:"id"`
	SaleID     string     `json:"sale_id"`
	ServiceID  string     `json:"service_id"`
	ProviderID string     `json:"provider_id"`
	ClientID   string     `json:"client_id"`
	AuthCode   string     `json:"auth_code"`
	Value      float64    `json:"value"`
	Status     string     `json:"status"`
	EmittedAt  time.Time  `json:"emitted_at"`
	RealizedAt *time.Time `json:"realized_at,omitempty"`
	BilledAt   *time.Time `json:"billed_at,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
	ReversedAt *time.Time `json:"reversed_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromAuthorization(a entities.ServiceAuthorization) AuthorizationResponse {
	return AuthorizationResponse{
		ID:         a.ID,
		SaleID:     a.SaleID,
		ServiceID:  a.ServiceID,
		ProviderID: a.ProviderID,
		ClientID:   a.ClientID,
		AuthCode:   a.AuthCode,
		Value:      a.Value,
		Status:     string(a.Status),
		EmittedAt:  a.EmittedAt,
		RealizedAt: a.RealizedAt,
		BilledAt:   a.BilledAt,
		PaidAt:     a.PaidAt,
		CanceledAt: a.CanceledAt,
		ReversedAt: a.ReversedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromAuthorizations(auths []entities.ServiceAuthorization) []AuthorizationResponse {
	out := make([]AuthorizationResponse, 0, len(auths))
	for _, a := range auths {
		out = append(out, FromAuthorization(a))
	}
	return out
}
