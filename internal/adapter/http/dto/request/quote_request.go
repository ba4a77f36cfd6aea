package request

import (
	"strings"
	"time"

	"saudeplus/internal/usecase"
)

// CreateQuoteRequest is the staff-facing payload for registering a proposal.
type CreateQuoteRequest struct {
	ClientID    string    `json:"client_id" binding:"required"`
	ServiceID   string    `json:"service_id" binding:"required"`
	ProviderID  string    `json:"provider_id" binding:"required"`
	CostValue   float64   `json:"cost_value"`
	SaleValue   float64   `json:"sale_value"`
	FinalValue  float64   `json:"final_value"`
	ValidUntil  time.Time `json:"valid_until" binding:"required"`
	Observation string    `json:"observation"`
}

// ToInput normalizes the payload into the workflow command. A missing final
// value falls back to the sale value (the common case before negotiation).
func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	finalValue := r.FinalValue
	if finalValue == 0 {
		finalValue = r.SaleValue
	}
	return usecase.CreateQuoteInput{
		ClientID:    strings.TrimSpace(r.ClientID),
		ServiceID:   strings.TrimSpace(r.ServiceID),
		ProviderID:  strings.TrimSpace(r.ProviderID),
		CostValue:   r.CostValue,
		SaleValue:   r.SaleValue,
		FinalValue:  finalValue,
		ValidUntil:  r.ValidUntil,
		Observation: strings.TrimSpace(r.Observation),
	}
}

// RejectQuoteRequest optionally carries the rejection reason appended to the
// quote's observation trail.
type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}

// NegotiateQuoteRequest carries the client's counter-proposal message. The
// workflow validates non-emptiness so the error surfaces uniformly.
type NegotiateQuoteRequest struct {
	Message string `json:"message"`
}
