package response

import (
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase"
)

type QuoteResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ServiceID       string    `json:"service_id"`
	ProviderID      string    `json:"provider_id"`
	CostValue       float64   `json:"cost_value"`
	SaleValue       float64   `json:"sale_value"`
	FinalValue      float64   `json:"final_value"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	ValidUntil      time.Time `json:"valid_until"`
	Observation     string    `json:"observation,omitempty"`
	SaleID          string    `json:"sale_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromQuote maps a quote for clients; the effective status is derived at
// response time so expiration is always visible without ever being stored.
func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		ClientID:        q.ClientID,
		ServiceID:       q.ServiceID,
		ProviderID:      q.ProviderID,
		CostValue:       q.CostValue,
		SaleValue:       q.SaleValue,
		FinalValue:      q.FinalValue,
		Status:          string(q.Status),
		EffectiveStatus: string(q.EffectiveStatus(now)),
		ValidUntil:      q.ValidUntil,
		Observation:     q.Observation,
		SaleID:          q.SaleID,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

type ApproveQuoteResponse struct {
	Quote          QuoteResponse           `json:"quote"`
	Sale           SaleResponse            `json:"sale"`
	LineItems      []SaleServiceResponse   `json:"line_items"`
	Authorizations []AuthorizationResponse `json:"authorizations"`
	IssuanceError  string                  `json:"issuance_error,omitempty"`
}

func FromApproveQuoteResult(res usecase.ApproveQuoteResult, now time.Time) ApproveQuoteResponse {
	out := ApproveQuoteResponse{
		Quote:          FromQuote(res.Quote, now),
		Sale:           FromSale(res.Sale),
		LineItems:      FromSaleServices(res.LineItems),
		Authorizations: FromAuthorizations(res.Authorizations),
	}
	if res.IssuanceError != nil {
		out.IssuanceError = res.IssuanceError.Error()
	}
	return out
}
