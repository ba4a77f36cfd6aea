package response

import (
	"fmt"
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase"
)

type SaleResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Observation   string    `json:"observation,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		Observation:   s.Observation,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type SaleServiceResponse struct {
	ID         string  `json:"id"`
	SaleID     string  `json:"sale_id"`
	ServiceID  string  `json:"service_id"`
	ProviderID string  `json:"provider_id"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
}

func FromSaleServices(items []entities.SaleService) []SaleServiceResponse {
	out := make([]SaleServiceResponse, 0, len(items))
	for _, item := range items {
		out = append(out, SaleServiceResponse{
			ID:         item.ID,
			SaleID:     item.SaleID,
			ServiceID:  item.ServiceID,
			ProviderID: item.ProviderID,
			Value:      item.Value,
			Status:     item.Status,
		})
	}
	return out
}

type IssueSaleResponse struct {
	Sale           SaleResponse            `json:"sale"`
	LineItems      []SaleServiceResponse   `json:"line_items"`
	Authorizations []AuthorizationResponse `json:"authorizations"`
	IssuanceError  string                  `json:"issuance_error,omitempty"`
}

func FromIssueSaleResult(res usecase.IssueSaleResult) IssueSaleResponse {
	out := IssueSaleResponse{
		Sale:           FromSale(res.Sale),
		LineItems:      FromSaleServices(res.LineItems),
		Authorizations: FromAuthorizations(res.Authorizations),
	}
	if res.IssuanceError != nil {
		out.IssuanceError = res.IssuanceError.Error()
	}
	return out
}

type SaleDetailsResponse struct {
	Sale           SaleResponse            `json:"sale"`
	LineItems      []SaleServiceResponse   `json:"line_items"`
	Authorizations []AuthorizationResponse `json:"authorizations"`
}

func FromSaleDetails(d usecase.SaleDetails) SaleDetailsResponse {
	return SaleDetailsResponse{
		Sale:           FromSale(d.Sale),
		LineItems:      FromSaleServices(d.LineItems),
		Authorizations: FromAuthorizations(d.Authorizations),
	}
}

type CascadeOutcomeResponse struct {
	AuthorizationID string `json:"authorization_id"`
	AuthCode        string `json:"auth_code"`
	From            string `json:"from"`
	Outcome         string `json:"outcome"`
	Reason          string `json:"reason,omitempty"`
}

type CascadeResponse struct {
	Sale     SaleResponse             `json:"sale"`
	Outcomes []CascadeOutcomeResponse `json:"outcomes"`
	Summary  string                   `json:"summary"`
}

// FromCascadeResult maps a cascade to its response, including the operator
// summary ("sale canceled; 1 of 3 authorizations ... require manual review").
func FromCascadeResult(res usecase.CascadeResult) CascadeResponse {
	outcomes := make([]CascadeOutcomeResponse, 0, len(res.Outcomes))
	failed := 0
	for _, o := range res.Outcomes {
		if o.Outcome == usecase.CascadeOutcomeFailed {
			failed++
		}
		outcomes = append(outcomes, CascadeOutcomeResponse{
			AuthorizationID: o.AuthorizationID,
			AuthCode:        o.AuthCode,
			From:            string(o.From),
			Outcome:         string(o.Outcome),
			Reason:          o.Reason,
		})
	}
	return CascadeResponse{
		Sale:     FromSale(res.Sale),
		Outcomes: outcomes,
		Summary:  cascadeSummary(res.Sale.Status, failed, len(res.Outcomes)),
	}
}

func cascadeSummary(status entities.SaleStatus, failed, total int) string {
	verb := "canceled"
	if status == entities.SaleStatusEstornada {
		verb = "reversed"
	}
	if failed == 0 {
		return fmt.Sprintf("sale %s; all %d authorizations processed", verb, total)
	}
	return fmt.Sprintf("sale %s; %d of %d authorizations could not be %s and require manual review",
		verb, failed, total, verb)
}
