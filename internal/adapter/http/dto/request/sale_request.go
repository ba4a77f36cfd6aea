package request

import (
	"errors"
	"strings"

	"saudeplus/internal/usecase"
)

var ErrNoLineItems = errors.New("at least one line item is required")

// SaleLineItemRequest is one (service, provider, value) tuple of an order.
type SaleLineItemRequest struct {
	ServiceID  string  `json:"service_id" binding:"required"`
	ProviderID string  `json:"provider_id" binding:"required"`
	Value      float64 `json:"value" binding:"required"`
}

// IssueSaleRequest is the payload for a direct order (no preceding quote).
type IssueSaleRequest struct {
	ClientID      string                `json:"client_id" binding:"required"`
	PaymentMethod string                `json:"payment_method"`
	Observation   string                `json:"observation"`
	Items         []SaleLineItemRequest `json:"items" binding:"required,min=1"`
}

// ResolveItems normalizes the line items, dropping whitespace-only ids so the
// workflow sees clean input.
func (r IssueSaleRequest) ResolveItems() ([]usecase.SaleLineItemInput, error) {
	if len(r.Items) == 0 {
		return nil, ErrNoLineItems
	}
	items := make([]usecase.SaleLineItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.SaleLineItemInput{
			ServiceID:  strings.TrimSpace(item.ServiceID),
			ProviderID: strings.TrimSpace(item.ProviderID),
			Value:      item.Value,
		})
	}
	return items, nil
}

// ResolveTotal sums the positive line values; zero means the payload cannot
// form a valid sale.
func (r IssueSaleRequest) ResolveTotal() float64 {
	total := 0.0
	for _, item := range r.Items {
		if item.Value > 0 {
			total += item.Value
		}
	}
	return total
}
