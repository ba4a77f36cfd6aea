package entities

import (
	"strings"
	"time"
)

// QuoteStatus represents the stored lifecycle of a quote (orçamento).
//
// Domain notes:
//   - The stored status is written only by an explicit decision
//     (approve/reject/cancel); expiration is never written back.
//   - "expirado" exists as a status value but is only ever produced by
//     EffectiveQuoteStatus at read time.

type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusExpirado  QuoteStatus = "expirado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// Quote is the priced service proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - CostValue is the provider cost, SaleValue the list price and
//     FinalValue the negotiated price the sale is issued with.
type Quote struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	ServiceID   string      `json:"service_id"`
	ProviderID  string      `json:"provider_id"`
	CostValue   float64     `json:"cost_value"`
	SaleValue   float64     `json:"sale_value"`
	FinalValue  float64     `json:"final_value"`
	Status      QuoteStatus `json:"status"`
	ValidUntil  time.Time   `json:"valid_until"`
	Observation string      `json:"observation"`
	SaleID      string      `json:"sale_id,omitempty"`
	DecidedBy   string      `json:"decided_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EffectiveQuoteStatus derives the status a quote should be treated as at
// read time. Terminal stored statuses are authoritative; a pending quote past
// its validity date is expired. Pure: no I/O, no mutation.
func EffectiveQuoteStatus(stored QuoteStatus, validUntil time.Time, now time.Time) QuoteStatus {
	switch stored {
	case QuoteStatusAprovado, QuoteStatusRejeitado, QuoteStatusCancelado:
		return stored
	}
	if stored == QuoteStatusPendente && now.After(validUntil) {
		return QuoteStatusExpirado
	}
	return stored
}

// EffectiveStatus is the method form of EffectiveQuoteStatus.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	return EffectiveQuoteStatus(q.Status, q.ValidUntil, now)
}

// AppendObservation adds a note to the observation trail without ever
// overwriting prior text.
func AppendObservation(current, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return current
	}
	if strings.TrimSpace(current) == "" {
		return note
	}
	return current + "\n" + note
}
