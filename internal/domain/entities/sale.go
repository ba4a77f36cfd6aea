package entities

import "time"

// SaleStatus represents the lifecycle of a sale (venda).
//
// Cancellation and reversal are recorded on the sale even when some of its
// authorizations could not be rolled back; the per-authorization outcome list
// is the reconciliation surface, not the sale status.

type SaleStatus string

const (
	SaleStatusAguardandoPagamento SaleStatus = "aguardando_pagamento"
	SaleStatusConcluida           SaleStatus = "concluida"
	SaleStatusCancelada           SaleStatus = "cancelada"
	SaleStatusEstornada           SaleStatus = "estornada"
)

// PaymentMethodPendente marks a sale whose payment method is decided at
// checkout, outside this core.
const PaymentMethodPendente = "pendente"

// Sale groups one or more service line items sold to a client.
//
// Storage model (DynamoDB):
//   - PK: id
type Sale struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	Status        SaleStatus `json:"status"`
	Observation   string     `json:"observation,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SaleServiceStatusAtiva is the only line-item status written by this core;
// downstream fulfillment owns anything beyond it.
const SaleServiceStatusAtiva = "ativa"

// SaleService is one line item of a sale, binding a service, the provider
// that will deliver it and the value it was sold for.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: sale_id-index (PK: sale_id)
type SaleService struct {
	ID         string    `json:"id"`
	SaleID     string    `json:"sale_id"`
	ServiceID  string    `json:"service_id"`
	ProviderID string    `json:"provider_id"`
	Value      float64   `json:"value"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
