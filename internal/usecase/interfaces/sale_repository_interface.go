package interfaces

import (
	"context"

	"saudeplus/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale and its line items.
//
// CreateWithItems must be atomic: a sale row is never visible without its
// line items (single TransactWriteItems). UpdateStatus is unconditional:
// the cancellation/reversal cascade records the sale-level decision
// regardless of per-authorization outcomes.
type ISaleRepository interface {
	CreateWithItems(ctx context.Context, sale entities.Sale, items []entities.SaleService) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ListItemsBySaleID(ctx context.Context, saleID string) ([]entities.SaleService, error)
	UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error)
}
