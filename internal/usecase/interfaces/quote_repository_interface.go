package interfaces

import (
	"context"

	"saudeplus/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Decision writes are compare-and-swap on the stored status: every mutating
// method only applies when the stored status is still "pendente" and returns
// a zero-value Quote (nil error) when the conditional check loses, so the
// workflow can surface an invalid-state error instead of double-applying.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	// RejectIfPending sets status to "rejeitado" with the already-appended
	// observation trail.
	RejectIfPending(ctx context.Context, id, observation, decidedBy string) (entities.Quote, error)
	// ApproveWithSale commits the quote approval, the sale and its line items
	// in a single transaction. Either everything lands (quote aprovado +
	// linked sale id, sale row, line-item rows) or nothing does.
	ApproveWithSale(ctx context.Context, id, decidedBy string, sale entities.Sale, items []entities.SaleService) (entities.Quote, error)
}
