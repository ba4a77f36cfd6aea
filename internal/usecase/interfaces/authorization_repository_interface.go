package interfaces

import (
	"context"
	"time"

	"saudeplus/internal/domain/entities"
)

// IAuthorizationRepository abstracts DynamoDB persistence for
// ServiceAuthorization.
//
// CreateBatch is all-or-nothing so a failed issuance leaves zero
// authorizations behind and stays independently retryable. TransitionStatus
// is compare-and-swap on the expected current status and returns a zero-value
// entity (nil error) when the conditional check loses.
type IAuthorizationRepository interface {
	CreateBatch(ctx context.Context, auths []entities.ServiceAuthorization) ([]entities.ServiceAuthorization, error)
	GetByID(ctx context.Context, id string) (entities.ServiceAuthorization, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.ServiceAuthorization, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.AuthorizationStatus, at time.Time) (entities.ServiceAuthorization, error)
}
