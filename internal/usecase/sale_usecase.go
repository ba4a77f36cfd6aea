package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrInvalidSaleID      = errors.New("invalid sale id")
	ErrInvalidSaleInput   = errors.New("invalid sale input")
	ErrSaleIssuanceFailed = errors.New("sale issuance failed")
)

// SaleLineItemInput is one (service, provider, value) tuple of a direct order.
type SaleLineItemInput struct {
	ServiceID  string
	ProviderID string
	Value      float64
}

// IssueSaleInput carries a direct order: a client buying one or more services
// without a preceding quote.
type IssueSaleInput struct {
	ClientID      string
	PaymentMethod string
	Observation   string
	Items         []SaleLineItemInput
	Actor         string
}

// IssueSaleResult always carries the committed sale and line items. The
// authorization list is empty exactly when IssuanceError is set: the batch
// failed after the sale committed and can be retried without re-creating the
// sale.
type IssueSaleResult struct {
	Sale           entities.Sale
	LineItems      []entities.SaleService
	Authorizations []entities.ServiceAuthorization
	IssuanceError  error
}

// CascadeOutcomeStatus tags what happened to one authorization during a
// sale-level cancel/reverse.
type CascadeOutcomeStatus string

const (
	CascadeOutcomeApplied CascadeOutcomeStatus = "applied"
	CascadeOutcomeSkipped CascadeOutcomeStatus = "skipped"
	CascadeOutcomeFailed  CascadeOutcomeStatus = "failed"
)

// CascadeOutcome is the per-authorization entry of a cascade result.
type CascadeOutcome struct {
	AuthorizationID string
	AuthCode        string
	From            entities.AuthorizationStatus
	Outcome         CascadeOutcomeStatus
	Reason          string
}

// CascadeResult is what CancelSale/ReverseSale return: the sale (already in
// its new status) plus one outcome per linked authorization so the caller can
// reconcile stragglers.
type CascadeResult struct {
	Sale     entities.Sale
	Outcomes []CascadeOutcome
}

// SaleDetails aggregates a sale with its line items and authorizations.
type SaleDetails struct {
	Sale           entities.Sale
	LineItems      []entities.SaleService
	Authorizations []entities.ServiceAuthorization
}

// ISaleUseCase exposes sale issuance and the cancellation/reversal cascade.
type ISaleUseCase interface {
	IssueSale(ctx context.Context, input IssueSaleInput) (IssueSaleResult, error)
	GetByID(ctx context.Context, id string) (SaleDetails, error)
	CancelSale(ctx context.Context, id string) (CascadeResult, error)
	ReverseSale(ctx context.Context, id string) (CascadeResult, error)
}

type SaleUseCase struct {
	sales interfaces.ISaleRepository
	auths interfaces.IAuthorizationRepository
	log   zerolog.Logger
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(sales interfaces.ISaleRepository, auths interfaces.IAuthorizationRepository, log zerolog.Logger) *SaleUseCase {
	return &SaleUseCase{sales: sales, auths: auths, log: log}
}

func (u *SaleUseCase) IssueSale(ctx context.Context, input IssueSaleInput) (IssueSaleResult, error) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	if input.ClientID == "" {
		return IssueSaleResult{}, fmt.Errorf("%w: client is required", ErrInvalidSaleInput)
	}
	if len(input.Items) == 0 {
		return IssueSaleResult{}, fmt.Errorf("%w: at least one line item is required", ErrInvalidSaleInput)
	}

	now := time.Now().UTC()
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = entities.PaymentMethodPendente
	}

	sale := entities.Sale{
		ID:            uuid.NewString(),
		ClientID:      input.ClientID,
		PaymentMethod: paymentMethod,
		Status:        entities.SaleStatusAguardandoPagamento,
		Observation:   input.Observation,
		CreatedBy:     input.Actor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]entities.SaleService, 0, len(input.Items))
	total := 0.0
	for i, in := range input.Items {
		serviceID := strings.TrimSpace(in.ServiceID)
		providerID := strings.TrimSpace(in.ProviderID)
		if serviceID == "" || providerID == "" {
			return IssueSaleResult{}, fmt.Errorf("%w: item %d is missing service or provider", ErrInvalidSaleInput, i)
		}
		if in.Value <= 0 {
			return IssueSaleResult{}, fmt.Errorf("%w: item %d value must be positive", ErrInvalidSaleInput, i)
		}
		total += in.Value
		items = append(items, entities.SaleService{
			ID:         uuid.NewString(),
			SaleID:     sale.ID,
			ServiceID:  serviceID,
			ProviderID: providerID,
			Value:      in.Value,
			Status:     entities.SaleServiceStatusAtiva,
			CreatedAt:  now,
		})
	}
	sale.Total = total

	created, err := u.sales.CreateWithItems(ctx, sale, items)
	if err != nil {
		return IssueSaleResult{}, fmt.Errorf("%w: %v", ErrSaleIssuanceFailed, err)
	}

	result := IssueSaleResult{Sale: created, LineItems: items}

	auths := make([]entities.ServiceAuthorization, 0, len(items))
	for _, item := range items {
		auths = append(auths, entities.NewServiceAuthorization(created, item, now))
	}
	issued, err := u.auths.CreateBatch(ctx, auths)
	if err != nil {
		u.log.Warn().Err(err).Str("sale_id", created.ID).
			Msg("authorization issuance failed after sale commit")
		result.IssuanceError = err
		return result, nil
	}
	result.Authorizations = issued
	return result, nil
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (SaleDetails, error) {
	sale, err := u.getSale(ctx, id)
	if err != nil {
		return SaleDetails{}, err
	}
	items, err := u.sales.ListItemsBySaleID(ctx, sale.ID)
	if err != nil {
		return SaleDetails{}, err
	}
	auths, err := u.auths.ListBySaleID(ctx, sale.ID)
	if err != nil {
		return SaleDetails{}, err
	}
	return SaleDetails{Sale: sale, LineItems: items, Authorizations: auths}, nil
}

// CancelSale cancels every still-cancellable authorization of the sale,
// best-effort, then records the sale as cancelada regardless of individual
// outcomes. One failed authorization never blocks the rest of the loop nor
// the sale-level status write.
func (u *SaleUseCase) CancelSale(ctx context.Context, id string) (CascadeResult, error) {
	return u.cascade(ctx, id, entities.SaleStatusCancelada, entities.AuthorizationStatusCancelada,
		entities.AuthorizationStatus.Cancellable)
}

// ReverseSale is the post-payment counterpart: paid authorizations are
// reversed (estorno), everything else is skipped, and the sale is recorded as
// estornada.
func (u *SaleUseCase) ReverseSale(ctx context.Context, id string) (CascadeResult, error) {
	return u.cascade(ctx, id, entities.SaleStatusEstornada, entities.AuthorizationStatusEstornada,
		entities.AuthorizationStatus.Reversible)
}

func (u *SaleUseCase) cascade(
	ctx context.Context,
	id string,
	saleStatus entities.SaleStatus,
	target entities.AuthorizationStatus,
	eligible func(entities.AuthorizationStatus) bool,
) (CascadeResult, error) {
	sale, err := u.getSale(ctx, id)
	if err != nil {
		return CascadeResult{}, err
	}

	auths, err := u.auths.ListBySaleID(ctx, sale.ID)
	if err != nil {
		return CascadeResult{}, err
	}

	now := time.Now().UTC()
	outcomes := make([]CascadeOutcome, 0, len(auths))
	for _, a := range auths {
		outcome := CascadeOutcome{AuthorizationID: a.ID, AuthCode: a.AuthCode, From: a.Status}
		switch {
		case !eligible(a.Status):
			outcome.Outcome = CascadeOutcomeSkipped
			outcome.Reason = fmt.Sprintf("status %s is not eligible for %s", a.Status, target)
		default:
			updated, err := u.auths.TransitionStatus(ctx, a.ID, a.Status, target, now)
			switch {
			case err != nil:
				outcome.Outcome = CascadeOutcomeFailed
				outcome.Reason = err.Error()
				u.log.Warn().Err(err).Str("sale_id", sale.ID).Str("authorization_id", a.ID).
					Str("target", string(target)).Msg("cascade transition failed")
			case updated.ID == "":
				terr := &entities.TransitionError{AuthorizationID: a.ID, From: a.Status, To: target}
				outcome.Outcome = CascadeOutcomeFailed
				outcome.Reason = terr.Error()
				u.log.Warn().Str("sale_id", sale.ID).Str("authorization_id", a.ID).
					Str("target", string(target)).Msg("cascade transition lost compare-and-swap")
			default:
				outcome.Outcome = CascadeOutcomeApplied
			}
		}
		outcomes = append(outcomes, outcome)
	}

	// The sale-level decision is recorded even when authorizations lagged
	// behind; the outcome list is the operator's reconciliation input.
	updated, err := u.sales.UpdateStatus(ctx, sale.ID, saleStatus)
	if err != nil {
		return CascadeResult{}, err
	}
	if updated.ID == "" {
		return CascadeResult{}, ErrSaleNotFound
	}
	return CascadeResult{Sale: updated, Outcomes: outcomes}, nil
}

func (u *SaleUseCase) getSale(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	sale, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}
