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
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuoteInput       = errors.New("invalid quote input")
	ErrQuoteNotPending         = errors.New("quote is not pending")
	ErrEmptyNegotiationMessage = errors.New("negotiation message is required")
)

// CreateQuoteInput carries the staff-entered proposal data.
type CreateQuoteInput struct {
	ClientID    string
	ServiceID   string
	ProviderID  string
	CostValue   float64
	SaleValue   float64
	FinalValue  float64
	ValidUntil  time.Time
	Observation string
}

// ApproveQuoteResult is what a successful approval produces: the approved
// quote, the committed sale with its line items, and the authorizations that
// could be issued. IssuanceError is set (and Authorizations empty) when the
// authorization batch failed after the sale committed; the sale stays valid
// and the batch can be retried.
type ApproveQuoteResult struct {
	Quote          entities.Quote
	Sale           entities.Sale
	LineItems      []entities.SaleService
	Authorizations []entities.ServiceAuthorization
	IssuanceError  error
}

// IQuoteUseCase exposes the quote decision workflow.
//
// Every decision re-derives the effective status (expiration included) before
// acting, and every status write is a compare-and-swap keyed on the stored
// status, so a concurrent second decision observes an invalid-state error
// rather than a second sale.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, input CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Approve(ctx context.Context, quoteID, actor string) (ApproveQuoteResult, error)
	Reject(ctx context.Context, quoteID, reason, actor string) (entities.Quote, error)
	Negotiate(ctx context.Context, quoteID, message, actor string) error
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	auths    interfaces.IAuthorizationRepository
	notifier interfaces.INegotiationNotifier
	log      zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, auths interfaces.IAuthorizationRepository, notifier interfaces.INegotiationNotifier, log zerolog.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, auths: auths, notifier: notifier, log: log}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, input CreateQuoteInput) (entities.Quote, error) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.ProviderID = strings.TrimSpace(input.ProviderID)
	if input.ClientID == "" || input.ServiceID == "" || input.ProviderID == "" {
		return entities.Quote{}, fmt.Errorf("%w: client, service and provider are required", ErrInvalidQuoteInput)
	}
	if input.FinalValue <= 0 {
		return entities.Quote{}, fmt.Errorf("%w: final value must be positive", ErrInvalidQuoteInput)
	}
	if input.ValidUntil.IsZero() {
		return entities.Quote{}, fmt.Errorf("%w: validity date is required", ErrInvalidQuoteInput)
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ClientID:    input.ClientID,
		ServiceID:   input.ServiceID,
		ProviderID:  input.ProviderID,
		CostValue:   input.CostValue,
		SaleValue:   input.SaleValue,
		FinalValue:  input.FinalValue,
		Status:      entities.QuoteStatusPendente,
		ValidUntil:  input.ValidUntil.UTC(),
		Observation: input.Observation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Approve converts a pending quote into a sale with one line item and issues
// its authorization. The quote status flip and the sale creation commit in
// one transaction: any failure there leaves the quote pendente and no sale
// behind. Authorization issuance after the commit is non-fatal (§ see
// ApproveQuoteResult).
func (u *QuoteUseCase) Approve(ctx context.Context, quoteID, actor string) (ApproveQuoteResult, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return ApproveQuoteResult{}, err
	}

	now := time.Now().UTC()
	if eff := q.EffectiveStatus(now); eff != entities.QuoteStatusPendente {
		return ApproveQuoteResult{}, fmt.Errorf("%w: %s", ErrQuoteNotPending, eff)
	}

	sale := entities.Sale{
		ID:            uuid.NewString(),
		ClientID:      q.ClientID,
		Total:         q.FinalValue,
		PaymentMethod: entities.PaymentMethodPendente,
		Status:        entities.SaleStatusAguardandoPagamento,
		CreatedBy:     actor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := []entities.SaleService{{
		ID:         uuid.NewString(),
		SaleID:     sale.ID,
		ServiceID:  q.ServiceID,
		ProviderID: q.ProviderID,
		Value:      q.FinalValue,
		Status:     entities.SaleServiceStatusAtiva,
		CreatedAt:  now,
	}}

	approved, err := u.repo.ApproveWithSale(ctx, q.ID, actor, sale, items)
	if err != nil {
		return ApproveQuoteResult{}, fmt.Errorf("%w: %v", ErrSaleIssuanceFailed, err)
	}
	if approved.ID == "" {
		// Lost the compare-and-swap: another decision landed first.
		return ApproveQuoteResult{}, u.notPendingError(ctx, q.ID, now)
	}

	result := ApproveQuoteResult{Quote: approved, Sale: sale, LineItems: items}

	auths := make([]entities.ServiceAuthorization, 0, len(items))
	for _, item := range items {
		auths = append(auths, entities.NewServiceAuthorization(sale, item, now))
	}
	created, err := u.auths.CreateBatch(ctx, auths)
	if err != nil {
		// Sale is committed; issuance stays retryable on its own.
		u.log.Warn().Err(err).Str("quote_id", q.ID).Str("sale_id", sale.ID).
			Msg("authorization issuance failed after sale commit")
		result.IssuanceError = err
		return result, nil
	}
	result.Authorizations = created
	return result, nil
}

func (u *QuoteUseCase) Reject(ctx context.Context, quoteID, reason, actor string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	if eff := q.EffectiveStatus(now); eff != entities.QuoteStatusPendente {
		return entities.Quote{}, fmt.Errorf("%w: %s", ErrQuoteNotPending, eff)
	}

	observation := entities.AppendObservation(q.Observation, reason)
	updated, err := u.repo.RejectIfPending(ctx, q.ID, observation, actor)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, u.notPendingError(ctx, q.ID, now)
	}
	return updated, nil
}

// Negotiate records a negotiation message for human follow-up. The quote
// status is untouched; delivery is fire-and-forget.
func (u *QuoteUseCase) Negotiate(ctx context.Context, quoteID, message, actor string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyNegotiationMessage
	}
	q, err := u.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if eff := q.EffectiveStatus(now); eff != entities.QuoteStatusPendente {
		return fmt.Errorf("%w: %s", ErrQuoteNotPending, eff)
	}

	if u.notifier == nil {
		u.log.Warn().Str("quote_id", q.ID).Msg("negotiation notifier not configured; message dropped")
		return nil
	}
	if err := u.notifier.SendNegotiation(ctx, q.ID, q.ClientID, message); err != nil {
		u.log.Warn().Err(err).Str("quote_id", q.ID).Str("actor", actor).
			Msg("negotiation message delivery failed")
	}
	return nil
}

// notPendingError re-reads the quote so the error names the effective status
// that actually won the race.
func (u *QuoteUseCase) notPendingError(ctx context.Context, id string, now time.Time) error {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return ErrQuoteNotPending
	}
	return fmt.Errorf("%w: %s", ErrQuoteNotPending, current.EffectiveStatus(now))
}
