package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"saudeplus/internal/domain/entities"
	mock_interfaces "saudeplus/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func pendingQuote(validUntil time.Time) entities.Quote {
	return entities.Quote{
		ID:         "quote-1",
		ClientID:   "client-1",
		ServiceID:  "svc-1",
		ProviderID: "prov-1",
		CostValue:  80,
		SaleValue:  120,
		FinalValue: 100,
		Status:     entities.QuoteStatusPendente,
		ValidUntil: validUntil,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing ids", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{ClientID: "  ", ServiceID: "svc-1", ProviderID: "prov-1", FinalValue: 10, ValidUntil: time.Now().Add(time.Hour)})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("non positive final value", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{ClientID: "client-1", ServiceID: "svc-1", ProviderID: "prov-1", FinalValue: 0, ValidUntil: time.Now().Add(time.Hour)})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("missing validity date", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateQuote(context.Background(), CreateQuoteInput{ClientID: "client-1", ServiceID: "svc-1", ProviderID: "prov-1", FinalValue: 10})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("success creates pending quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.Status != entities.QuoteStatusPendente {
				t.Fatalf("expected pendente, got %s", q.Status)
			}
			if q.ID == "" {
				t.Fatalf("expected generated id")
			}
			return q, nil
		})

		q, err := uc.CreateQuote(context.Background(), CreateQuoteInput{ClientID: "client-1", ServiceID: "svc-1", ProviderID: "prov-1", FinalValue: 100, ValidUntil: time.Now().Add(48 * time.Hour)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.FinalValue != 100 {
			t.Fatalf("unexpected final value %v", q.FinalValue)
		}
	})
}

func TestQuoteUseCase_Approve(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.Approve(context.Background(), "  ", "user-1")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(entities.Quote{}, nil)

		_, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("expired quote is not approvable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pendingQuote(time.Now().Add(-time.Hour)), nil)

		_, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("already decided quote is not approvable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		q.Status = entities.QuoteStatusAprovado
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)

		_, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("transaction failure keeps quote pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pendingQuote(time.Now().Add(time.Hour)), nil)
		repo.EXPECT().ApproveWithSale(gomock.Any(), "quote-1", "user-1", gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("transact canceled"))

		_, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrSaleIssuanceFailed) {
			t.Fatalf("expected ErrSaleIssuanceFailed, got %v", err)
		}
	})

	t.Run("lost compare-and-swap reports winning status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		rejected := q
		rejected.Status = entities.QuoteStatusRejeitado

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		repo.EXPECT().ApproveWithSale(gomock.Any(), "quote-1", "user-1", gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(rejected, nil)

		_, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("authorization batch failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		auths := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewQuoteUseCase(repo, auths, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		approved := q
		approved.Status = entities.QuoteStatusAprovado

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		repo.EXPECT().ApproveWithSale(gomock.Any(), "quote-1", "user-1", gomock.Any(), gomock.Any()).Return(approved, nil)
		auths.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

		result, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IssuanceError == nil {
			t.Fatalf("expected issuance error to be recorded")
		}
		if len(result.Authorizations) != 0 {
			t.Fatalf("expected no authorizations, got %d", len(result.Authorizations))
		}
		if result.Sale.ID == "" {
			t.Fatalf("expected committed sale in result")
		}
	})

	t.Run("success issues sale and authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		auths := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewQuoteUseCase(repo, auths, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		approved := q
		approved.Status = entities.QuoteStatusAprovado
		approved.DecidedBy = "user-1"

		var capturedSale entities.Sale
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		repo.EXPECT().ApproveWithSale(gomock.Any(), "quote-1", "user-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ string, sale entities.Sale, items []entities.SaleService) (entities.Quote, error) {
				capturedSale = sale
				if sale.Total != q.FinalValue {
					t.Fatalf("sale total %v does not match final value %v", sale.Total, q.FinalValue)
				}
				if sale.Status != entities.SaleStatusAguardandoPagamento {
					t.Fatalf("unexpected sale status %s", sale.Status)
				}
				if len(items) != 1 || items[0].Value != q.FinalValue || items[0].ServiceID != q.ServiceID {
					t.Fatalf("unexpected line items %+v", items)
				}
				return approved, nil
			})
		auths.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []entities.ServiceAuthorization) ([]entities.ServiceAuthorization, error) {
				if len(batch) != 1 {
					t.Fatalf("expected one authorization, got %d", len(batch))
				}
				if batch[0].SaleID != capturedSale.ID || batch[0].Status != entities.AuthorizationStatusEmitida {
					t.Fatalf("unexpected authorization %+v", batch[0])
				}
				return batch, nil
			})

		result, err := uc.Approve(context.Background(), "quote-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IssuanceError != nil {
			t.Fatalf("unexpected issuance error: %v", result.IssuanceError)
		}
		if result.Quote.Status != entities.QuoteStatusAprovado {
			t.Fatalf("expected aprovado, got %s", result.Quote.Status)
		}
		if len(result.Authorizations) != 1 {
			t.Fatalf("expected one authorization, got %d", len(result.Authorizations))
		}
	})
}

func TestQuoteUseCase_Reject(t *testing.T) {
	t.Run("expired quote is not rejectable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pendingQuote(time.Now().Add(-time.Hour)), nil)

		_, err := uc.Reject(context.Background(), "quote-1", "muito caro", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("reason is appended to observation trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		q.Observation = "proposta inicial"
		rejected := q
		rejected.Status = entities.QuoteStatusRejeitado

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		repo.EXPECT().RejectIfPending(gomock.Any(), "quote-1", "proposta inicial\nmuito caro", "user-1").Return(rejected, nil)

		got, err := uc.Reject(context.Background(), "quote-1", "muito caro", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuoteStatusRejeitado {
			t.Fatalf("expected rejeitado, got %s", got.Status)
		}
	})

	t.Run("lost compare-and-swap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		approved := q
		approved.Status = entities.QuoteStatusAprovado

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		repo.EXPECT().RejectIfPending(gomock.Any(), "quote-1", gomock.Any(), "user-1").Return(entities.Quote{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(approved, nil)

		_, err := uc.Reject(context.Background(), "quote-1", "", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})
}

func TestQuoteUseCase_Negotiate(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, zerolog.Nop())
		err := uc.Negotiate(context.Background(), "quote-1", "   ", "user-1")
		if !errors.Is(err, ErrEmptyNegotiationMessage) {
			t.Fatalf("expected ErrEmptyNegotiationMessage, got %v", err)
		}
	})

	t.Run("expired quote is not negotiable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pendingQuote(time.Now().Add(-time.Hour)), nil)

		err := uc.Negotiate(context.Background(), "quote-1", "pode melhorar o preço?", "user-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("missing notifier is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pendingQuote(time.Now().Add(time.Hour)), nil)

		if err := uc.Negotiate(context.Background(), "quote-1", "pode melhorar o preço?", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery failure is not propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINegotiationNotifier(ctrl)
		uc := NewQuoteUseCase(repo, nil, notifier, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		notifier.EXPECT().SendNegotiation(gomock.Any(), "quote-1", "client-1", "pode melhorar o preço?").Return(errors.New("twilio down"))

		if err := uc.Negotiate(context.Background(), "quote-1", "pode melhorar o preço?", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivers to notifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINegotiationNotifier(ctrl)
		uc := NewQuoteUseCase(repo, nil, notifier, zerolog.Nop())

		q := pendingQuote(time.Now().Add(time.Hour))
		repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)
		notifier.EXPECT().SendNegotiation(gomock.Any(), "quote-1", "client-1", "pode melhorar o preço?").Return(nil)

		if err := uc.Negotiate(context.Background(), "quote-1", "pode melhorar o preço?", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
