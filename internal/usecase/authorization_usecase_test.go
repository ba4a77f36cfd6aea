package usecase

import (
	"context"
	"errors"
	"testing"

	"saudeplus/internal/domain/entities"
	mock_interfaces "saudeplus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedAuth(status entities.AuthorizationStatus) entities.ServiceAuthorization {
	return entities.ServiceAuthorization{ID: "auth-1", SaleID: "sale-1", AuthCode: "GSA-1", Status: status}
}

func TestAuthorizationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAuthorizationUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidAuthorizationID) {
			t.Fatalf("expected ErrInvalidAuthorizationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewAuthorizationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(entities.ServiceAuthorization{}, nil)

		_, err := uc.GetByID(context.Background(), "auth-1")
		if !errors.Is(err, ErrAuthorizationNotFound) {
			t.Fatalf("expected ErrAuthorizationNotFound, got %v", err)
		}
	})
}

func TestAuthorizationUseCase_Transition(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewAuthorizationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(entities.AuthorizationStatusEmitida), nil)

		_, err := uc.Transition(context.Background(), "auth-1", AuthorizationAction("archive"))
		if !errors.Is(err, ErrInvalidAuthorizationAction) {
			t.Fatalf("expected ErrInvalidAuthorizationAction, got %v", err)
		}
	})

	forward := []struct {
		name   string
		from   entities.AuthorizationStatus
		action AuthorizationAction
		to     entities.AuthorizationStatus
	}{
		{"realize from emitida", entities.AuthorizationStatusEmitida, ActionRealize, entities.AuthorizationStatusRealizada},
		{"bill from realizada", entities.AuthorizationStatusRealizada, ActionBill, entities.AuthorizationStatusFaturada},
		{"pay from faturada", entities.AuthorizationStatusFaturada, ActionPay, entities.AuthorizationStatusPaga},
		{"cancel from emitida", entities.AuthorizationStatusEmitida, ActionCancel, entities.AuthorizationStatusCancelada},
		{"cancel from realizada", entities.AuthorizationStatusRealizada, ActionCancel, entities.AuthorizationStatusCancelada},
		{"cancel from faturada", entities.AuthorizationStatusFaturada, ActionCancel, entities.AuthorizationStatusCancelada},
		{"reverse from paga", entities.AuthorizationStatusPaga, ActionReverse, entities.AuthorizationStatusEstornada},
	}
	for _, tc := range forward {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
			uc := NewAuthorizationUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(tc.from), nil)
			repo.EXPECT().TransitionStatus(gomock.Any(), "auth-1", tc.from, tc.to, gomock.Any()).
				Return(storedAuth(tc.to), nil)

			got, err := uc.Transition(context.Background(), "auth-1", tc.action)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, got.Status)
			}
		})
	}

	illegal := []struct {
		name   string
		from   entities.AuthorizationStatus
		action AuthorizationAction
	}{
		{"cancel from paga", entities.AuthorizationStatusPaga, ActionCancel},
		{"reverse from emitida", entities.AuthorizationStatusEmitida, ActionReverse},
		{"reverse from faturada", entities.AuthorizationStatusFaturada, ActionReverse},
		{"pay from emitida", entities.AuthorizationStatusEmitida, ActionPay},
		{"bill from emitida", entities.AuthorizationStatusEmitida, ActionBill},
		{"realize from cancelada", entities.AuthorizationStatusCancelada, ActionRealize},
		{"reverse from estornada", entities.AuthorizationStatusEstornada, ActionReverse},
	}
	for _, tc := range illegal {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
			uc := NewAuthorizationUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(tc.from), nil)

			_, err := uc.Transition(context.Background(), "auth-1", tc.action)
			if !errors.Is(err, entities.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			var terr *entities.TransitionError
			if !errors.As(err, &terr) || terr.From != tc.from {
				t.Fatalf("expected TransitionError from %s, got %v", tc.from, err)
			}
		})
	}

	t.Run("lost compare-and-swap reports winning state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewAuthorizationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(entities.AuthorizationStatusEmitida), nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "auth-1", entities.AuthorizationStatusEmitida, entities.AuthorizationStatusRealizada, gomock.Any()).
			Return(entities.ServiceAuthorization{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(entities.AuthorizationStatusCancelada), nil)

		_, err := uc.Transition(context.Background(), "auth-1", ActionRealize)
		var terr *entities.TransitionError
		if !errors.As(err, &terr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
		if terr.From != entities.AuthorizationStatusCancelada {
			t.Fatalf("expected error against winning state cancelada, got %s", terr.From)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuthorizationRepository(ctrl)
		uc := NewAuthorizationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "auth-1").Return(storedAuth(entities.AuthorizationStatusEmitida), nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "auth-1", entities.AuthorizationStatusEmitida, entities.AuthorizationStatusRealizada, gomock.Any()).
			Return(entities.ServiceAuthorization{}, errors.New("db"))

		if _, err := uc.Transition(context.Background(), "auth-1", ActionRealize); err == nil {
			t.Fatalf("expected error")
		}
	})
}
