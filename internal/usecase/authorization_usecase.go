package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase/interfaces"
)

var (
	ErrAuthorizationNotFound      = errors.New("authorization not found")
	ErrInvalidAuthorizationID     = errors.New("invalid authorization id")
	ErrInvalidAuthorizationAction = errors.New("invalid authorization action")
)

// AuthorizationAction names one state-machine operation on a guia.
type AuthorizationAction string

const (
	ActionRealize AuthorizationAction = "realize"
	ActionBill    AuthorizationAction = "bill"
	ActionPay     AuthorizationAction = "pay"
	ActionCancel  AuthorizationAction = "cancel"
	ActionReverse AuthorizationAction = "reverse"
)

// IAuthorizationUseCase exposes the service-authorization state machine.
type IAuthorizationUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ServiceAuthorization, error)
	Transition(ctx context.Context, id string, action AuthorizationAction) (entities.ServiceAuthorization, error)
}

type AuthorizationUseCase struct {
	repo interfaces.IAuthorizationRepository
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(repo interfaces.IAuthorizationRepository) *AuthorizationUseCase {
	return &AuthorizationUseCase{repo: repo}
}

func (u *AuthorizationUseCase) GetByID(ctx context.Context, id string) (entities.ServiceAuthorization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceAuthorization{}, ErrInvalidAuthorizationID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceAuthorization{}, err
	}
	if a.ID == "" {
		return entities.ServiceAuthorization{}, ErrAuthorizationNotFound
	}
	return a, nil
}

// Transition applies one state-machine action. The status write is a
// compare-and-swap on the state the authorization was read in, so concurrent
// transitions resolve to a TransitionError for the loser.
func (u *AuthorizationUseCase) Transition(ctx context.Context, id string, action AuthorizationAction) (entities.ServiceAuthorization, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceAuthorization{}, err
	}

	target, err := targetStatus(action)
	if err != nil {
		return entities.ServiceAuthorization{}, err
	}
	if !entities.CanTransition(a.Status, target) {
		return entities.ServiceAuthorization{}, &entities.TransitionError{
			AuthorizationID: a.ID, From: a.Status, To: target,
		}
	}

	updated, err := u.repo.TransitionStatus(ctx, a.ID, a.Status, target, time.Now().UTC())
	if err != nil {
		return entities.ServiceAuthorization{}, err
	}
	if updated.ID == "" {
		// Lost the compare-and-swap; report against the state that won.
		current, err := u.repo.GetByID(ctx, a.ID)
		if err != nil || current.ID == "" {
			return entities.ServiceAuthorization{}, &entities.TransitionError{
				AuthorizationID: a.ID, From: a.Status, To: target,
			}
		}
		return entities.ServiceAuthorization{}, &entities.TransitionError{
			AuthorizationID: a.ID, From: current.Status, To: target,
		}
	}
	return updated, nil
}

func targetStatus(action AuthorizationAction) (entities.AuthorizationStatus, error) {
	switch action {
	case ActionRealize:
		return entities.AuthorizationStatusRealizada, nil
	case ActionBill:
		return entities.AuthorizationStatusFaturada, nil
	case ActionPay:
		return entities.AuthorizationStatusPaga, nil
	case ActionCancel:
		return entities.AuthorizationStatusCancelada, nil
	case ActionReverse:
		return entities.AuthorizationStatusEstornada, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAuthorizationAction, action)
	}
}
