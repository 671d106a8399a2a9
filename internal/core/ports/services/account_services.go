package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// AccountSvcFacade exposes account CRUD. Balance changes never go through
// here; they are owned by the ledger store.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}
