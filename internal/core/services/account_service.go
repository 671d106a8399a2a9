package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// DefaultCurrency is applied when an account or debt is created without an
// explicit currency code.
const DefaultCurrency = "UZS"

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Currency:  currency,
		Balance:   req.Balance,
		Color:     req.Color,
		Icon:      req.Icon,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID)
}

func (s *accountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	if req.Icon != nil {
		account.Icon = *req.Icon
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	return s.accountRepo.DeleteAccount(ctx, userID, accountID)
}
