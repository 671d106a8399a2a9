package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/middleware"
	"github.com/moliya-app/moliya-backend/internal/utils/guard"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
	locks           *guard.AccountLocks
}

// NewTransactionService creates the service for single-sided (INCOME/EXPENSE)
// ledger mutations. All validation happens before any lock is taken or any
// storage write is attempted; a validation failure has zero side effects.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
	locks *guard.AccountLocks,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		locks:           locks,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateCategory checks that the category exists and that its side of the
// ledger matches the transaction type.
func (s *transactionService) validateCategory(ctx context.Context, userID string, categoryID string, txnType domain.TransactionType) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	matches := (txnType == domain.Income && category.Type == domain.CategoryIncome) ||
		(txnType == domain.Expense && category.Type == domain.CategoryExpense)
	if !matches {
		return fmt.Errorf("%w: category %q is a %s category and cannot be used on a %s transaction",
			apperrors.ErrValidation, category.Name, category.Type, txnType)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, userID, *req.CategoryID, req.Type); err != nil {
			return nil, err
		}
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		CreatedAt:     time.Now().UTC(),
	}

	unlock := s.locks.Lock(txn.AccountID)
	defer unlock()

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
	)
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := portsrepo.TransactionFilter{
		CategoryID: params.CategoryID,
		Type:       domain.TransactionType(params.Type),
		AccountID:  params.AccountID,
	}
	if params.DateFrom != "" {
		from, err := time.Parse(dto.DateLayout, params.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateFrom", apperrors.ErrValidation)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse(dto.DateLayout, params.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateTo", apperrors.ErrValidation)
		}
		filter.DateTo = &to
	}

	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	txns, newToken, err := s.transactionRepo.ListTransactions(ctx, userID, filter, params.Limit, nextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    newToken,
	}, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.IsTransferLeg() {
		return nil, fmt.Errorf("%w: transfer legs must be managed through the transfer endpoint", apperrors.ErrValidation)
	}

	updated := *existing
	if req.AccountID != nil {
		updated.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
		}
		updated.Date = date
	}

	if err := validateAmount(updated.Amount); err != nil {
		return nil, err
	}
	if updated.AccountID != existing.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, updated.AccountID); err != nil {
			return nil, err
		}
	}
	if updated.CategoryID != nil {
		if err := s.validateCategory(ctx, userID, *updated.CategoryID, updated.Type); err != nil {
			return nil, err
		}
	}

	// Lock covers both accounts when the row moved; Lock sorts and dedups.
	unlock := s.locks.Lock(existing.AccountID, updated.AccountID)
	defer unlock()

	if err := s.transactionRepo.UpdateTransaction(ctx, *existing, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if txn.IsTransferLeg() {
		return fmt.Errorf("%w: transfer legs must be deleted through the transfer endpoint", apperrors.ErrValidation)
	}

	unlock := s.locks.Lock(txn.AccountID)
	defer unlock()

	return s.transactionRepo.DeleteTransaction(ctx, *txn)
}
