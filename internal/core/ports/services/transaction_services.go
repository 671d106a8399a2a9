package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// TransactionSvcFacade validates and applies single-sided (INCOME/EXPENSE)
// ledger mutations. Transfer legs are read-only through this facade: they are
// created and destroyed only in pairs by TransferSvcFacade.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransferSvcFacade atomically creates and removes matched pairs of TRANSFER
// transactions across two distinct accounts.
type TransferSvcFacade interface {
	// CreateTransfer applies the two-sided transfer. idempotencyKey may be
	// empty; a repeated key within the retention window returns the previously
	// committed pair without re-applying.
	CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest, idempotencyKey string) (*domain.TransferPair, error)

	// DeleteTransferPair removes both legs of the pair containing the given
	// transaction id (either leg may be named).
	DeleteTransferPair(ctx context.Context, userID string, transactionID string) error
}
