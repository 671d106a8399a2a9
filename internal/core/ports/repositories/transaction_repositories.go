package repositories

import (
	"context"
	"time"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// filter" for that field.
type TransactionFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	CategoryID string
	Type       domain.TransactionType
	AccountID  string
}

// TransactionRepository is the ledger store: durable, consistent storage of
// transaction rows and the sole writer of account balances. Every mutating
// method runs one atomic unit (a database transaction) that locks the affected
// account rows in ascending account-id order, applies the balance deltas
// implied by the rows' signed amounts, and writes the rows. A crash between
// balance update and row write is impossible to observe.
type TransactionRepository interface {
	// SaveTransaction inserts a single INCOME/EXPENSE row and applies its
	// signed amount to the owning account's balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction rewrites a row and applies the delta between the old
	// and new signed amounts, possibly across two accounts when the row moved.
	UpdateTransaction(ctx context.Context, old domain.Transaction, updated domain.Transaction) error

	// DeleteTransaction reverses the row's balance contribution and removes it.
	DeleteTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransferPair inserts both legs of a transfer with reciprocal
	// related_transaction_id links and applies both deltas. Both legs commit
	// or neither does.
	SaveTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error

	// DeleteTransferPair reverses both legs' deltas and removes both rows.
	DeleteTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error

	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of the user's transactions ordered by
	// (date desc, created_at desc) with cursor pagination.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
