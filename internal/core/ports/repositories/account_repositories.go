package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository persists user accounts. Balances are never written through
// these methods; only the ledger store mutates them, via AccountLedgerAccess.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountLedgerAccess is the slice of account storage the ledger store uses
// inside its atomic units: locking account rows and applying balance deltas
// within an already-open database transaction.
type AccountLedgerAccess interface {
	// FindAccountsByIDsForUpdate locks the given accounts with FOR UPDATE,
	// in ascending account-id order, and returns them keyed by id. Missing
	// accounts make the whole call fail.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds each delta to its account's cached balance.
	// Callers must have locked the rows first.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal) error
}

// AccountRepositoryWithLedgerAccess is what the pgsql provider wires into the
// ledger store.
type AccountRepositoryWithLedgerAccess interface {
	AccountRepository
	AccountLedgerAccess
}
