package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories. The transaction
// repository receives the account repository so balance locking and delta
// application share the ledger store's database transactions.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	debtRepo := newPgxDebtRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		CategoryRepo:    categoryRepo,
		TransactionRepo: transactionRepo,
		BudgetRepo:      budgetRepo,
		DebtRepo:        debtRepo,
	}
}
