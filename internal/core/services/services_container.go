package services

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/utils/guard"
	"github.com/moliya-app/moliya-backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. A single guard lock registry is shared by the
// transaction and transfer services so their per-account serialization
// composes.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	locks := guard.NewAccountLocks()
	idempotency := guard.NewIdempotencyCache[domain.TransferPair](cfg.IdempotencyCacheSize, cfg.IdempotencyRetention)

	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.User = NewUserService(repos.UserRepo, container.Category)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, locks)
	container.Transfer = NewTransferService(repos.TransactionRepo, repos.AccountRepo, locks, idempotency)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)
	container.Debt = NewDebtService(repos.DebtRepo)

	return container
}
