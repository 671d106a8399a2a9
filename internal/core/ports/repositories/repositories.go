package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	UserRepo        UserRepository
	AccountRepo     AccountRepositoryWithLedgerAccess
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
	BudgetRepo      BudgetRepository
	DebtRepo        DebtRepository
}
