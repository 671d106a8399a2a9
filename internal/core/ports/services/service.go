package services

// ServiceContainer bundles all service facades for injection into the HTTP
// handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Transfer    TransferSvcFacade
	Budget      BudgetSvcFacade
	Debt        DebtSvcFacade
}
