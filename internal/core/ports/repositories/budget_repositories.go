package repositories

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// BudgetRepository persists monthly budgets.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}
