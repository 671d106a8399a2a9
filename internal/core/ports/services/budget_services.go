package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// BudgetSvcFacade exposes monthly budget CRUD.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}
