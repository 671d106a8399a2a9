package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo   portsrepo.BudgetRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, categoryRepo portsrepo.CategoryRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.PlannedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: planned amount must be positive", apperrors.ErrValidation)
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.Type != req.Type {
			return nil, fmt.Errorf("%w: category %q is a %s category, budget type is %s",
				apperrors.ErrValidation, category.Name, category.Type, req.Type)
		}
	}

	budget := domain.Budget{
		BudgetID:      uuid.NewString(),
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Type:          req.Type,
		Month:         req.Month,
		Year:          req.Year,
		PlannedAmount: req.PlannedAmount,
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, userID, month, year)
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.PlannedAmount != nil {
		if req.PlannedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: planned amount must be positive", apperrors.ErrValidation)
		}
		budget.PlannedAmount = *req.PlannedAmount
	}

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	return s.budgetRepo.DeleteBudget(ctx, userID, budgetID)
}
