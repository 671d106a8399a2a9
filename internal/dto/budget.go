package dto

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a monthly budget.
// CategoryID nil means an overall budget for the whole type.
type CreateBudgetRequest struct {
	CategoryID    *string             `json:"categoryID"`
	Type          domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Month         int                 `json:"month" binding:"required,min=1,max=12"`
	Year          int                 `json:"year" binding:"required,min=2000,max=2100"`
	PlannedAmount decimal.Decimal     `json:"plannedAmount" binding:"required"`
}

// UpdateBudgetRequest allows changing the planned amount only; period and
// category identify the budget and stay fixed.
type UpdateBudgetRequest struct {
	PlannedAmount *decimal.Decimal `json:"plannedAmount"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string              `json:"budgetID"`
	CategoryID    *string             `json:"categoryID,omitempty"`
	Type          domain.CategoryType `json:"type"`
	Month         int                 `json:"month"`
	Year          int                 `json:"year"`
	PlannedAmount decimal.Decimal     `json:"plannedAmount"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		CategoryID:    b.CategoryID,
		Type:          b.Type,
		Month:         b.Month,
		Year:          b.Year,
		PlannedAmount: b.PlannedAmount,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to responses.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
