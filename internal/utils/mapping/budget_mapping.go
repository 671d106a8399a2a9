package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelBudget converts a domain budget to its database representation.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:      d.BudgetID,
		UserID:        d.UserID,
		CategoryID:    d.CategoryID,
		Type:          models.CategoryType(d.Type),
		Month:         d.Month,
		Year:          d.Year,
		PlannedAmount: d.PlannedAmount,
	}
}

// ToDomainBudget converts a database budget row to the domain type.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:      m.BudgetID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		Type:          domain.CategoryType(m.Type),
		Month:         m.Month,
		Year:          m.Year,
		PlannedAmount: m.PlannedAmount,
	}
}

// ToDomainBudgetSlice converts a slice of database rows to domain budgets.
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
