package repositories

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// DebtRepository persists debts and receivables.
type DebtRepository interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error
	FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, userID string, status *domain.DebtStatus) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, debt domain.Debt) error
	DeleteDebt(ctx context.Context, userID string, debtID string) error
}
