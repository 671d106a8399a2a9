package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// DebtSvcFacade exposes debt/receivable CRUD.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)
	GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, userID string, status *domain.DebtStatus) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)
	CloseDebt(ctx context.Context, userID string, debtID string) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, userID string, debtID string) error
}
