package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type debtService struct {
	debtRepo portsrepo.DebtRepository
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepository) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func parseDueDate(due *string) (*time.Time, error) {
	if due == nil {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, *due)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dueDate", apperrors.ErrValidation)
	}
	return &d, nil
}

func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Type:        req.Type,
		PersonName:  req.PersonName,
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		Status:      domain.DebtOpen,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, userID, debtID)
}

func (s *debtService) ListDebts(ctx context.Context, userID string, status *domain.DebtStatus) ([]domain.Debt, error) {
	return s.debtRepo.ListDebts(ctx, userID, status)
}

func (s *debtService) UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	if req.PersonName != nil {
		debt.PersonName = *req.PersonName
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		debt.Amount = *req.Amount
	}
	if req.Description != nil {
		debt.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		debt.DueDate = dueDate
	}

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *debtService) CloseDebt(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	if debt.Status == domain.DebtClosed {
		return nil, fmt.Errorf("%w: debt is already closed", apperrors.ErrValidation)
	}

	debt.Status = domain.DebtClosed
	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, userID string, debtID string) error {
	return s.debtRepo.DeleteDebt(ctx, userID, debtID)
}
