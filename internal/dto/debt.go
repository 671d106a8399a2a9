package dto

import (
	"time"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt or receivable.
type CreateDebtRequest struct {
	Type        domain.DebtType `json:"type" binding:"required,oneof=DEBT RECEIVABLE"`
	PersonName  string          `json:"personName" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	DueDate     *string         `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateDebtRequest defines the fields allowed to change on a debt.
type UpdateDebtRequest struct {
	PersonName  *string          `json:"personName"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	DueDate     *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListDebtsParams defines query parameters for listing debts.
type ListDebtsParams struct {
	Status *domain.DebtStatus `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID      string            `json:"debtID"`
	Type        domain.DebtType   `json:"type"`
	PersonName  string            `json:"personName"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Status      domain.DebtStatus `json:"status"`
	DueDate     *string           `json:"dueDate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	resp := DebtResponse{
		DebtID:      d.DebtID,
		Type:        d.Type,
		PersonName:  d.PersonName,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
	if d.DueDate != nil {
		due := d.DueDate.Format(DateLayout)
		resp.DueDate = &due
	}
	return resp
}

// ToListDebtResponse converts a slice of domain.Debt to responses.
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}
