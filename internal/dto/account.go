package dto

import (
	"time"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is the opening balance; it defaults to zero.
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=CARD BANK CASH E_WALLET"`
	Currency string             `json:"currency"`
	Balance  decimal.Decimal    `json:"balance"`
	Color    string             `json:"color"`
	Icon     string             `json:"icon"`
}

// UpdateAccountRequest defines the fields allowed to change on an account.
// Pointers distinguish "not provided" from zero values.
type UpdateAccountRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Currency  string             `json:"currency"`
	Balance   decimal.Decimal    `json:"balance"`
	Color     string             `json:"color,omitempty"`
	Icon      string             `json:"icon,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Type:      acc.Type,
		Currency:  acc.Currency,
		Balance:   acc.Balance,
		Color:     acc.Color,
		Icon:      acc.Icon,
		CreatedAt: acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to responses.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
