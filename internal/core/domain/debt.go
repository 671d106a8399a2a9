package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the user owes from money owed to the user.
type DebtType string

const (
	DebtOwed       DebtType = "DEBT"
	DebtReceivable DebtType = "RECEIVABLE"
)

// DebtStatus tracks whether a debt is still outstanding.
type DebtStatus string

const (
	DebtOpen   DebtStatus = "OPEN"
	DebtClosed DebtStatus = "CLOSED"
)

// Debt is an informal IOU tracked alongside the ledger. It does not touch
// account balances.
type Debt struct {
	DebtID      string          `json:"debtID"`
	UserID      string          `json:"userID"`
	Type        DebtType        `json:"type"`
	PersonName  string          `json:"personName"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	Status      DebtStatus      `json:"status"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
