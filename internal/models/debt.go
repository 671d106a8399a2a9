package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the database representation of an informal IOU.
type Debt struct {
	DebtID      string          `db:"debt_id"`
	UserID      string          `db:"user_id"`
	Type        string          `db:"type"`
	PersonName  string          `db:"person_name"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	DueDate     *time.Time      `db:"due_date"`
	CreatedAt   time.Time       `db:"created_at"`
}
