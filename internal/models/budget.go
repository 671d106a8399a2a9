package models

import "github.com/shopspring/decimal"

// Budget is the database representation of a monthly planned amount.
type Budget struct {
	BudgetID      string          `db:"budget_id"`
	UserID        string          `db:"user_id"`
	CategoryID    *string         `db:"category_id"`
	Type          CategoryType    `db:"type"`
	Month         int             `db:"month"`
	Year          int             `db:"year"`
	PlannedAmount decimal.Decimal `db:"planned_amount"`
}
