package domain

import "github.com/shopspring/decimal"

// Budget is a planned amount for a category (or overall, when CategoryID is
// nil) in a given month. Plain CRUD row, no cross-entity consistency rules.
type Budget struct {
	BudgetID      string          `json:"budgetID"`
	UserID        string          `json:"userID"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	Type          CategoryType    `json:"type"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	PlannedAmount decimal.Decimal `json:"plannedAmount"`
}
