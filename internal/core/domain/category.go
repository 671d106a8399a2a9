package domain

// CategoryType restricts a category to one side of the ledger.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category is reference data from the ledger's perspective: transactions point
// at it, nothing in the core mutates it.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Icon       string       `json:"icon,omitempty"`
	Color      string       `json:"color,omitempty"`
	IsDefault  bool         `json:"isDefault"`
}
