package models

// CategoryType restricts a category to one side of the ledger.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category is the database representation of a transaction category.
type Category struct {
	CategoryID string       `db:"category_id"`
	UserID     string       `db:"user_id"`
	Name       string       `db:"name"`
	Type       CategoryType `db:"type"`
	Icon       string       `db:"icon"`
	Color      string       `db:"color"`
	IsDefault  bool         `db:"is_default"`
}
