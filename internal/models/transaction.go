package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates how a transaction affects its account's balance.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Transaction is the database representation of one ledger row.
// Amount is stored positive; direction is set only for TRANSFER legs.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	UserID               string          `db:"user_id"`
	AccountID            string          `db:"account_id"`
	CategoryID           *string         `db:"category_id"`
	Type                 TransactionType `db:"type"`
	Amount               decimal.Decimal `db:"amount"`
	Description          string          `db:"description"`
	Date                 time.Time       `db:"date"`
	RelatedTransactionID *string         `db:"related_transaction_id"`
	Direction            string          `db:"transfer_direction"`
	CreatedAt            time.Time       `db:"created_at"`
}
