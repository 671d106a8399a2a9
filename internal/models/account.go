package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType describes the kind of account the user keeps money in.
type AccountType string

const (
	Card    AccountType = "CARD"
	Bank    AccountType = "BANK"
	Cash    AccountType = "CASH"
	EWallet AccountType = "E_WALLET"
)

// Account is the database representation of a financial account.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Type      AccountType     `db:"type"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	Color     string          `db:"color"`
	Icon      string          `db:"icon"`
	CreatedAt time.Time       `db:"created_at"`
}
