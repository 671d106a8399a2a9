package domain

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

// Account represents a financial account within the core domain.
// Balance is a cached projection of the signed transaction log: it always
// equals the sum of signed amounts of the account's transactions and is
// mutated only through the ledger store's balance delta primitive.
type Account struct {
	AccountID string          `json:"accountID"`
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Currency  string          `json:"currency"` // opaque code, e.g. "UZS"; no FX logic
	Balance   decimal.Decimal `json:"balance"`
	Color     string          `json:"color,omitempty"`
	Icon      string          `json:"icon,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
