package domain

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

// TransferDirection marks which side of a transfer pair a TRANSFER leg is.
// Empty for INCOME and EXPENSE rows.
type TransferDirection string

const (
	TransferOut TransferDirection = "OUT"
	TransferIn  TransferDirection = "IN"
)

// Transaction is one row of the ledger. Amount is always stored positive; the
// sign applied to the account balance is derived from Type (and, for transfer
// legs, Direction) via SignedAmount.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	UserID               string            `json:"userID"`
	AccountID            string            `json:"accountID"`
	CategoryID           *string           `json:"categoryID,omitempty"`
	Type                 TransactionType   `json:"type"`
	Amount               decimal.Decimal   `json:"amount"`
	Description          string            `json:"description,omitempty"`
	Date                 time.Time         `json:"date"` // calendar date, no time-of-day semantics
	RelatedTransactionID *string           `json:"relatedTransactionID,omitempty"`
	Direction            TransferDirection `json:"direction,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
}

// IsTransferLeg reports whether the row is one half of a transfer pair.
func (t Transaction) IsTransferLeg() bool {
	return t.Type == Transfer
}

// SignedAmount returns the contribution of this transaction to its account's
// balance: positive for INCOME and incoming transfer legs, negative for EXPENSE
// and outgoing transfer legs.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case Income:
		return t.Amount
	case Expense:
		return t.Amount.Neg()
	case Transfer:
		if t.Direction == TransferOut {
			return t.Amount.Neg()
		}
		return t.Amount
	}
	return decimal.Zero
}

// TransferPair is the result of a transfer operation: two linked TRANSFER rows
// committed in the same atomic unit. It is not a stored entity of its own.
type TransferPair struct {
	Outgoing Transaction `json:"outgoing"`
	Incoming Transaction `json:"incoming"`
}
