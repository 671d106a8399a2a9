package dto

import (
	"time"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for ledger dates: calendar dates with no
// time-of-day semantics.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to create a single-sided
// (INCOME or EXPENSE) transaction. Transfers go through CreateTransferRequest.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	CategoryID  *string                `json:"categoryID"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the fields allowed to change on a
// transaction. Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	AccountID   *string                 `json:"accountID"`
	CategoryID  *string                 `json:"categoryID"`
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	Date        *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	DateFrom   string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	CategoryID string `form:"categoryID"`
	Type       string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	AccountID  string `form:"accountID"`
	Limit      int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string                 `json:"transactionID"`
	AccountID            string                 `json:"accountID"`
	CategoryID           *string                `json:"categoryID,omitempty"`
	Type                 domain.TransactionType `json:"type"`
	Amount               decimal.Decimal        `json:"amount"`
	Description          string                 `json:"description,omitempty"`
	Date                 string                 `json:"date"`
	RelatedTransactionID *string                `json:"relatedTransactionID,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		AccountID:            txn.AccountID,
		CategoryID:           txn.CategoryID,
		Type:                 txn.Type,
		Amount:               txn.Amount,
		Description:          txn.Description,
		Date:                 txn.Date.Format(DateLayout),
		RelatedTransactionID: txn.RelatedTransactionID,
		CreatedAt:            txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions to responses.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
