package dto

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to move money between two of
// the user's accounts.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransferResponse returns both committed legs of a transfer.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}

// ToTransferResponse converts a domain.TransferPair to TransferResponse.
func ToTransferResponse(pair *domain.TransferPair) TransferResponse {
	return TransferResponse{
		Outgoing: ToTransactionResponse(&pair.Outgoing),
		Incoming: ToTransactionResponse(&pair.Incoming),
	}
}
