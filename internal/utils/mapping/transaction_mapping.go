package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelTransaction converts a domain transaction to its database representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		UserID:               d.UserID,
		AccountID:            d.AccountID,
		CategoryID:           d.CategoryID,
		Type:                 models.TransactionType(d.Type),
		Amount:               d.Amount,
		Description:          d.Description,
		Date:                 d.Date,
		RelatedTransactionID: d.RelatedTransactionID,
		Direction:            string(d.Direction),
		CreatedAt:            d.CreatedAt,
	}
}

// ToDomainTransaction converts a database transaction row to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		UserID:               m.UserID,
		AccountID:            m.AccountID,
		CategoryID:           m.CategoryID,
		Type:                 domain.TransactionType(m.Type),
		Amount:               m.Amount,
		Description:          m.Description,
		Date:                 m.Date,
		RelatedTransactionID: m.RelatedTransactionID,
		Direction:            domain.TransferDirection(m.Direction),
		CreatedAt:            m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of database rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
