package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelAccount converts a domain account to its database representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		UserID:    d.UserID,
		Name:      d.Name,
		Type:      models.AccountType(d.Type),
		Currency:  d.Currency,
		Balance:   d.Balance,
		Color:     d.Color,
		Icon:      d.Icon,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAccount converts a database account row to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      domain.AccountType(m.Type),
		Currency:  m.Currency,
		Balance:   m.Balance,
		Color:     m.Color,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of database rows to domain accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
