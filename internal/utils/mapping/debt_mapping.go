package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelDebt converts a domain debt to its database representation.
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:      d.DebtID,
		UserID:      d.UserID,
		Type:        string(d.Type),
		PersonName:  d.PersonName,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Description: d.Description,
		Status:      string(d.Status),
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainDebt converts a database debt row to the domain type.
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:      m.DebtID,
		UserID:      m.UserID,
		Type:        domain.DebtType(m.Type),
		PersonName:  m.PersonName,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		Status:      domain.DebtStatus(m.Status),
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainDebtSlice converts a slice of database rows to domain debts.
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
