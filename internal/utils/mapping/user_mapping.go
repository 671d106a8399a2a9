package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelUser converts a domain user to its database representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		FullName:       d.FullName,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a database user row to the domain type.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		FullName:       m.FullName,
		CreatedAt:      m.CreatedAt,
	}
}
