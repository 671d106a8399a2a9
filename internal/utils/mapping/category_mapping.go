package mapping

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/models"
)

// ToModelCategory converts a domain category to its database representation.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		UserID:     d.UserID,
		Name:       d.Name,
		Type:       models.CategoryType(d.Type),
		Icon:       d.Icon,
		Color:      d.Color,
		IsDefault:  d.IsDefault,
	}
}

// ToDomainCategory converts a database category row to the domain type.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		Name:       m.Name,
		Type:       domain.CategoryType(m.Type),
		Icon:       m.Icon,
		Color:      m.Color,
		IsDefault:  m.IsDefault,
	}
}

// ToDomainCategorySlice converts a slice of database rows to domain categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
