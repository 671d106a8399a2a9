package repositories

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// CategoryRepository persists transaction categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	SaveCategories(ctx context.Context, categories []domain.Category) error
	FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error)
}
