package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// CategorySvcFacade exposes category listing, creation and the default set
// seeded at registration.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error)
	SeedDefaultCategories(ctx context.Context, userID string) error
}
