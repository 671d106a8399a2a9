package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

type defaultCategory struct {
	name  string
	icon  string
	color string
}

var defaultExpenseCategories = []defaultCategory{
	{"Food", "restaurant", "#FF6B6B"},
	{"Transport", "directions-car", "#4ECDC4"},
	{"Shopping", "shopping-bag", "#45B7D1"},
	{"Bills", "receipt", "#96CEB4"},
	{"Health", "local-hospital", "#FFEAA7"},
	{"Entertainment", "movie", "#DDA0DD"},
	{"Education", "school", "#98D8C8"},
	{"Other", "more-horiz", "#B0BEC5"},
}

var defaultIncomeCategories = []defaultCategory{
	{"Salary", "work", "#2ECC71"},
	{"Freelance", "laptop", "#3498DB"},
	{"Gift", "card-giftcard", "#E74C3C"},
	{"Investment", "trending-up", "#9B59B6"},
	{"Other", "more-horiz", "#B0BEC5"},
}

type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Type:       req.Type,
		Icon:       req.Icon,
		Color:      req.Color,
		IsDefault:  false,
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID, categoryType)
}

// SeedDefaultCategories creates the standard category set for a new user.
func (s *categoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	categories := make([]domain.Category, 0, len(defaultExpenseCategories)+len(defaultIncomeCategories))
	for _, dc := range defaultExpenseCategories {
		categories = append(categories, newDefaultCategory(userID, dc, domain.CategoryExpense))
	}
	for _, dc := range defaultIncomeCategories {
		categories = append(categories, newDefaultCategory(userID, dc, domain.CategoryIncome))
	}
	return s.categoryRepo.SaveCategories(ctx, categories)
}

func newDefaultCategory(userID string, dc defaultCategory, catType domain.CategoryType) domain.Category {
	return domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       dc.name,
		Type:       catType,
		Icon:       dc.icon,
		Color:      dc.color,
		IsDefault:  true,
	}
}
