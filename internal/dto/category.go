package dto

import (
	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon  string              `json:"icon"`
	Color string              `json:"color"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type *domain.CategoryType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Icon       string              `json:"icon,omitempty"`
	Color      string              `json:"color,omitempty"`
	IsDefault  bool                `json:"isDefault"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: cat.CategoryID,
		Name:       cat.Name,
		Type:       cat.Type,
		Icon:       cat.Icon,
		Color:      cat.Color,
		IsDefault:  cat.IsDefault,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to responses.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
