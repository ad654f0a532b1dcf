package usecase

import (
	"time"

	"category_service/internal/domain"
)

// CategoryOutput is the public representation of a Category.
type CategoryOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCategoryOutput(c *domain.Category) CategoryOutput {
	return CategoryOutput{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateCategoryInput struct {
	ID          string  `json:"-"`
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// SearchInput carries raw, untyped search values; they are normalized by
// domain.NewSearchParams.
type SearchInput struct {
	Page    any `json:"page"`
	PerPage any `json:"per_page"`
	Sort    any `json:"sort"`
	SortDir any `json:"sort_dir"`
	Filter  any `json:"filter"`
}

func (in SearchInput) toMap() map[string]any {
	return map[string]any{
		"page":     in.Page,
		"per_page": in.PerPage,
		"sort":     in.Sort,
		"sort_dir": in.SortDir,
		"filter":   in.Filter,
	}
}

type PaginationOutput struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
}

func toPaginationOutput[E any](r domain.SearchResult[E]) PaginationOutput {
	return PaginationOutput{
		Total:       r.Total,
		CurrentPage: r.CurrentPage,
		LastPage:    r.LastPage,
		PerPage:     r.PerPage,
	}
}

type ListCategoriesOutput struct {
	Items []CategoryOutput `json:"items"`
	PaginationOutput
}
