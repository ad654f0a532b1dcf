package repository

import (
	"strings"
	"time"

	"category_service/internal/domain"
	"category_service/pkg/collation"

	"github.com/sirupsen/logrus"
)

// CategoryInMemoryRepository is the process-local CategoryRepository.
type CategoryInMemoryRepository struct {
	*InMemoryRepository[*domain.Category]
}

var _ domain.CategoryRepository = (*CategoryInMemoryRepository)(nil)

func NewCategoryInMemoryRepository(logger *logrus.Logger) *CategoryInMemoryRepository {
	return &CategoryInMemoryRepository{
		InMemoryRepository: NewInMemoryRepository(CategorySearchConfig(), logger),
	}
}

// CategorySearchConfig matches the filter against the name ignoring case and
// orders by created_at, newest first, unless asked otherwise.
func CategorySearchConfig() SearchConfig[*domain.Category] {
	return SearchConfig[*domain.Category]{
		Matcher: categoryNameMatcher,
		SortFields: map[string]Comparator[*domain.Category]{
			"name":        ByText((*domain.Category).Name),
			"description": ByOptionalText((*domain.Category).Description),
			"is_active":   ByBool((*domain.Category).IsActive),
			"created_at":  ByTime(func(c *domain.Category) time.Time { return c.CreatedAt() }),
		},
		DefaultSort:    "created_at",
		DefaultSortDir: domain.SortDesc,
	}
}

func categoryNameMatcher(term string) func(*domain.Category) bool {
	needle := collation.Fold(term)
	return func(c *domain.Category) bool {
		return strings.Contains(collation.Fold(c.Name()), needle)
	}
}
