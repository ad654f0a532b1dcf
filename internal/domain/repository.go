package domain

import "context"

// Repository is the CRUD contract shared by every storage backend.
type Repository[E any] interface {
	Insert(ctx context.Context, entity E) error
	FindByID(ctx context.Context, id string) (E, error)
	FindAll(ctx context.Context) ([]E, error)
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id string) error
}

// SearchableRepository adds paginated search on top of Repository.
type SearchableRepository[E any] interface {
	Repository[E]
	SortableFields() []string
	Search(ctx context.Context, params SearchParams) (SearchResult[E], error)
}

type CategoryRepository interface {
	SearchableRepository[*Category]
}

type CategorySearchResult = SearchResult[*Category]
