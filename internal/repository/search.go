package repository

import (
	"cmp"
	"slices"
	"sort"
	"time"

	"category_service/internal/domain"
	"category_service/pkg/collation"
)

// Comparator orders two entities by a single field.
type Comparator[E any] func(a, b E) int

// Searcher holds the backend specific stages of a search. Pagination and the
// orchestration in RunSearch are shared by every implementation.
type Searcher[E any] interface {
	ApplyFilter(items []E, filter string) []E
	ApplySort(items []E, sort, sortDir string) []E
}

// SearchConfig is the per-entity strategy used by the in-memory repositories.
type SearchConfig[E any] struct {
	// Matcher builds the predicate for a filter term. It is called once per
	// filtered search and never for an empty filter.
	Matcher func(term string) func(E) bool
	// SortFields whitelists the fields a caller may order by.
	SortFields map[string]Comparator[E]
	// DefaultSort replaces an empty sort; DefaultSortDir is used with it when
	// no direction was requested.
	DefaultSort    string
	DefaultSortDir string
}

func (c SearchConfig[E]) SortableFields() []string {
	fields := make([]string, 0, len(c.SortFields))
	for f := range c.SortFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (c SearchConfig[E]) ApplyFilter(items []E, filter string) []E {
	if filter == "" || c.Matcher == nil {
		return items
	}
	match := c.Matcher(filter)
	out := make([]E, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ApplySort returns a stably sorted copy of items, or items itself when the
// field is not whitelisted.
func (c SearchConfig[E]) ApplySort(items []E, sortField, sortDir string) []E {
	if sortField == "" {
		sortField = c.DefaultSort
		if sortDir == "" {
			sortDir = c.DefaultSortDir
		}
	}
	compare, ok := c.SortFields[sortField]
	if sortField == "" || !ok {
		return items
	}

	sorted := slices.Clone(items)
	if sortDir == domain.SortDesc {
		slices.SortStableFunc(sorted, func(a, b E) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}

// ApplyPaginate returns the page-th window of perPage items. Pages past the
// end are empty.
func ApplyPaginate[E any](items []E, page, perPage int) []E {
	if page < 1 || perPage < 1 {
		return []E{}
	}
	offset := (page - 1) * perPage
	if offset >= len(items) {
		return []E{}
	}
	end := min(offset+perPage, len(items))
	return slices.Clone(items[offset:end])
}

// RunSearch filters, sorts and paginates items. Total counts the filtered
// items before pagination.
func RunSearch[E any](items []E, params domain.SearchParams, s Searcher[E]) domain.SearchResult[E] {
	filtered := s.ApplyFilter(items, params.Filter())
	sorted := s.ApplySort(filtered, params.Sort(), params.SortDir())
	page := ApplyPaginate(sorted, params.Page(), params.PerPage())

	return domain.NewSearchResult(domain.SearchResultProps[E]{
		Items:       page,
		Total:       len(filtered),
		CurrentPage: params.Page(),
		PerPage:     params.PerPage(),
		Sort:        params.Sort(),
		SortDir:     params.SortDir(),
		Filter:      params.Filter(),
	})
}

// CompareText orders text fields the way every backend orders names.
func CompareText(a, b string) int {
	return collation.Compare(a, b)
}

func ByText[E any](get func(E) string) Comparator[E] {
	return func(a, b E) int { return CompareText(get(a), get(b)) }
}

// ByOptionalText orders missing values first.
func ByOptionalText[E any](get func(E) *string) Comparator[E] {
	return func(a, b E) int {
		va, vb := get(a), get(b)
		switch {
		case va == nil && vb == nil:
			return 0
		case va == nil:
			return -1
		case vb == nil:
			return 1
		}
		return CompareText(*va, *vb)
	}
}

func ByBool[E any](get func(E) bool) Comparator[E] {
	return func(a, b E) int {
		va, vb := get(a), get(b)
		switch {
		case va == vb:
			return 0
		case !va:
			return -1
		}
		return 1
	}
}

func ByTime[E any](get func(E) time.Time) Comparator[E] {
	return func(a, b E) int { return get(a).Compare(get(b)) }
}

func ByOrdered[E any, T cmp.Ordered](get func(E) T) Comparator[E] {
	return func(a, b E) int { return cmp.Compare(get(a), get(b)) }
}
