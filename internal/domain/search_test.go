package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamsPage(t *testing.T) {
	cases := []struct {
		page any
		want int
	}{
		{nil, 1},
		{"", 1},
		{"fake", 1},
		{0, 1},
		{-1, 1},
		{5.5, 1},
		{true, 1},
		{false, 1},
		{map[string]any{}, 1},
		{[]any{}, 1},
		{"2.5", 1},
		{"-3", 1},
		{1, 1},
		{4, 4},
		{4.0, 4},
		{"4", 4},
		{" 7 ", 7},
		{json.Number("3"), 3},
		{int64(9), 9},
	}
	for _, tc := range cases {
		got := NewSearchParams(map[string]any{"page": tc.page}).Page()
		assert.Equal(t, tc.want, got, "page=%#v", tc.page)
	}
}

func TestSearchParamsPerPage(t *testing.T) {
	cases := []struct {
		perPage any
		want    int
	}{
		{nil, 15},
		{"", 15},
		{"fake", 15},
		{0, 15},
		{-1, 15},
		{5.5, 15},
		{true, 15},
		{false, 15},
		{map[string]any{}, 15},
		{1, 1},
		{4, 4},
		{"10", 10},
	}
	for _, tc := range cases {
		got := NewSearchParams(map[string]any{"per_page": tc.perPage}).PerPage()
		assert.Equal(t, tc.want, got, "per_page=%#v", tc.perPage)
	}
}

func TestSearchParamsDefaults(t *testing.T) {
	p := NewSearchParams(nil)
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 15, p.PerPage())
	assert.Empty(t, p.Sort())
	assert.Empty(t, p.SortDir())
	assert.Empty(t, p.Filter())
}

func TestSearchParamsSortAndFilterStringify(t *testing.T) {
	cases := []struct {
		raw  any
		want string
	}{
		{nil, ""},
		{"", ""},
		{0, "0"},
		{-1, "-1"},
		{5.5, "5.5"},
		{true, "true"},
		{false, "false"},
		{map[string]any{}, "[object Object]"},
		{"field", "field"},
	}
	for _, tc := range cases {
		p := NewSearchParams(map[string]any{"sort": tc.raw, "filter": tc.raw})
		assert.Equal(t, tc.want, p.Sort(), "sort=%#v", tc.raw)
		assert.Equal(t, tc.want, p.Filter(), "filter=%#v", tc.raw)
	}
}

func TestSearchParamsSortDir(t *testing.T) {
	for _, sort := range []any{nil, ""} {
		p := NewSearchParams(map[string]any{"sort": sort, "sort_dir": "desc"})
		assert.Empty(t, p.SortDir(), "sort=%#v", sort)
	}

	cases := []struct {
		dir  any
		want string
	}{
		{nil, "asc"},
		{"", "asc"},
		{0, "asc"},
		{-1, "asc"},
		{5.5, "asc"},
		{true, "asc"},
		{false, "asc"},
		{map[string]any{}, "asc"},
		{"desc", "desc"},
		{"DESC", "desc"},
		{"DeSc", "desc"},
		{"asc", "asc"},
		{"ASC", "asc"},
		{[]any{"DESC"}, "desc"},
		{dirName("Desc"), "desc"},
		{ptrTo("desc"), "desc"},
	}
	for _, tc := range cases {
		p := NewSearchParams(map[string]any{"sort": "field", "sort_dir": tc.dir})
		assert.Equal(t, tc.want, p.SortDir(), "sort_dir=%#v", tc.dir)
	}
}

func TestSearchParamsJSON(t *testing.T) {
	b, err := json.Marshal(NewSearchParams(map[string]any{"page": 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":2,"per_page":15,"sort":null,"sort_dir":null,"filter":null}`, string(b))
}

func TestLastPage(t *testing.T) {
	cases := []struct {
		total, perPage, want int
	}{
		{0, 15, 1},
		{4, 15, 1},
		{4, 2, 2},
		{5, 2, 3},
		{101, 20, 6},
		{100, 20, 5},
		{1, 1, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LastPage(tc.total, tc.perPage), "total=%d per_page=%d", tc.total, tc.perPage)
	}
}

type stubItem struct{ name string }

func (s stubItem) ToMap() map[string]any { return map[string]any{"name": s.name} }

func TestSearchResultToMap(t *testing.T) {
	result := NewSearchResult(SearchResultProps[stubItem]{
		Items:       []stubItem{{"entity1"}, {"entity2"}},
		Total:       4,
		CurrentPage: 1,
		PerPage:     2,
	})

	assert.Equal(t, map[string]any{
		"items":        []stubItem{{"entity1"}, {"entity2"}},
		"total":        4,
		"current_page": 1,
		"per_page":     2,
		"last_page":    2,
		"sort":         nil,
		"sort_dir":     nil,
		"filter":       nil,
	}, result.ToMap(true))

	result = NewSearchResult(SearchResultProps[stubItem]{
		Items:       []stubItem{{"entity1"}, {"entity2"}},
		Total:       4,
		CurrentPage: 1,
		PerPage:     2,
		Sort:        "name",
		SortDir:     "asc",
		Filter:      "test",
	})
	m := result.ToMap(false)
	assert.Equal(t, []any{
		map[string]any{"name": "entity1"},
		map[string]any{"name": "entity2"},
	}, m["items"])
	assert.Equal(t, "name", m["sort"])
	assert.Equal(t, "asc", m["sort_dir"])
	assert.Equal(t, "test", m["filter"])
}

func TestSearchResultLastPageWhenPerPageExceedsTotal(t *testing.T) {
	result := NewSearchResult(SearchResultProps[stubItem]{Total: 4, CurrentPage: 1, PerPage: 15})
	assert.Equal(t, 1, result.LastPage)
	assert.NotNil(t, result.Items)

	result = NewSearchResult(SearchResultProps[stubItem]{Total: 101, CurrentPage: 2, PerPage: 20})
	assert.Equal(t, 6, result.LastPage)
}

type dirName string

func (d dirName) String() string { return string(d) }

func ptrTo[T any](v T) *T { return &v }
