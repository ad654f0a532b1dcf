package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15

	SortAsc  = "asc"
	SortDesc = "desc"

	objectString = "[object Object]"
)

// SearchParams is the normalized form of a page/sort/filter request. Raw
// query input is never rejected: anything that can't be used falls back to a
// default. An empty Sort, SortDir or Filter means "not set".
type SearchParams struct {
	page    int
	perPage int
	sort    string
	sortDir string
	filter  string
}

// NewSearchParams normalizes the optional keys page, per_page, sort, sort_dir
// and filter of raw. A nil map yields the defaults.
func NewSearchParams(raw map[string]any) SearchParams {
	p := SearchParams{
		page:    positiveInt(raw["page"], DefaultPage),
		perPage: positiveInt(raw["per_page"], DefaultPerPage),
		sort:    stringify(raw["sort"]),
		filter:  stringify(raw["filter"]),
	}
	if p.sort != "" {
		p.sortDir = SortAsc
		if strings.ToLower(stringify(raw["sort_dir"])) == SortDesc {
			p.sortDir = SortDesc
		}
	}
	return p
}

func (p SearchParams) Page() int       { return p.page }
func (p SearchParams) PerPage() int    { return p.perPage }
func (p SearchParams) Sort() string    { return p.sort }
func (p SearchParams) SortDir() string { return p.sortDir }
func (p SearchParams) Filter() string  { return p.filter }

func (p SearchParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"page":     p.page,
		"per_page": p.perPage,
		"sort":     nullable(p.sort),
		"sort_dir": nullable(p.sortDir),
		"filter":   nullable(p.filter),
	})
}

// positiveInt coerces v to an integer >= 1 or returns def.
func positiveInt(v any, def int) int {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n.String()), 64)
		if err != nil {
			return def
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return def
	}
	return int(f)
}

// stringify renders v as text; nil and "" mean "not set".
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return formatFloat(s, 64)
	case float32:
		return formatFloat(float64(s), 32)
	case json.Number:
		return s.String()
	case fmt.Stringer:
		return s.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Map, reflect.Struct:
		return objectString
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// SearchResultProps holds the inputs of NewSearchResult.
type SearchResultProps[E any] struct {
	Items       []E
	Total       int
	CurrentPage int
	PerPage     int
	Sort        string
	SortDir     string
	Filter      string
}

// SearchResult is one page of a search together with its pagination summary.
type SearchResult[E any] struct {
	Items       []E
	Total       int
	CurrentPage int
	PerPage     int
	LastPage    int
	Sort        string
	SortDir     string
	Filter      string
}

func NewSearchResult[E any](props SearchResultProps[E]) SearchResult[E] {
	items := props.Items
	if items == nil {
		items = []E{}
	}
	return SearchResult[E]{
		Items:       items,
		Total:       props.Total,
		CurrentPage: props.CurrentPage,
		PerPage:     props.PerPage,
		LastPage:    LastPage(props.Total, props.PerPage),
		Sort:        props.Sort,
		SortDir:     props.SortDir,
		Filter:      props.Filter,
	}
}

// LastPage is ceil(total/perPage), never less than 1.
func LastPage(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	last := (total + perPage - 1) / perPage
	if last < 1 {
		return 1
	}
	return last
}

// Mapper is implemented by items that know their own flat representation.
type Mapper interface {
	ToMap() map[string]any
}

// ToMap flattens the result. With rawItems the items are returned as stored,
// otherwise every item implementing Mapper is replaced by its map.
func (r SearchResult[E]) ToMap(rawItems bool) map[string]any {
	var items any = r.Items
	if !rawItems {
		out := make([]any, len(r.Items))
		for i, it := range r.Items {
			if m, ok := any(it).(Mapper); ok {
				out[i] = m.ToMap()
			} else {
				out[i] = it
			}
		}
		items = out
	}
	return map[string]any{
		"items":        items,
		"total":        r.Total,
		"current_page": r.CurrentPage,
		"per_page":     r.PerPage,
		"last_page":    r.LastPage,
		"sort":         nullable(r.Sort),
		"sort_dir":     nullable(r.SortDir),
		"filter":       nullable(r.Filter),
	}
}

func (r SearchResult[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap(false))
}
