package listview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the sentinel value disabling a categorical filter.
const FilterAll = "ALL"

const DefaultPageSize = 10

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter keeps an item iff the extracted field equals Value exactly.
// A Value of FilterAll (or empty) makes the filter a no-op.
type Filter[T any] struct {
	Value string
	Field func(T) string
}

// Query describes one list view state: free-text search over designated
// fields, categorical filters, a comparator and a page window.
type Query[T any] struct {
	Search       string
	SearchFields func(T) []string
	Filters      []Filter[T]
	Compare      func(a, b T) int
	Direction    Direction
	Page         int
	PageSize     int
}

type Page[T any] struct {
	Items         []T
	TotalFiltered int
	TotalPages    int
	Page          int
}

// Run applies search, filters, a stable sort and pagination, in that order.
// The requested page is clamped to the valid range, so an out-of-range page
// yields the nearest real page instead of an empty slice.
func Run[T any](items []T, q Query[T]) Page[T] {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && q.SearchFields != nil && !matchesSearch(q.SearchFields(item), term) {
			continue
		}
		if !matchesFilters(item, q.Filters) {
			continue
		}
		filtered = append(filtered, item)
	}

	if q.Compare != nil {
		compare := q.Compare
		if q.Direction == Desc {
			inner := compare
			compare = func(a, b T) int { return -inner(a, b) }
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return compare(filtered[i], filtered[j]) < 0
		})
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:         filtered[start:end],
		TotalFiltered: total,
		TotalPages:    totalPages,
		Page:          page,
	}
}

func matchesSearch(fields []string, term string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f.Value == "" || f.Value == FilterAll || f.Field == nil {
			continue
		}
		if f.Field(item) != f.Value {
			return false
		}
	}
	return true
}

var collator = collate.New(language.French, collate.IgnoreCase)

// CompareStrings orders strings with French collation, so accented names
// sort where a user expects them rather than by code point.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
