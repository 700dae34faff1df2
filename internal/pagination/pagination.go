// Package pagination computes the page envelope shared by every list endpoint.
package pagination

import "math"

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Page is the pagination block of a list response.
type Page struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
	Offset      int  `json:"-"`
}

// Normalize clamps page to >= 1 and pageSize to [1, MaxPageSize].
// A pageSize below 1 falls back to DefaultPageSize. page is capped so the
// offset (page-1)*pageSize fits in an int.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

// Paginate clamps the request and derives the page metadata for totalCount rows.
func Paginate(totalCount, page, pageSize int) Page {
	page, pageSize = Normalize(page, pageSize)
	return build(totalCount, page, pageSize)
}

// Limit describes a "first n rows" response: page fixed at 1, size n, no upper clamp.
func Limit(totalCount, n int) Page {
	if totalCount > n {
		totalCount = n
	}
	return build(totalCount, 1, n)
}

func build(totalCount, page, pageSize int) Page {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return Page{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
		Offset:      (page - 1) * pageSize,
	}
}
