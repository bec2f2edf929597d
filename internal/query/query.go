// Package query filters a book list by predicate fields and slices it into
// a page. Matching is linear; there are no indexes.
package query

import (
	"strings"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/validation"
)

// BookFilter describes optional search criteria. Empty fields are no-ops;
// set fields compose with logical AND.
type BookFilter struct {
	// Genre matches exactly, case-insensitively.
	Genre string
	// Author matches as a case-insensitive substring.
	Author string
	// Title matches as a case-insensitive substring.
	Title string
}

// Matches reports whether the book satisfies every set criterion.
func (f BookFilter) Matches(b *model.Book) bool {
	if f.Genre != "" && !strings.EqualFold(b.Genre, f.Genre) {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Title)) {
		return false
	}
	return true
}

// FilterBooks returns the books matching the filter, preserving order.
func FilterBooks(books []model.Book, f BookFilter) []model.Book {
	matched := make([]model.Book, 0, len(books))
	for i := range books {
		if f.Matches(&books[i]) {
			matched = append(matched, books[i])
		}
	}
	return matched
}

// Page is one window over a filtered sequence.
type Page struct {
	Items           []model.Book
	Page            int
	PageSize        int
	TotalMatches    int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Paginate slices the sequence into the window
// [(page-1)*pageSize, (page-1)*pageSize+pageSize). Both page and pageSize
// must be positive; a page past the end yields an empty slice, not an error.
func Paginate(books []model.Book, page, pageSize int) (*Page, error) {
	if page < 1 {
		return nil, validation.NewError("page", "must be a positive integer")
	}
	if pageSize < 1 {
		return nil, validation.NewError("limit", "must be a positive integer")
	}

	total := len(books)
	totalPages := (total + pageSize - 1) / pageSize

	// Compare before multiplying: (page-1)*pageSize can overflow for huge
	// page values, and a page past the last one is always an empty window.
	if page > totalPages {
		return &Page{
			Items:           []model.Book{},
			Page:            page,
			PageSize:        pageSize,
			TotalMatches:    total,
			TotalPages:      totalPages,
			HasNextPage:     false,
			HasPreviousPage: page > 1,
		}, nil
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]model.Book, end-start)
	copy(items, books[start:end])

	return &Page{
		Items:           items,
		Page:            page,
		PageSize:        pageSize,
		TotalMatches:    total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}
