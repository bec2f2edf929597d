package dto

import (
	"time"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/query"
)

// CreateBookRequest represents the request body for creating a book.
type CreateBookRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Author        string `json:"author" validate:"required,min=1,max=100"`
	Genre         string `json:"genre" validate:"required,min=1,max=50"`
	PublishedYear int    `json:"publishedYear" validate:"required,published_year"`
}

// UpdateBookRequest represents the request body for updating a book.
// Absent fields are left unchanged.
type UpdateBookRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Author        *string `json:"author,omitempty" validate:"omitempty,min=1,max=100"`
	Genre         *string `json:"genre,omitempty" validate:"omitempty,min=1,max=50"`
	PublishedYear *int    `json:"publishedYear,omitempty" validate:"omitempty,published_year"`
}

// BookResponse represents a book in API responses.
type BookResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	PublishedYear int       `json:"publishedYear"`
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookListResponse represents a page of books.
type BookListResponse struct {
	Data       []BookResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// Pagination provides page-window information for list responses.
type Pagination struct {
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalMatches    int  `json:"totalMatches"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ToBookResponse converts a Book model to BookResponse DTO.
func ToBookResponse(book *model.Book) BookResponse {
	return BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		Genre:         book.Genre,
		PublishedYear: book.PublishedYear,
		UserID:        book.UserID,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}

// ToBookListResponse converts a query page to a BookListResponse.
func ToBookListResponse(page *query.Page) BookListResponse {
	books := make([]BookResponse, len(page.Items))
	for i := range page.Items {
		books[i] = ToBookResponse(&page.Items[i])
	}
	return BookListResponse{
		Data: books,
		Pagination: Pagination{
			Page:            page.Page,
			PageSize:        page.PageSize,
			TotalMatches:    page.TotalMatches,
			TotalPages:      page.TotalPages,
			HasNextPage:     page.HasNextPage,
			HasPreviousPage: page.HasPreviousPage,
		},
	}
}
