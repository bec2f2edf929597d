package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/metrics"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/query"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/store"
)

// Book service errors.
var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotOwner     = errors.New("book belongs to another user")
)

// BookService handles book business logic.
type BookService struct {
	books   *store.BookStore
	metrics metrics.Recorder
}

// NewBookService creates a new BookService.
func NewBookService(books *store.BookStore, recorder metrics.Recorder) *BookService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BookService{
		books:   books,
		metrics: recorder,
	}
}

// CreateBookInput defines input for creating a book.
type CreateBookInput struct {
	Title         string
	Author        string
	Genre         string
	PublishedYear int
	OwnerID       string
}

// CreateBook creates a new book owned by the authenticated user.
func (s *BookService) CreateBook(ctx context.Context, input CreateBookInput) (*model.Book, error) {
	now := time.Now().UTC()
	book := &model.Book{
		ID:            ulid.Make().String(),
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		PublishedYear: input.PublishedYear,
		UserID:        input.OwnerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.books.Insert(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.metrics.IncBookCreated()

	return book, nil
}

// GetBook retrieves a book by ID.
func (s *BookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// ListBooksInput defines search and pagination parameters.
type ListBooksInput struct {
	Genre    string
	Author   string
	Title    string
	Page     int
	PageSize int
}

// ListBooks filters the collection and slices it into the requested page.
func (s *BookService) ListBooks(ctx context.Context, input ListBooksInput) (*query.Page, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSearchDuration(time.Since(start))
	}()

	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.FilterBooks(books, query.BookFilter{
		Genre:  input.Genre,
		Author: input.Author,
		Title:  input.Title,
	})

	page, err := query.Paginate(filtered, input.Page, input.PageSize)
	if err != nil {
		return nil, err
	}

	s.metrics.IncBookSearch()

	return page, nil
}

// UpdateBookInput defines input for updating a book.
// Nil fields are left unchanged.
type UpdateBookInput struct {
	ID            string
	CallerID      string
	Title         *string
	Author        *string
	Genre         *string
	PublishedYear *int
}

// UpdateBook applies a partial update after checking ownership.
// A non-owner gets ErrNotOwner and the record stays untouched.
func (s *BookService) UpdateBook(ctx context.Context, input UpdateBookInput) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if !book.IsOwnedBy(input.CallerID) {
		return nil, ErrNotOwner
	}

	updated, err := s.books.Update(ctx, input.ID, store.BookPatch{
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		PublishedYear: input.PublishedYear,
	})
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	s.metrics.IncBookUpdated()

	return updated, nil
}

// DeleteBook removes a book after checking ownership.
func (s *BookService) DeleteBook(ctx context.Context, id, callerID string) error {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if !book.IsOwnedBy(callerID) {
		return ErrNotOwner
	}

	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	s.metrics.IncBookDeleted()

	return nil
}
