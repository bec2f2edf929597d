package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
)

// ErrBookNotFound indicates no book exists with the given ID.
var ErrBookNotFound = errors.New("book not found")

// booksDocument is the on-disk shape of the books collection.
type booksDocument struct {
	Books []model.Book `json:"books"`
}

// BookStore owns the books document. Like UserStore, it re-reads the whole
// document per operation and serializes mutations with a mutex.
type BookStore struct {
	path string
	mu   sync.Mutex
}

// NewBookStore creates a BookStore backed by the given document file.
func NewBookStore(path string) (*BookStore, error) {
	if err := ensureDataDir(path); err != nil {
		return nil, err
	}
	return &BookStore{path: path}, nil
}

func (s *BookStore) load() (*booksDocument, error) {
	doc := &booksDocument{}
	if err := readDocument(s.path, doc); err != nil {
		if !isMissing(err) {
			return nil, err
		}
		doc.Books = []model.Book{}
		if err := writeDocument(s.path, doc); err != nil {
			return nil, err
		}
	}
	if doc.Books == nil {
		doc.Books = []model.Book{}
	}
	return doc, nil
}

// Insert appends a new book and persists the document.
func (s *BookStore) Insert(ctx context.Context, book *model.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Books = append(doc.Books, *book)
	if err := writeDocument(s.path, doc); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

// FindByID retrieves a book by ID.
func (s *BookStore) FindByID(ctx context.Context, id string) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Books {
		if doc.Books[i].ID == id {
			book := doc.Books[i]
			return &book, nil
		}
	}

	return nil, ErrBookNotFound
}

// FindAll returns every book in insertion order.
// Filtering and pagination happen above the store.
func (s *BookStore) FindAll(ctx context.Context) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, len(doc.Books))
	copy(books, doc.Books)
	return books, nil
}

// BookPatch describes a partial book update. Nil fields are left unchanged.
type BookPatch struct {
	Title         *string
	Author        *string
	Genre         *string
	PublishedYear *int
}

// Update merges patch fields into the stored book, refreshes UpdatedAt and
// persists the document.
func (s *BookStore) Update(ctx context.Context, id string, patch BookPatch) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range doc.Books {
		if doc.Books[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrBookNotFound
	}

	if patch.Title != nil {
		doc.Books[idx].Title = *patch.Title
	}
	if patch.Author != nil {
		doc.Books[idx].Author = *patch.Author
	}
	if patch.Genre != nil {
		doc.Books[idx].Genre = *patch.Genre
	}
	if patch.PublishedYear != nil {
		doc.Books[idx].PublishedYear = *patch.PublishedYear
	}

	doc.Books[idx].UpdatedAt = time.Now().UTC()

	if err := writeDocument(s.path, doc); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	book := doc.Books[idx]
	return &book, nil
}

// Delete removes a book and persists the document.
func (s *BookStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Books {
		if doc.Books[i].ID == id {
			doc.Books = append(doc.Books[:i], doc.Books[i+1:]...)
			if err := writeDocument(s.path, doc); err != nil {
				return fmt.Errorf("failed to delete book: %w", err)
			}
			return nil
		}
	}

	return ErrBookNotFound
}

// Ping checks that the document location is accessible.
func (s *BookStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("books document inaccessible: %w", err)
	}
	return nil
}
