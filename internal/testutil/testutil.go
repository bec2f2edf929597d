// Package testutil provides shared helpers for store and handler tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/auth"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/store"
)

// TestJWTSecret is the signing secret used across tests.
const TestJWTSecret = "test-secret-0123456789abcdef"

// NewUserStore creates a UserStore backed by a temp directory.
// The directory is removed when the test finishes.
func NewUserStore(t testing.TB) *store.UserStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.json")
	s, err := store.NewUserStore(path)
	if err != nil {
		t.Fatalf("create user store: %v", err)
	}
	return s
}

// NewBookStore creates a BookStore backed by a temp directory.
func NewBookStore(t testing.TB) *store.BookStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "books.json")
	s, err := store.NewBookStore(path)
	if err != nil {
		t.Fatalf("create book store: %v", err)
	}
	return s
}

// SeedUser inserts a user with the given email and a fixed password hash.
// The hash corresponds to no real password; use the auth package directly
// in tests that exercise login.
func SeedUser(t testing.TB, s *store.UserStore, username, email, passwordHash string) model.User {
	t.Helper()

	now := time.Now().UTC()
	user := model.User{
		ID:           ulid.Make().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Insert(context.Background(), &user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// SeedBook inserts a book owned by the given user.
func SeedBook(t testing.TB, s *store.BookStore, title, author, genre string, year int, ownerID string) model.Book {
	t.Helper()

	now := time.Now().UTC()
	book := model.Book{
		ID:            ulid.Make().String(),
		Title:         title,
		Author:        author,
		Genre:         genre,
		PublishedYear: year,
		UserID:        ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Insert(context.Background(), &book); err != nil {
		t.Fatalf("seed book %s: %v", title, err)
	}
	return book
}

// IssueToken returns a valid session token for the given user.
func IssueToken(t testing.TB, userID, email string) string {
	t.Helper()

	token, err := auth.NewTokenManager(TestJWTSecret).Issue(userID, email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
