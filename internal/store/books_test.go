package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
)

func newTestBookStore(t *testing.T) *BookStore {
	t.Helper()

	s, err := NewBookStore(filepath.Join(t.TempDir(), "books.json"))
	if err != nil {
		t.Fatalf("NewBookStore failed: %v", err)
	}
	return s
}

func testBook(id, title, owner string) *model.Book {
	now := time.Now().UTC()
	return &model.Book{
		ID:            id,
		Title:         title,
		Author:        "Test Author",
		Genre:         "Fiction",
		PublishedYear: 1999,
		UserID:        owner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestBookStore_InsertAndFind(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, testBook("b1", "Dune", "u1")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := s.FindByID(ctx, "b1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Title != "Dune" || got.UserID != "u1" {
		t.Errorf("unexpected book: %+v", got)
	}
}

func TestBookStore_FindMissing(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)

	if _, err := s.FindByID(context.Background(), "nope"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookStore_FindAll(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)
	ctx := context.Background()

	all, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll on empty store failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty slice, got %d books", len(all))
	}

	for i, id := range []string{"b1", "b2", "b3"} {
		if err := s.Insert(ctx, testBook(id, "Title", "u1")); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
	}

	all, err = s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d books, want 3", len(all))
	}
	// Insertion order is preserved
	if all[0].ID != "b1" || all[2].ID != "b3" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestBookStore_Update(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)
	ctx := context.Background()

	original := testBook("b1", "Dune", "u1")
	if err := s.Insert(ctx, original); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	newTitle := "Dune Messiah"
	newYear := 1969
	updated, err := s.Update(ctx, "b1", BookPatch{Title: &newTitle, PublishedYear: &newYear})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Dune Messiah" {
		t.Errorf("Title = %s, want Dune Messiah", updated.Title)
	}
	if updated.PublishedYear != 1969 {
		t.Errorf("PublishedYear = %d, want 1969", updated.PublishedYear)
	}
	// Unset fields stay untouched
	if updated.Author != original.Author {
		t.Errorf("Author changed unexpectedly: %s", updated.Author)
	}
	if updated.Genre != original.Genre {
		t.Errorf("Genre changed unexpectedly: %s", updated.Genre)
	}
	if updated.UserID != "u1" {
		t.Errorf("UserID changed unexpectedly: %s", updated.UserID)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Error("UpdatedAt should advance on update")
	}
}

func TestBookStore_UpdateMissing(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)

	title := "Ghost"
	_, err := s.Update(context.Background(), "nope", BookPatch{Title: &title})
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, testBook("b1", "Dune", "u1")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := s.Delete(ctx, "b1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.FindByID(ctx, "b1"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected book gone, got %v", err)
	}

	if err := s.Delete(ctx, "b1"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound on double delete, got %v", err)
	}
}

func TestBookStore_CorruptDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte(`{"books": [}`), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewBookStore(path)
	if err != nil {
		t.Fatalf("NewBookStore failed: %v", err)
	}

	if _, err := s.FindAll(context.Background()); !errors.Is(err, ErrCorruptedDocument) {
		t.Errorf("expected ErrCorruptedDocument, got %v", err)
	}
}

func TestBookStore_FindAllReturnsCopy(t *testing.T) {
	t.Parallel()

	s := newTestBookStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, testBook("b1", "Dune", "u1")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	all, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	all[0].Title = "mutated"

	again, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if again[0].Title != "Dune" {
		t.Error("mutating FindAll result should not affect the store")
	}
}
