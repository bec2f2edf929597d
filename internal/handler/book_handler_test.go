package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type bookPayload struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	UserID        string `json:"userId"`
}

type bookListPayload struct {
	Data       []bookPayload `json:"data"`
	Pagination struct {
		Page            int  `json:"page"`
		PageSize        int  `json:"pageSize"`
		TotalMatches    int  `json:"totalMatches"`
		TotalPages      int  `json:"totalPages"`
		HasNextPage     bool `json:"hasNextPage"`
		HasPreviousPage bool `json:"hasPreviousPage"`
	} `json:"pagination"`
}

func (ts *testServer) createBook(t *testing.T, token, title, author, genre string, year int) bookPayload {
	t.Helper()

	rec := ts.do(t, "POST", "/api/v1/books/", token, map[string]any{
		"title":         title,
		"author":        author,
		"genre":         genre,
		"publishedYear": year,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %s: status = %d, body = %s", title, rec.Code, rec.Body.String())
	}

	var book bookPayload
	decodeJSON(t, rec, &book)
	return book
}

func TestCreateBook(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, userID := ts.register(t, "alice", "alice@example.com", "abc123")

	book := ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)

	if book.ID == "" {
		t.Error("expected generated ID")
	}
	if book.UserID != userID {
		t.Errorf("UserID = %s, want %s", book.UserID, userID)
	}
	if book.Title != "Dune" || book.PublishedYear != 1965 {
		t.Errorf("unexpected book: %+v", book)
	}
}

func TestCreateBook_RequiresAuth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/v1/books/", "", map[string]any{
		"title":         "Dune",
		"author":        "Frank Herbert",
		"genre":         "Science Fiction",
		"publishedYear": 1965,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCreateBook_Validation(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"author": "A", "genre": "G", "publishedYear": 2000}},
		{"future year", map[string]any{"title": "T", "author": "A", "genre": "G", "publishedYear": time.Now().Year() + 1}},
		{"year before 1000", map[string]any{"title": "T", "author": "A", "genre": "G", "publishedYear": 999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, "POST", "/api/v1/books/", token, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")
	book := ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)

	rec := ts.do(t, "GET", "/api/v1/books/"+book.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got bookPayload
	decodeJSON(t, rec, &got)
	if got.ID != book.ID || got.Title != "Dune" {
		t.Errorf("unexpected book: %+v", got)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	rec := ts.do(t, "GET", "/api/v1/books/no-such-id", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "BOOK_NOT_FOUND" {
		t.Errorf("code = %s, want BOOK_NOT_FOUND", code)
	}
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)
	ts.createBook(t, token, "Dune Messiah", "Frank Herbert", "Science Fiction", 1969)
	ts.createBook(t, token, "The Hobbit", "J. R. R. Tolkien", "Fantasy", 1937)

	rec := ts.do(t, "GET", "/api/v1/books/", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var list bookListPayload
	decodeJSON(t, rec, &list)

	if len(list.Data) != 3 {
		t.Errorf("got %d books, want 3", len(list.Data))
	}
	if list.Pagination.Page != 1 || list.Pagination.PageSize != 10 {
		t.Errorf("unexpected default pagination: %+v", list.Pagination)
	}
	if list.Pagination.TotalMatches != 3 || list.Pagination.TotalPages != 1 {
		t.Errorf("unexpected totals: %+v", list.Pagination)
	}
}

func TestListBooks_Filtering(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)
	ts.createBook(t, token, "Dune Messiah", "Frank Herbert", "Science Fiction", 1969)
	ts.createBook(t, token, "The Hobbit", "J. R. R. Tolkien", "Fantasy", 1937)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"genre exact other case", "genre=science+fiction", 2},
		{"genre partial no match", "genre=Science", 0},
		{"author substring", "author=tolkien", 1},
		{"title substring", "title=dune", 2},
		{"combined", "genre=Science+Fiction&title=messiah", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, "GET", "/api/v1/books/?"+tt.query, token, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var list bookListPayload
			decodeJSON(t, rec, &list)
			if len(list.Data) != tt.want {
				t.Errorf("got %d books, want %d", len(list.Data), tt.want)
			}
		})
	}
}

func TestListBooks_Pagination(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	for i := 0; i < 7; i++ {
		ts.createBook(t, token, fmt.Sprintf("Book %d", i), "Author", "Fiction", 2000)
	}

	rec := ts.do(t, "GET", "/api/v1/books/?page=2&limit=3", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var list bookListPayload
	decodeJSON(t, rec, &list)

	if len(list.Data) != 3 {
		t.Errorf("got %d books, want 3", len(list.Data))
	}
	if list.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", list.Pagination.TotalPages)
	}
	if !list.Pagination.HasNextPage || !list.Pagination.HasPreviousPage {
		t.Errorf("page 2 of 3 should have both neighbors: %+v", list.Pagination)
	}

	// Beyond the last page yields an empty list, not an error
	rec = ts.do(t, "GET", "/api/v1/books/?page=99&limit=3", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decodeJSON(t, rec, &list)
	if len(list.Data) != 0 {
		t.Errorf("page past the end should be empty, got %d", len(list.Data))
	}

	// Even an absurdly large page number stays an empty 200, never a 500
	rec = ts.do(t, "GET", "/api/v1/books/?page=1000000000000000000&limit=3", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	decodeJSON(t, rec, &list)
	if len(list.Data) != 0 {
		t.Errorf("huge page should be empty, got %d", len(list.Data))
	}
}

func TestListBooks_BadParams(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")

	for _, query := range []string{"page=0", "page=abc", "limit=0", "limit=-5", "limit=xyz"} {
		rec := ts.do(t, "GET", "/api/v1/books/?"+query, token, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
		}
	}
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")
	book := ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)

	rec := ts.do(t, "PATCH", "/api/v1/books/"+book.ID, token, map[string]any{
		"genre": "Classic",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got bookPayload
	decodeJSON(t, rec, &got)
	if got.Genre != "Classic" {
		t.Errorf("Genre = %s, want Classic", got.Genre)
	}
	if got.Title != "Dune" {
		t.Errorf("Title changed unexpectedly: %s", got.Title)
	}
}

func TestUpdateBook_NotOwner(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	aliceToken, _ := ts.register(t, "alice", "alice@example.com", "abc123")
	bobToken, _ := ts.register(t, "bob", "bob@example.com", "abc123")

	book := ts.createBook(t, aliceToken, "Dune", "Frank Herbert", "Science Fiction", 1965)

	rec := ts.do(t, "PATCH", "/api/v1/books/"+book.ID, bobToken, map[string]any{
		"title": "Hijacked",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if code := errorCode(t, rec); code != "FORBIDDEN" {
		t.Errorf("code = %s, want FORBIDDEN", code)
	}

	// The record stays as the owner wrote it
	rec = ts.do(t, "GET", "/api/v1/books/"+book.ID, aliceToken, nil)
	var got bookPayload
	decodeJSON(t, rec, &got)
	if got.Title != "Dune" {
		t.Errorf("book was modified by a non-owner: %s", got.Title)
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	token, _ := ts.register(t, "alice", "alice@example.com", "abc123")
	book := ts.createBook(t, token, "Dune", "Frank Herbert", "Science Fiction", 1965)

	rec := ts.do(t, "DELETE", "/api/v1/books/"+book.ID, token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = ts.do(t, "GET", "/api/v1/books/"+book.ID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", rec.Code)
	}
}

func TestDeleteBook_NotOwner(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	aliceToken, _ := ts.register(t, "alice", "alice@example.com", "abc123")
	bobToken, _ := ts.register(t, "bob", "bob@example.com", "abc123")

	book := ts.createBook(t, aliceToken, "Dune", "Frank Herbert", "Science Fiction", 1965)

	rec := ts.do(t, "DELETE", "/api/v1/books/"+book.ID, bobToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}

	rec = ts.do(t, "GET", "/api/v1/books/"+book.ID, aliceToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("book should survive a non-owner delete, status = %d", rec.Code)
	}
}
