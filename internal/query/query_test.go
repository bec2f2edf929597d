package query

import (
	"fmt"
	"testing"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
)

func makeBooks(n int) []model.Book {
	books := make([]model.Book, n)
	for i := range books {
		books[i] = model.Book{
			ID:    fmt.Sprintf("book-%03d", i),
			Title: fmt.Sprintf("Title %d", i),
		}
	}
	return books
}

func TestBookFilter_Matches(t *testing.T) {
	t.Parallel()

	book := &model.Book{
		Title:  "The Left Hand of Darkness",
		Author: "Ursula K. Le Guin",
		Genre:  "Science Fiction",
	}

	tests := []struct {
		name   string
		filter BookFilter
		want   bool
	}{
		{"empty filter matches all", BookFilter{}, true},
		{"genre exact", BookFilter{Genre: "Science Fiction"}, true},
		{"genre other case", BookFilter{Genre: "science fiction"}, true},
		{"genre substring does not match", BookFilter{Genre: "Science"}, false},
		{"genre different", BookFilter{Genre: "Fantasy"}, false},
		{"author substring", BookFilter{Author: "le guin"}, true},
		{"author miss", BookFilter{Author: "Herbert"}, false},
		{"title substring", BookFilter{Title: "left hand"}, true},
		{"title miss", BookFilter{Title: "right hand"}, false},
		{"all criteria AND", BookFilter{Genre: "science fiction", Author: "ursula", Title: "darkness"}, true},
		{"one criterion fails the AND", BookFilter{Genre: "science fiction", Author: "herbert"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(book); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterBooks_PreservesOrder(t *testing.T) {
	t.Parallel()

	books := []model.Book{
		{ID: "1", Genre: "Fantasy"},
		{ID: "2", Genre: "Drama"},
		{ID: "3", Genre: "fantasy"},
	}

	got := FilterBooks(books, BookFilter{Genre: "Fantasy"})

	if len(got) != 2 {
		t.Fatalf("got %d books, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("order not preserved: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestPaginate_Window(t *testing.T) {
	t.Parallel()

	books := makeBooks(25)

	page, err := Paginate(books, 2, 10)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	if len(page.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(page.Items))
	}
	if page.Items[0].ID != "book-010" {
		t.Errorf("first item = %s, want book-010", page.Items[0].ID)
	}
	if page.TotalMatches != 25 {
		t.Errorf("TotalMatches = %d, want 25", page.TotalMatches)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if !page.HasNextPage {
		t.Error("expected HasNextPage on page 2 of 3")
	}
	if !page.HasPreviousPage {
		t.Error("expected HasPreviousPage on page 2")
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	t.Parallel()

	page, err := Paginate(makeBooks(25), 3, 10)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	if len(page.Items) != 5 {
		t.Errorf("got %d items, want 5", len(page.Items))
	}
	if page.HasNextPage {
		t.Error("last page should not have a next page")
	}
	if !page.HasPreviousPage {
		t.Error("page 3 should have a previous page")
	}
}

func TestPaginate_BeyondEnd(t *testing.T) {
	t.Parallel()

	page, err := Paginate(makeBooks(5), 10, 10)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("page past the end should be empty, got %d items", len(page.Items))
	}
	if page.HasNextPage {
		t.Error("page past the end should not have a next page")
	}
	if !page.HasPreviousPage {
		t.Error("page 10 should report a previous page")
	}
}

func TestPaginate_HugePageNumber(t *testing.T) {
	t.Parallel()

	// (page-1)*pageSize would overflow int64 here; the window math must not
	// be reached for a page past the end.
	for _, page := range []int{1 << 60, int(^uint(0) >> 1)} {
		got, err := Paginate(makeBooks(5), page, 10)
		if err != nil {
			t.Fatalf("Paginate(page=%d) failed: %v", page, err)
		}

		if len(got.Items) != 0 {
			t.Errorf("page %d should be empty, got %d items", page, len(got.Items))
		}
		if got.HasNextPage {
			t.Errorf("page %d should not have a next page", page)
		}
		if !got.HasPreviousPage {
			t.Errorf("page %d should report a previous page", page)
		}
		if got.TotalMatches != 5 || got.TotalPages != 1 {
			t.Errorf("page %d: TotalMatches = %d, TotalPages = %d, want 5 and 1",
				page, got.TotalMatches, got.TotalPages)
		}
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	t.Parallel()

	page, err := Paginate(nil, 1, 10)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("expected empty page, got %d items", len(page.Items))
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", page.TotalPages)
	}
	if page.HasNextPage || page.HasPreviousPage {
		t.Error("empty first page should have neither neighbor")
	}
}

func TestPaginate_InvalidParams(t *testing.T) {
	t.Parallel()

	if _, err := Paginate(makeBooks(3), 0, 10); err == nil {
		t.Error("expected error for page 0")
	}
	if _, err := Paginate(makeBooks(3), -1, 10); err == nil {
		t.Error("expected error for negative page")
	}
	if _, err := Paginate(makeBooks(3), 1, 0); err == nil {
		t.Error("expected error for pageSize 0")
	}
}

func TestPaginate_CopiesItems(t *testing.T) {
	t.Parallel()

	books := makeBooks(3)

	page, err := Paginate(books, 1, 10)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	page.Items[0].Title = "mutated"
	if books[0].Title == "mutated" {
		t.Error("mutating the page should not affect the source slice")
	}
}
