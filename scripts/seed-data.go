// Command seed-data populates the JSON document stores with a demo user
// and a handful of books so a fresh checkout has data to browse.
//
// Usage:
//
//	go run ./scripts -data-dir data -email demo@bookstore.local -password demo123
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/auth"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/store"
)

type output struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	BookIDs  []string `json:"book_ids"`
}

type seedBook struct {
	title  string
	author string
	genre  string
	year   int
}

var sampleBooks = []seedBook{
	{"The Go Programming Language", "Alan A. A. Donovan", "Programming", 2015},
	{"Designing Data-Intensive Applications", "Martin Kleppmann", "Programming", 2017},
	{"The Name of the Wind", "Patrick Rothfuss", "Fantasy", 2007},
	{"Project Hail Mary", "Andy Weir", "Science Fiction", 2021},
	{"Pride and Prejudice", "Jane Austen", "Romance", 1813},
}

func main() {
	var (
		dataDir  = flag.String("data-dir", "data", "Directory holding users.json and books.json")
		username = flag.String("username", "demo", "Seed user name")
		email    = flag.String("email", "demo@bookstore.local", "Seed user email")
		password = flag.String("password", "demo1234", "Seed user password")
		format   = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := store.NewUserStore(*dataDir + "/users.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, "open users store:", err)
		os.Exit(1)
	}
	books, err := store.NewBookStore(*dataDir + "/books.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, "open books store:", err)
		os.Exit(1)
	}

	user, err := ensureUser(ctx, users, *username, *email, *password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed user:", err)
		os.Exit(1)
	}

	bookIDs := make([]string, 0, len(sampleBooks))
	for _, sb := range sampleBooks {
		now := time.Now().UTC()
		book := model.Book{
			ID:            ulid.Make().String(),
			Title:         sb.title,
			Author:        sb.author,
			Genre:         sb.genre,
			PublishedYear: sb.year,
			UserID:        user.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := books.Insert(ctx, &book); err != nil {
			fmt.Fprintln(os.Stderr, "seed book:", err)
			os.Exit(1)
		}
		bookIDs = append(bookIDs, book.ID)
	}

	out := output{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		BookIDs:  bookIDs,
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
		return
	}

	fmt.Printf("seeded user %s (%s) with %d books\n", out.Username, out.Email, len(out.BookIDs))
}

// ensureUser inserts the seed user, reusing an existing account when the
// email is already registered.
func ensureUser(ctx context.Context, users *store.UserStore, username, email, password string) (*model.User, error) {
	if existing, err := users.FindByEmail(ctx, email); err == nil {
		return existing, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           ulid.Make().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Insert(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
