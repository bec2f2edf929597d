// Bookstore API Client Example
//
// This is a minimal example of how to talk to the Bookstore API: register
// an account, log in, add a book and search the catalog.
//
// Usage:
//   export BOOKSTORE_URL="http://localhost:8080"
//   go run main.go

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

type book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
}

type bookList struct {
	Data       []book `json:"data"`
	Pagination struct {
		Page         int `json:"page"`
		TotalMatches int `json:"totalMatches"`
	} `json:"pagination"`
}

func main() {
	baseURL := os.Getenv("BOOKSTORE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &http.Client{Timeout: 10 * time.Second}

	// Register a throwaway account. A unique email avoids conflicts when
	// the example is run repeatedly against the same data directory.
	email := fmt.Sprintf("example-%d@bookstore.local", time.Now().Unix())
	auth := register(client, baseURL, email)
	log.Printf("✓ Registered %s (user %s)", auth.User.Email, auth.User.ID)

	// Add a book
	created := createBook(client, baseURL, auth.Token, book{
		Title:         "A Wizard of Earthsea",
		Author:        "Ursula K. Le Guin",
		Genre:         "Fantasy",
		PublishedYear: 1968,
	})
	log.Printf("✓ Created book %s: %s", created.ID, created.Title)

	// Search the catalog
	list := searchBooks(client, baseURL, auth.Token, "genre=Fantasy")
	log.Printf("✓ Search found %d fantasy books", list.Pagination.TotalMatches)
	for _, b := range list.Data {
		log.Printf("  %s by %s (%d)", b.Title, b.Author, b.PublishedYear)
	}
}

func register(client *http.Client, baseURL, email string) authResponse {
	payload, _ := json.Marshal(map[string]string{
		"username": fmt.Sprintf("example%d", time.Now().Unix()),
		"email":    email,
		"password": "example123",
	})

	resp, err := client.Post(baseURL+"/api/v1/auth/register", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("register: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("register: unexpected status %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		log.Fatalf("register: decode response: %v", err)
	}
	return auth
}

func createBook(client *http.Client, baseURL, token string, b book) book {
	payload, _ := json.Marshal(b)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/books", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("create book: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("create book: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("create book: unexpected status %d", resp.StatusCode)
	}

	var created book
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("create book: decode response: %v", err)
	}
	return created
}

func searchBooks(client *http.Client, baseURL, token, query string) bookList {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/books?"+query, nil)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("search: unexpected status %d", resp.StatusCode)
	}

	var list bookList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		log.Fatalf("search: decode response: %v", err)
	}
	return list
}
