package model

import "time"

// Book represents a book record owned by a user.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	PublishedYear int       `json:"publishedYear"`
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the book belongs to the given user.
// Mutations are permitted only for the owning user.
func (b *Book) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}
