// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"` // Stored hash, never exposed in API responses
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EmailEquals compares emails case-insensitively.
// Email uniqueness is enforced without regard to case.
func (u *User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// UsernameEquals compares usernames case-insensitively.
func (u *User) UsernameEquals(username string) bool {
	return strings.EqualFold(u.Username, username)
}
