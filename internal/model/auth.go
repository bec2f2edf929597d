package model

// AuthContext holds authenticated request context.
// This is injected into the request context by the auth middleware.
type AuthContext struct {
	UserID string
	Email  string
}
