// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/auth"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/metrics"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/store"
)

// Service errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService handles registration, login and profile management.
type UserService struct {
	users   *store.UserStore
	tokens  *auth.TokenManager
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(users *store.UserStore, tokens *auth.TokenManager, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user.
// Field-level validation has already happened at the boundary.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new account and issues a session token.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			return nil, "", ErrEmailTaken
		case errors.Is(err, store.ErrUsernameExists):
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, token, nil
}

// Login verifies credentials and issues a session token.
// A wrong email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a hash comparison so an unknown email takes as long as a
			// wrong password.
			auth.VerifyDummyPassword(password)
			s.metrics.IncLoginFailure()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailure()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return user, token, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput defines input for updating a profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	ID       string
	Username *string
	Email    *string
	Password *string
}

// UpdateProfile applies a partial update to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error) {
	patch := store.UserPatch{
		Username: input.Username,
		Email:    input.Email,
	}

	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, input.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, store.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, store.ErrUsernameExists):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user record. Books owned by the user are left in
// place; their userId keeps pointing at the removed account.
func (s *UserService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
