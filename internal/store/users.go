package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/model"
)

// Common errors for user store operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
)

// usersDocument is the on-disk shape of the users collection.
type usersDocument struct {
	Users []model.User `json:"users"`
}

// UserStore owns the users document. Every operation re-reads the document
// from disk; every mutation rewrites it in full. The mutex serializes
// read-modify-write cycles so concurrent mutations cannot lose updates or
// slip duplicate unique fields past the write-time check.
type UserStore struct {
	path string
	mu   sync.Mutex
}

// NewUserStore creates a UserStore backed by the given document file.
func NewUserStore(path string) (*UserStore, error) {
	if err := ensureDataDir(path); err != nil {
		return nil, err
	}
	return &UserStore{path: path}, nil
}

// load reads the users document, creating an empty one if the file is
// missing or unreadable. Call with the mutex held.
func (s *UserStore) load() (*usersDocument, error) {
	doc := &usersDocument{}
	if err := readDocument(s.path, doc); err != nil {
		if !isMissing(err) {
			return nil, err
		}
		doc.Users = []model.User{}
		if err := writeDocument(s.path, doc); err != nil {
			return nil, err
		}
	}
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	return doc, nil
}

// Insert appends a new user and persists the document.
// Username and email uniqueness is checked case-insensitively inside the
// critical section.
func (s *UserStore) Insert(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].EmailEquals(user.Email) {
			return ErrEmailExists
		}
		if doc.Users[i].UsernameEquals(user.Username) {
			return ErrUsernameExists
		}
	}

	doc.Users = append(doc.Users, *user)
	if err := writeDocument(s.path, doc); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by ID.
func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == id {
			user := doc.Users[i]
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

// FindByEmail retrieves a user by email, case-insensitively.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].EmailEquals(email) {
			user := doc.Users[i]
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

// UserPatch describes a partial user update. Nil fields are left unchanged;
// presence is explicit rather than inferred from zero values.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// Update merges patch fields into the stored user, refreshes UpdatedAt and
// persists the document. Uniqueness of a changed username or email is
// re-checked against every other record.
func (s *UserStore) Update(ctx context.Context, id string, patch UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	if patch.Email != nil {
		for i := range doc.Users {
			if i != idx && doc.Users[i].EmailEquals(*patch.Email) {
				return nil, ErrEmailExists
			}
		}
		doc.Users[idx].Email = *patch.Email
	}

	if patch.Username != nil {
		for i := range doc.Users {
			if i != idx && doc.Users[i].UsernameEquals(*patch.Username) {
				return nil, ErrUsernameExists
			}
		}
		doc.Users[idx].Username = *patch.Username
	}

	if patch.PasswordHash != nil {
		doc.Users[idx].PasswordHash = *patch.PasswordHash
	}

	doc.Users[idx].UpdatedAt = time.Now().UTC()

	if err := writeDocument(s.path, doc); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user := doc.Users[idx]
	return &user, nil
}

// Delete removes a user and persists the document.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == id {
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			if err := writeDocument(s.path, doc); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
			return nil
		}
	}

	return ErrUserNotFound
}

// Ping checks that the document location is accessible.
func (s *UserStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("users document inaccessible: %w", err)
	}
	return nil
}
