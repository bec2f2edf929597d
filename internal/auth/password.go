// Package auth provides password hashing and bearer token utilities.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed cost factor for stored hashes.
// There is no upgrade path: hashes created at this cost stay at this cost.
const bcryptCost = bcrypt.DefaultCost

// HashPassword creates a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// dummyHash is a throwaway bcrypt hash at the standard cost. Comparing
// against it burns the same work as a real verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// VerifyDummyPassword compares the password against a throwaway hash and
// discards the result. Callers use it on the unknown-account path so a miss
// costs the same as a wrong password.
func VerifyDummyPassword(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}

// VerifyPassword checks whether the password matches the stored hash.
// A mismatch returns (false, nil); malformed hashes return an error.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}
