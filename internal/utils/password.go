package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [VerifyPassword] when the plaintext does
// not match the stored hash. Callers translate it to an authorization
// failure; it must never be confused with an internal hashing error.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword produces a salted, irreversible bcrypt digest of plaintext.
// The per-call random salt is embedded in the output, so two hashes of the
// same input differ.
//
// cost is the bcrypt work factor; zero or below the library minimum selects
// bcrypt.DefaultCost.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword recomputes the digest of plaintext and compares it with
// hash in constant time.
//
// Returns nil on match, [ErrPasswordMismatch] on mismatch (including a
// structurally invalid hash), so callers never need to inspect bcrypt
// internals.
func VerifyPassword(plaintext, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return ErrPasswordMismatch
	}

	return nil
}
