package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrNoSecret           = errors.New("no password configured")
)

// SecretVerifier implements Authenticator against one bcrypt hash.
type SecretVerifier struct {
	hash []byte
}

// Ensure SecretVerifier implements Authenticator
var _ Authenticator = (*SecretVerifier)(nil)

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

// HashPassword hashes a plaintext password with the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoSecret
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// NewSecretVerifier accepts either a bcrypt hash or a plaintext password,
// which is hashed on the spot.
func NewSecretVerifier(secret string) (*SecretVerifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	if IsBcryptHash(secret) {
		return &SecretVerifier{hash: []byte(secret)}, nil
	}

	hashed, err := HashPassword(secret)
	if err != nil {
		return nil, err
	}
	return &SecretVerifier{hash: []byte(hashed)}, nil
}

// Verify compares password with the stored hash.
func (v *SecretVerifier) Verify(password string) error {
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
