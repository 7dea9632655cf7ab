// Package secrets keeps the planner's secrets in the OS keyring.
package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service is the keyring service name all entries are stored under.
const Service = "wedplan"

// Keys of the stored secrets.
const (
	PasswordHash = "password_hash"
	TokenSecret  = "token_secret"
)

var (
	// ErrNotFound is returned when the keyring holds no value for a key.
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be used.
	ErrUnavailable = errors.New("OS keyring is not available")
)

// Get returns the secret stored under key.
func Get(key string) (string, error) {
	v, err := keyring.Get(Service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v, nil
}

// Set stores value under key.
func Set(key, value string) error {
	if value == "" {
		return fmt.Errorf("secret %s cannot be empty", key)
	}
	if err := keyring.Set(Service, key, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func Delete(key string) error {
	if err := keyring.Delete(Service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
	}
	return nil
}

// Lookup is Get without the distinction between a missing key and an
// unavailable keyring; ok is false in both cases.
func Lookup(key string) (value string, ok bool) {
	v, err := Get(key)
	if err != nil {
		return "", false
	}
	return v, true
}
