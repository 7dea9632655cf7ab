package secrets

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetGetDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(TokenSecret, "s3cret"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := Get(TokenSecret)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "s3cret" {
		t.Errorf("Get() = %q, want %q", got, "s3cret")
	}

	if err := Delete(TokenSecret); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := Get(TokenSecret); err != ErrNotFound {
		t.Errorf("Get() after Delete error = %v, want %v", err, ErrNotFound)
	}
	if err := Delete(TokenSecret); err != ErrNotFound {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(PasswordHash, ""); err == nil {
		t.Error("Set() with an empty value should fail")
	}
}

func TestLookup(t *testing.T) {
	gokeyring.MockInit()

	if _, ok := Lookup(PasswordHash); ok {
		t.Error("Lookup() on an empty keyring should report missing")
	}
	if err := Set(PasswordHash, "hash"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, ok := Lookup(PasswordHash); !ok || v != "hash" {
		t.Errorf("Lookup() = %q, %v", v, ok)
	}
}

func TestUnavailable(t *testing.T) {
	gokeyring.MockInitWithError(gokeyring.ErrUnsupportedPlatform)

	if _, err := Get(TokenSecret); err == nil || err == ErrNotFound {
		t.Errorf("Get() error = %v, want an unavailable error", err)
	}
}
