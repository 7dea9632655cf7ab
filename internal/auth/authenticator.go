package auth

// Authenticator checks the shared secret that gates the planner.
// The couple shares a single password; there are no user accounts.
type Authenticator interface {
	// Verify returns nil if password is correct and ErrInvalidCredentials
	// otherwise.
	Verify(password string) error
}
