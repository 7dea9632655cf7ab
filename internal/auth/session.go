package auth

import (
	"errors"
	"time"
)

var (
	ErrSessionExpired = errors.New("session expired")
	ErrSessionIdle    = errors.New("session expired due to inactivity")
)

// Policy bounds the lifetime of a session.
type Policy struct {
	// MaxAge is the absolute lifetime counted from login.
	MaxAge time.Duration
	// IdleTimeout is how long a session survives without a renewal.
	IdleTimeout time.Duration
	// WarnBefore is the window before idle expiry in which clients should
	// prompt the user to stay signed in.
	WarnBefore time.Duration
}

// DefaultPolicy is 30 days absolute, 15 minutes idle, warning in the last
// minute.
var DefaultPolicy = Policy{
	MaxAge:      30 * 24 * time.Hour,
	IdleTimeout: 15 * time.Minute,
	WarnBefore:  time.Minute,
}

// Session records when the user logged in and when the session was last
// renewed.
type Session struct {
	IssuedAt  time.Time `json:"issuedAt"`
	RenewedAt time.Time `json:"renewedAt"`
}

// NewSession starts a session at now.
func NewSession(now time.Time) Session {
	now = now.UTC().Truncate(time.Second)
	return Session{IssuedAt: now, RenewedAt: now}
}

// Check returns nil if the session is still valid at now.
func (s Session) Check(now time.Time, p Policy) error {
	if now.Sub(s.IssuedAt) > p.MaxAge {
		return ErrSessionExpired
	}
	if now.Sub(s.RenewedAt) > p.IdleTimeout {
		return ErrSessionIdle
	}
	return nil
}

// Renewed returns the session with RenewedAt moved to now.
func (s Session) Renewed(now time.Time) Session {
	s.RenewedAt = now.UTC().Truncate(time.Second)
	return s
}

// Remaining is the idle time left, bounded by the absolute expiry. Never
// negative.
func (s Session) Remaining(now time.Time, p Policy) time.Duration {
	idle := s.RenewedAt.Add(p.IdleTimeout).Sub(now)
	abs := s.IssuedAt.Add(p.MaxAge).Sub(now)
	r := min(idle, abs)
	if r < 0 {
		return 0
	}
	return r
}

// NeedsWarning reports whether the session is valid but about to expire.
func (s Session) NeedsWarning(now time.Time, p Policy) bool {
	r := s.Remaining(now, p)
	return r > 0 && r <= p.WarnBefore
}
