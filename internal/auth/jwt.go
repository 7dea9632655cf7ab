package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

const issuer = "wedplan"

// Claims carries a Session inside a JWT. iat is the login time; renewed_at
// is the last renewal.
type Claims struct {
	RenewedAt int64 `json:"renewed_at"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates session tokens.
type SessionManager struct {
	secretKey []byte
	policy    Policy
	now       func() time.Time
}

// NewSessionManager creates a manager signing with secretKey (HS256).
func NewSessionManager(secretKey string, policy Policy) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		policy:    policy,
		now:       time.Now,
	}
}

// WithClock replaces time.Now; used by tests.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// Policy returns the lifetime policy tokens are checked against.
func (m *SessionManager) Policy() Policy {
	return m.policy
}

// Now returns the manager's current time.
func (m *SessionManager) Now() time.Time {
	return m.now()
}

// Issue starts a new session and returns its token.
func (m *SessionManager) Issue() (string, Session, error) {
	s := NewSession(m.now())
	token, err := m.sign(s)
	return token, s, err
}

// Renew returns a token for s with RenewedAt moved to now. The session must
// still be valid.
func (m *SessionManager) Renew(s Session) (string, Session, error) {
	now := m.now()
	if err := s.Check(now, m.policy); err != nil {
		return "", Session{}, err
	}
	s = s.Renewed(now)
	token, err := m.sign(s)
	return token, s, err
}

func (m *SessionManager) sign(s Session) (string, error) {
	claims := &Claims{
		RenewedAt: s.RenewedAt.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.IssuedAt.Add(m.policy.MaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses the token and checks the session it carries.
func (m *SessionManager) Validate(tokenString string) (Session, error) {
	now := m.now()
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.IssuedAt == nil {
		return Session{}, ErrInvalidToken
	}

	s := Session{
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		RenewedAt: time.Unix(claims.RenewedAt, 0).UTC(),
	}
	if err := s.Check(now, m.policy); err != nil {
		return Session{}, err
	}
	return s, nil
}
