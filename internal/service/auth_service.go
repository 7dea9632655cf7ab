package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/middleware"
	"github.com/mmynk/wedplan/internal/rpc"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	sessions      *auth.SessionManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, sessions *auth.SessionManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
	}
}

func (s *AuthService) sessionInfo(session auth.Session) rpc.SessionInfo {
	now := s.sessions.Now()
	p := s.sessions.Policy()
	return rpc.SessionInfo{
		IssuedAt:         session.IssuedAt,
		RenewedAt:        session.RenewedAt,
		ExpiresAt:        session.IssuedAt.Add(p.MaxAge),
		IdleExpiresAt:    session.RenewedAt.Add(p.IdleTimeout),
		RemainingSeconds: int64(session.Remaining(now, p).Seconds()),
		Warn:             session.NeedsWarning(now, p),
	}
}

// Login checks the shared password and starts a session.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[rpc.LoginRequest]) (*connect.Response[rpc.LoginResponse], error) {
	s.logger.Info("Login request")

	if req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("password is required"))
	}

	if err := s.authenticator.Verify(req.Msg.Password); err != nil {
		s.logger.Warn("Login failed", "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, session, err := s.sessions.Issue()
	if err != nil {
		s.logger.Error("Failed to issue token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Logged in", "issued_at", session.IssuedAt)
	return connect.NewResponse(&rpc.LoginResponse{
		Token:   token,
		Session: s.sessionInfo(session),
	}), nil
}

// Renew extends the idle window of the caller's session. The absolute
// expiry does not move.
func (s *AuthService) Renew(ctx context.Context, req *connect.Request[rpc.RenewRequest]) (*connect.Response[rpc.RenewResponse], error) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	token, renewed, err := s.sessions.Renew(session)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) || errors.Is(err, auth.ErrSessionIdle) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		s.logger.Error("Failed to renew token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.RenewResponse{
		Token:   token,
		Session: s.sessionInfo(renewed),
	}), nil
}

// Logout is a no-op; tokens are stateless and the client discards its copy.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[rpc.LogoutRequest]) (*connect.Response[rpc.LogoutResponse], error) {
	s.logger.Info("Logout request")
	return connect.NewResponse(&rpc.LogoutResponse{}), nil
}

// GetSession reports the caller's session and how long it has left.
func (s *AuthService) GetSession(ctx context.Context, req *connect.Request[rpc.GetSessionRequest]) (*connect.Response[rpc.GetSessionResponse], error) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return connect.NewResponse(&rpc.GetSessionResponse{Session: s.sessionInfo(session)}), nil
}
