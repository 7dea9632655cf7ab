package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/middleware"
	"github.com/mmynk/wedplan/internal/rpc"
)

func setupAuthServer(t *testing.T, now *time.Time) rpc.AuthServiceClient {
	t.Helper()

	verifier, err := auth.NewSecretVerifier("correct horse")
	if err != nil {
		t.Fatalf("NewSecretVerifier failed: %v", err)
	}
	sessions := auth.NewSessionManager("test-secret", auth.DefaultPolicy).WithClock(func() time.Time { return *now })

	interceptors := connect.WithInterceptors(middleware.RequireSession(sessions, rpc.AuthServiceLoginProcedure))
	mux := http.NewServeMux()
	mux.Handle(rpc.NewAuthServiceHandler(NewAuthService(verifier, sessions, nil), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return rpc.NewAuthServiceClient(http.DefaultClient, server.URL)
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestLogin(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	client := setupAuthServer(t, &now)
	ctx := context.Background()

	_, err := client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{Password: "wrong"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	resp, err := client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{Password: "correct horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Fatal("expected a token")
	}
	info := resp.Msg.Session
	if !info.ExpiresAt.Equal(now.Add(auth.DefaultPolicy.MaxAge)) {
		t.Errorf("expiresAt: expected %v, got %v", now.Add(auth.DefaultPolicy.MaxAge), info.ExpiresAt)
	}
	if info.RemainingSeconds != int64(auth.DefaultPolicy.IdleTimeout.Seconds()) {
		t.Errorf("remaining: expected %v, got %d", auth.DefaultPolicy.IdleTimeout.Seconds(), info.RemainingSeconds)
	}
	if info.Warn {
		t.Error("fresh session should not warn")
	}
}

func TestRenewExtendsIdleWindow(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	client := setupAuthServer(t, &now)
	ctx := context.Background()

	_, err := client.GetSession(ctx, connect.NewRequest(&rpc.GetSessionRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	login, err := client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{Password: "correct horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	first := login.Msg.Token

	now = now.Add(14*time.Minute + 30*time.Second)
	got, err := client.GetSession(ctx, withToken(&rpc.GetSessionRequest{}, first))
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !got.Msg.Session.Warn {
		t.Error("expected a warning 30s before the idle timeout")
	}

	renewed, err := client.Renew(ctx, withToken(&rpc.RenewRequest{}, first))
	if err != nil {
		t.Fatalf("Renew failed: %v", err)
	}
	if !renewed.Msg.Session.RenewedAt.Equal(now) {
		t.Errorf("renewedAt: expected %v, got %v", now, renewed.Msg.Session.RenewedAt)
	}
	if !renewed.Msg.Session.IssuedAt.Equal(login.Msg.Session.IssuedAt) {
		t.Error("renewal must not move the issue time")
	}

	now = now.Add(10 * time.Minute)
	_, err = client.GetSession(ctx, withToken(&rpc.GetSessionRequest{}, first))
	assertCode(t, err, connect.CodeUnauthenticated)

	if _, err := client.GetSession(ctx, withToken(&rpc.GetSessionRequest{}, renewed.Msg.Token)); err != nil {
		t.Fatalf("GetSession with renewed token failed: %v", err)
	}

	if _, err := client.Logout(ctx, withToken(&rpc.LogoutRequest{}, renewed.Msg.Token)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}
