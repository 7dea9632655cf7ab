package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/storage/sqlstore"
)

func newTestServer(t *testing.T, staticDir string) *Server {
	t.Helper()

	store, err := sqlstore.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	verifier, err := auth.NewSecretVerifier("letmein")
	require.NoError(t, err)

	srv, err := New(Deps{
		Store:         store,
		Authenticator: verifier,
		Sessions:      auth.NewSessionManager("test-secret", auth.DefaultPolicy),
		StaticDir:     staticDir,
	})
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestEndToEnd(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, "").Handler())
	defer ts.Close()
	ctx := context.Background()

	authClient := rpc.NewAuthServiceClient(http.DefaultClient, ts.URL)
	scenarios := rpc.NewScenarioServiceClient(http.DefaultClient, ts.URL)
	dashboard := rpc.NewDashboardServiceClient(http.DefaultClient, ts.URL)

	_, err := scenarios.ListScenarios(ctx, connect.NewRequest(&rpc.ListScenariosRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	login, err := authClient.Login(ctx, connect.NewRequest(&rpc.LoginRequest{Password: "letmein"}))
	require.NoError(t, err)
	bearer := "Bearer " + login.Msg.Token

	create := connect.NewRequest(&rpc.CreateScenarioRequest{Scenario: models.BudgetScenario{Name: "Base", IsActive: true}})
	create.Header().Set("Authorization", bearer)
	_, err = scenarios.CreateScenario(ctx, create)
	require.NoError(t, err)

	dash := connect.NewRequest(&rpc.GetDashboardRequest{})
	dash.Header().Set("Authorization", bearer)
	resp, err := dashboard.GetDashboard(ctx, dash)
	require.NoError(t, err)
	require.NotNil(t, resp.Msg.Stats.Project)
	assert.Equal(t, models.ProjectID, resp.Msg.Stats.Project.ID)

	code, body := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "wedplan_rpc_requests_total")
	assert.Contains(t, body, "wedplan_scenario_activations_total 1")
}

func TestHealthAndCORS(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, "").Handler())
	defer ts.Close()

	code, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+rpcPrefix+"TaskService/ListTasks", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")

	code, _ = get(t, ts.URL+"/index.html")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>planner</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	ts := httptest.NewServer(newTestServer(t, dir).Handler())
	defer ts.Close()

	_, body := get(t, ts.URL+"/")
	assert.Equal(t, "<h1>planner</h1>", body)

	_, body = get(t, ts.URL+"/app.js")
	assert.Equal(t, "console.log(1)", body)

	_, body = get(t, ts.URL+"/guests")
	assert.Equal(t, "<h1>planner</h1>", body, "unknown paths fall back to index.html")

	code, _ := get(t, ts.URL+rpcPrefix+"Unknown/Method")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, "")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, time.Second) }()

	code, _ := get(t, "http://"+ln.Addr().String()+"/healthz")
	assert.Equal(t, http.StatusOK, code)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
