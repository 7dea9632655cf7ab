// Package server wires the planner's Connect services into an HTTP server.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/metrics"
	"github.com/mmynk/wedplan/internal/middleware"
	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/service"
	"github.com/mmynk/wedplan/internal/storage"
)

// rpcPrefix starts the path of every Connect procedure.
const rpcPrefix = "/wedplan.v1."

// Deps holds everything the server needs.
type Deps struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	Sessions      *auth.SessionManager
	Metrics       *metrics.Metrics
	Logger        *slog.Logger

	// StaticDir is served on non-RPC paths when set.
	StaticDir        string
	DashboardTimeout time.Duration
}

// Server serves the planner API.
type Server struct {
	deps    Deps
	handler http.Handler
}

// New builds the handler tree. Metrics and Logger may be nil.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(deps.Metrics),
		middleware.LoggingInterceptor(deps.Logger),
		middleware.RequireSession(deps.Sessions, rpc.AuthServiceLoginProcedure),
	)

	// Register Connect services
	mux.Handle(rpc.NewAuthServiceHandler(service.NewAuthService(deps.Authenticator, deps.Sessions, deps.Logger), interceptors))
	mux.Handle(rpc.NewProjectServiceHandler(service.NewProjectService(deps.Store), interceptors))
	mux.Handle(rpc.NewTaskServiceHandler(service.NewTaskService(deps.Store), interceptors))
	mux.Handle(rpc.NewGuestServiceHandler(service.NewGuestService(deps.Store), interceptors))
	mux.Handle(rpc.NewExpenseServiceHandler(service.NewExpenseService(deps.Store), interceptors))
	mux.Handle(rpc.NewScenarioServiceHandler(service.NewScenarioService(deps.Store, deps.Metrics), interceptors))
	mux.Handle(rpc.NewVendorServiceHandler(service.NewVendorService(deps.Store), interceptors))
	mux.Handle(rpc.NewTimelineServiceHandler(service.NewTimelineService(deps.Store), interceptors))
	mux.Handle(rpc.NewNoteServiceHandler(service.NewNoteService(deps.Store), interceptors))
	mux.Handle(rpc.NewDashboardServiceHandler(
		service.NewDashboardService(deps.Store, deps.DashboardTimeout, deps.Metrics), interceptors))

	mux.Handle("/metrics", deps.Metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	static, err := staticHandler(deps.StaticDir)
	if err != nil {
		return nil, err
	}
	mux.Handle("/", static)

	return &Server{
		deps:    deps,
		handler: loggingMiddleware(deps.Logger, corsMiddleware(mux)),
	}, nil
}

// Handler returns the HTTP/1.1 handler, without h2c.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr until ctx is done, then shuts down gracefully,
// waiting at most shutdownTimeout for in-flight requests.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Handler:           h2c.NewHandler(s.handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("Connect server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.deps.Logger.Info("Shutting down server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// staticHandler serves files from dir, falling back to index.html for
// unknown paths. With no dir every non-RPC path is a 404.
func staticHandler(dir string) (http.Handler, error) {
	if dir == "" {
		return http.NotFoundHandler(), nil
	}

	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, rpcPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}), nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
