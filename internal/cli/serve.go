package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/config"
	"github.com/mmynk/wedplan/internal/metrics"
	"github.com/mmynk/wedplan/internal/server"
	"github.com/mmynk/wedplan/pkg/logging"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr, static string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner API server",
		Long: `Serve the Connect API, the optional static frontend, /metrics and /healthz.

The shared password and the token signing secret come from the config file,
WEDPLAN_PASSWORD_HASH / WEDPLAN_TOKEN_SECRET or the OS keyring
(see "wedplan secret set").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, rootOpts, addr, static)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&static, "static", "", "static files directory (overrides server.static_dir)")

	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, addr, static string) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logCloser, err := logging.SetupWithOptions(logging.Options{Level: level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	driver, _ := cfg.DataSource()
	slog.Info("Opening storage", "driver", driver)
	store, err := openConfiguredStore(cfg)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", driver)

	if cfg.Auth.PasswordHash == "" {
		return errors.New("no password configured: run 'wedplan secret set password'")
	}
	if cfg.Auth.TokenSecret == "" {
		return errors.New("no token secret configured: run 'wedplan secret set token'")
	}

	verifier, err := auth.NewSecretVerifier(cfg.Auth.PasswordHash)
	if err != nil {
		return err
	}
	if !auth.IsBcryptHash(cfg.Auth.PasswordHash) {
		slog.Warn("Password is configured in plaintext; store a bcrypt hash instead")
	}

	policy := auth.Policy{
		MaxAge:      cfg.Auth.MaxAge,
		IdleTimeout: cfg.Auth.IdleTimeout,
		WarnBefore:  cfg.Auth.WarnBefore,
	}

	if addr == "" {
		addr = cfg.Server.Addr
	}
	if static == "" {
		static = cfg.Server.StaticDir
	}

	srv, err := server.New(server.Deps{
		Store:            store,
		Authenticator:    verifier,
		Sessions:         auth.NewSessionManager(cfg.Auth.TokenSecret, policy),
		Metrics:          metrics.New(),
		Logger:           slog.Default(),
		StaticDir:        static,
		DashboardTimeout: cfg.Server.DashboardTimeout,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx, addr, cfg.Server.ShutdownTimeout)
}
