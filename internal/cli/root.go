// Package cli implements the wedplan command line.
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedplan/internal/config"
	"github.com/mmynk/wedplan/internal/storage/sqlstore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// now is the clock used by commands that report relative dates.
var now = time.Now

// NewRootCommand creates the root command for the wedplan CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wedplan",
		Short: "wedplan - wedding planner",
		Long: `A self-hosted wedding planner: tasks, guests, budget scenarios, vendors,
timeline and notes behind a shared password.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewScenarioCommand(opts))
	cmd.AddCommand(NewSecretCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))

	return cmd
}

// openStore loads the configuration and opens the store it points at.
func openStore(opts *RootOptions) (*config.Config, *sqlstore.Store, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := openConfiguredStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func openConfiguredStore(cfg *config.Config) (*sqlstore.Store, error) {
	driver, dsn := cfg.DataSource()
	store, err := sqlstore.Open(driver, dsn, sqlstore.WithProjectDefaults(cfg.Project.Name, cfg.Project.Currency))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	return store, nil
}
