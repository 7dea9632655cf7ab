// Package config loads the planner configuration.
//
// Sources, lowest precedence first:
//
//	built-in defaults
//	YAML file (optional)
//	.env file (variables already in the environment win)
//	environment variables (WEDPLAN_*, plus DB_PATH, STATIC_PATH and LOG_LEVEL)
//	OS keyring, only for secrets still empty after the above
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/secrets"
)

// Database drivers understood by the store.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	Project ProjectConfig `yaml:"project"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// StaticDir is served on every non-RPC path when set.
	StaticDir        string        `yaml:"static_dir"`
	DashboardTimeout time.Duration `yaml:"dashboard_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

type DBConfig struct {
	Driver string `yaml:"driver"`
	// Path is the SQLite database file.
	Path string `yaml:"path"`
	// DSN is the PostgreSQL connection string.
	DSN string `yaml:"dsn"`
}

type AuthConfig struct {
	// PasswordHash is the bcrypt hash of the shared password. A plaintext
	// value is accepted and hashed at startup.
	PasswordHash string        `yaml:"password_hash"`
	TokenSecret  string        `yaml:"token_secret"`
	MaxAge       time.Duration `yaml:"max_age"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	WarnBefore   time.Duration `yaml:"warn_before"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File, when set, also receives JSON records through a rotating writer.
	File string `yaml:"file"`
}

// ProjectConfig holds the values a new project starts with.
type ProjectConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:             ":8080",
			DashboardTimeout: 15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
		DB: DBConfig{
			Driver: DriverSQLite,
			Path:   "./data/wedplan.db",
		},
		Auth: AuthConfig{
			MaxAge:      30 * 24 * time.Hour,
			IdleTimeout: 15 * time.Minute,
			WarnBefore:  time.Minute,
		},
		Log: LogConfig{Level: "info"},
		Project: ProjectConfig{
			Name:     models.DefaultProjectName,
			Currency: models.DefaultCurrency,
		},
	}
}

// Loader reads configuration from its sources. The zero value reads no
// .env file and skips the keyring.
type Loader struct {
	// EnvFile is the dotenv file to read; missing files are ignored.
	EnvFile string
	// LookupEnv reads a process environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// LookupSecret reads a secret from the keyring.
	LookupSecret func(key string) (string, bool)
}

// Load reads path (may be empty) with the default sources: ".env" in the
// working directory, the process environment and the OS keyring.
func Load(path string) (*Config, error) {
	l := Loader{
		EnvFile:      ".env",
		LookupEnv:    os.LookupEnv,
		LookupSecret: secrets.Lookup,
	}
	return l.Load(path)
}

func (l Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, err
		}
	}

	env, err := l.environment()
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}

	if l.LookupSecret != nil {
		if cfg.Auth.PasswordHash == "" {
			cfg.Auth.PasswordHash, _ = l.LookupSecret(secrets.PasswordHash)
		}
		if cfg.Auth.TokenSecret == "" {
			cfg.Auth.TokenSecret, _ = l.LookupSecret(secrets.TokenSecret)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// environment returns a lookup over the process environment backed by the
// .env file. The dotenv values never touch the process environment.
func (l Loader) environment() (func(string) (string, bool), error) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var dotenv map[string]string
	if l.EnvFile != "" {
		m, err := godotenv.Read(l.EnvFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read %s: %w", l.EnvFile, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v, ok := env(k); ok && v != "" {
				*dst = v
				return
			}
		}
	}
	dur := func(dst *time.Duration, key string) error {
		v, ok := env(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str(&cfg.Server.Addr, "WEDPLAN_ADDR")
	str(&cfg.Server.StaticDir, "WEDPLAN_STATIC_DIR", "STATIC_PATH")
	str(&cfg.DB.Driver, "WEDPLAN_DB_DRIVER")
	str(&cfg.DB.Path, "WEDPLAN_DB_PATH", "DB_PATH")
	str(&cfg.DB.DSN, "WEDPLAN_DB_DSN")
	str(&cfg.Auth.PasswordHash, "WEDPLAN_PASSWORD_HASH")
	str(&cfg.Auth.TokenSecret, "WEDPLAN_TOKEN_SECRET")
	str(&cfg.Log.Level, "WEDPLAN_LOG_LEVEL", "LOG_LEVEL")
	str(&cfg.Log.File, "WEDPLAN_LOG_FILE")
	str(&cfg.Project.Name, "WEDPLAN_PROJECT_NAME")
	str(&cfg.Project.Currency, "WEDPLAN_CURRENCY")

	return errors.Join(
		dur(&cfg.Server.DashboardTimeout, "WEDPLAN_DASHBOARD_TIMEOUT"),
		dur(&cfg.Auth.IdleTimeout, "WEDPLAN_IDLE_TIMEOUT"),
		dur(&cfg.Auth.MaxAge, "WEDPLAN_SESSION_MAX_AGE"),
		dur(&cfg.Auth.WarnBefore, "WEDPLAN_WARN_BEFORE"),
	)
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("db.path is required for sqlite")
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			return errors.New("db.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unknown db.driver %q", c.DB.Driver)
	}
	if c.Auth.IdleTimeout <= 0 || c.Auth.MaxAge <= 0 {
		return errors.New("auth.idle_timeout and auth.max_age must be positive")
	}
	if c.Auth.IdleTimeout > c.Auth.MaxAge {
		return errors.New("auth.idle_timeout cannot exceed auth.max_age")
	}
	if c.Auth.WarnBefore < 0 || c.Auth.WarnBefore >= c.Auth.IdleTimeout {
		return errors.New("auth.warn_before must be non-negative and shorter than auth.idle_timeout")
	}
	if len(c.Project.Currency) != 3 {
		return fmt.Errorf("project.currency must be a 3-letter code, got %q", c.Project.Currency)
	}
	return nil
}

// DataSource returns the driver and DSN to open the store with.
func (c *Config) DataSource() (driver, dsn string) {
	if c.DB.Driver == DriverPostgres {
		return DriverPostgres, c.DB.DSN
	}
	return DriverSQLite, c.DB.Path
}
