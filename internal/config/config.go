// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

// Package config collects process flags and environment settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/freroxx/residence-yasmina/internal/storage"
)

type Config struct {
	ServiceName    string
	Addr           string
	DB             string
	OTLPAddr       string
	LogLevel       slog.Level
	StaticDir      string
	RatesFile      string
	ReadOnly       bool
	BookingFormURL string

	JWTSecret        string
	TurnstileSecret  string
	TurnstileSiteKey string
	R2               storage.R2Config
	AdminUser        string
	AdminPassword    string
	CORSOrigins      []string
}

// Load parses args into a Config. Variables from the env file are added
// to the environment first; variables already set win.
func Load(fset *flag.FlagSet, args []string) (*Config, error) {
	var (
		cfg         Config
		logLevelArg string
		envFile     string
	)
	fset.StringVar(&cfg.ServiceName, "service-name", "residence-yasmina", "otel service name")
	fset.StringVar(&cfg.Addr, "addr", "0.0.0.0:8080", "default server address")
	fset.StringVar(&cfg.DB, "db", "kvdb://testdata/yasmina.db", "database connection string (kvdb://, jsondb://, postgres://)")
	fset.StringVar(&cfg.OTLPAddr, "otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
	fset.StringVar(&logLevelArg, "log-level", "INFO", "log level")
	fset.StringVar(&cfg.StaticDir, "static-dir", "", "path to static directory")
	fset.StringVar(&cfg.RatesFile, "rates", "", "path to a rate sheet replacing the built-in rates")
	fset.BoolVar(&cfg.ReadOnly, "read-only", false, "maintenance mode, reject every write outside the admin area")
	fset.StringVar(&cfg.BookingFormURL, "booking-form-url", "", "booking form url, defaults to the one stored with the residence")
	fset.StringVar(&envFile, "env-file", ".env", "optional file with environment variables")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelArg)); err != nil {
		return nil, fmt.Errorf("unable to parse log level %q: %w", logLevelArg, err)
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.TurnstileSecret = os.Getenv("TURNSTILE_SECRET_KEY")
	cfg.TurnstileSiteKey = os.Getenv("TURNSTILE_SITE_KEY")
	cfg.R2 = storage.R2Config{
		Endpoint:      os.Getenv("R2_ENDPOINT"),
		AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		SecretKey:     os.Getenv("R2_SECRET_KEY"),
		Bucket:        os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
	}
	cfg.AdminUser = getenv("YASMINA_ADMIN", "admin")
	cfg.AdminPassword = getenv("YASMINA_PASSWORD", "admin")
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))

	return &cfg, nil
}

// Validate reports settings the website cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET not set")
	}
	return nil
}

// LoadEnvFile loads path into the environment. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// NewLogger returns the json logger every binary writes to stdout.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
