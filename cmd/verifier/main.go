// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/freroxx/residence-yasmina/internal/captcha"
	"github.com/freroxx/residence-yasmina/internal/config"
	"github.com/freroxx/residence-yasmina/internal/verifier"
)

func main() {
	var (
		addr        = flag.String("addr", "0.0.0.0:8081", "default server address")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
		envFile     = flag.String("env-file", ".env", "optional file with environment variables")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	logger := config.NewLogger(logLevel)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	logger.Info("log level set to", "log level", *logLevelArg)

	if err := config.LoadEnvFile(*envFile); err != nil {
		logger.Error("unable to load env file", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := config.SetupOTLP(ctx, *otlpAddr)
	if err != nil {
		logger.Error("unable to set up tracing", "error", err)
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	turnstile := captcha.NewTurnstile(os.Getenv("TURNSTILE_SECRET_KEY"))
	if turnstile == nil {
		logger.Warn("TURNSTILE_SECRET_KEY not set, every verification fails")
	}

	if err := verifier.NewVerifier(logger, *addr, turnstile).ListenAndServe(ctx); err != nil {
		logger.Error("failed to run server", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
