// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freroxx/residence-yasmina/internal/auth"
	"github.com/freroxx/residence-yasmina/internal/captcha"
	"github.com/freroxx/residence-yasmina/internal/config"
	"github.com/freroxx/residence-yasmina/internal/pricing"
	"github.com/freroxx/residence-yasmina/internal/server"
	"github.com/freroxx/residence-yasmina/internal/storage"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.NewLogger(slog.LevelInfo).Error("unable to load configuration", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("start and listen", "address", cfg.Addr)
	logger.Info("otlp/gRPC", "address", cfg.OTLPAddr, "service", cfg.ServiceName)
	logger.Info("static-dir", "directory", cfg.StaticDir)

	shutdownTracing, err := config.SetupOTLP(ctx, cfg.OTLPAddr)
	if err != nil {
		logger.Error("unable to set up tracing", "error", err)
		os.Exit(1)
	}

	rates, err := pricing.DefaultRateTable()
	if cfg.RatesFile != "" {
		logger.Info("loading rate sheet", "path", cfg.RatesFile)
		rates, err = pricing.LoadRateFile(cfg.RatesFile)
	}
	if err != nil {
		logger.Error("invalid rate sheet", "error", err)
		os.Exit(1)
	}

	store, err := config.OpenStore(ctx, cfg.DB)
	if err != nil {
		logger.Error("could not open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens, err := auth.NewTokens(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		logger.Error("could not set up sessions", "error", err)
		os.Exit(1)
	}

	turnstile := captcha.NewTurnstile(cfg.TurnstileSecret)
	if turnstile == nil {
		logger.Warn("TURNSTILE_SECRET_KEY not set, sign up captcha disabled")
	}

	var uploader storage.Uploader
	if cfg.R2.Complete() {
		r2, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			logger.Error("could not set up object storage", "error", err)
			os.Exit(1)
		}
		uploader = r2
	} else {
		logger.Warn("object storage not configured, uploads disabled")
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.NewServer(
			server.Options{
				ServiceName:      cfg.ServiceName,
				StaticDir:        cfg.StaticDir,
				ReadOnly:         cfg.ReadOnly,
				BookingFormURL:   cfg.BookingFormURL,
				TurnstileSiteKey: cfg.TurnstileSiteKey,
				AdminUser:        cfg.AdminUser,
				AdminPassword:    cfg.AdminPassword,
				CORSOrigins:      cfg.CORSOrigins,
			},
			store,
			pricing.NewResolver(rates),
			tokens,
			turnstile,
			uploader,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error during listen and serve", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("could not flush traces", "error", err)
	}
	logger.Info("shutdown")
}
