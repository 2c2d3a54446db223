// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

// Package verifier is a standalone captcha verification endpoint for
// clients that cannot post the token to the web site itself.
package verifier

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"

	"github.com/freroxx/residence-yasmina/internal/captcha"
)

type Verifier struct {
	logger    *slog.Logger
	address   string
	routes    map[string]http.Handler
	turnstile *captcha.Turnstile
}

// NewVerifier creates the service. A nil turnstile answers every
// verification with an internal error.
func NewVerifier(
	logger *slog.Logger,
	address string,
	turnstile *captcha.Turnstile,
) *Verifier {
	return &Verifier{
		logger:    logger,
		address:   address,
		turnstile: turnstile,
	}
}

// Handler returns the routes wrapped with access logging.
func (v *Verifier) Handler() http.Handler {
	mux := http.NewServeMux()

	loggerMW := sloghttp.NewWithConfig(
		v.logger, sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
		},
	)

	v.routes = v.addRoutes()
	registerRoutes(mux, v.routes)

	return loggerMW(withCORS(mux))
}

// ListenAndServe serves until ctx is done and then shuts down gracefully.
func (v *Verifier) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              v.address,
		Handler:           v.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		v.logger.Info("listening on", "address", v.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
