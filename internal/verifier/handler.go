// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package verifier

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxBodySize = 64 << 10

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success bool `json:"success"`
}

func (v *Verifier) verify(w http.ResponseWriter, r *http.Request) {
	var span trace.Span
	ctx := r.Context()
	ctx, span = tracer.Start(ctx, "Verifier.verify")
	defer span.End()

	var in verifyRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		span.RecordError(err)
		v.logger.WarnContext(ctx, "could not decode request", "error", err)
		writeJSON(w, http.StatusBadRequest, verifyResponse{})
		return
	}
	if in.Token == "" {
		writeJSON(w, http.StatusBadRequest, verifyResponse{})
		return
	}
	if v.turnstile == nil {
		err := errors.New("turnstile secret key not configured")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		v.logger.ErrorContext(ctx, "cannot verify token", "error", err)
		writeJSON(w, http.StatusInternalServerError, verifyResponse{})
		return
	}

	ok, err := v.turnstile.Verify(ctx, in.Token, remoteIP(r))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		v.logger.ErrorContext(ctx, "turnstile verification error", "error", err)
		writeJSON(w, http.StatusInternalServerError, verifyResponse{})
		return
	}
	span.SetAttributes(attribute.Bool("success", ok))
	writeJSON(w, http.StatusOK, verifyResponse{Success: ok})
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func remoteIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
