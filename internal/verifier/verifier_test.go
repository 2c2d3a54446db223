// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package verifier

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/freroxx/residence-yasmina/internal/captcha"
)

func newSiteVerify(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.PostForm.Get("response") {
		case "good":
			w.Write([]byte(`{"success":true}`))
		case "down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.Write([]byte(`{"success":false}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	upstream := newSiteVerify(t)
	configured := NewVerifier(logger, "", captcha.NewTurnstile("s3cr3t").WithEndpoint(upstream.URL)).Handler()
	unconfigured := NewVerifier(logger, "", nil).Handler()

	testCases := []struct {
		name     string
		handler  http.Handler
		method   string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "valid token", handler: configured, method: http.MethodPost, body: `{"token":"good"}`, wantCode: http.StatusOK, wantBody: `{"success":true}`},
		{name: "rejected token", handler: configured, method: http.MethodPost, body: `{"token":"bad"}`, wantCode: http.StatusOK, wantBody: `{"success":false}`},
		{name: "missing token", handler: configured, method: http.MethodPost, body: `{}`, wantCode: http.StatusBadRequest, wantBody: `{"success":false}`},
		{name: "empty body", handler: configured, method: http.MethodPost, wantCode: http.StatusBadRequest, wantBody: `{"success":false}`},
		{name: "malformed body", handler: configured, method: http.MethodPost, body: `{"token":`, wantCode: http.StatusBadRequest, wantBody: `{"success":false}`},
		{name: "upstream error", handler: configured, method: http.MethodPost, body: `{"token":"down"}`, wantCode: http.StatusInternalServerError, wantBody: `{"success":false}`},
		{name: "secret not configured", handler: unconfigured, method: http.MethodPost, body: `{"token":"good"}`, wantCode: http.StatusInternalServerError, wantBody: `{"success":false}`},
		{name: "preflight", handler: configured, method: http.MethodOptions, wantCode: http.StatusOK, wantBody: "ok"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/verify-turnstile", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			tc.handler.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Errorf("got status %d, expected %d", w.Code, tc.wantCode)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tc.wantBody {
				t.Errorf("got body %q, expected %q", got, tc.wantBody)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("got allow origin %q, expected *", got)
			}
		})
	}
}
