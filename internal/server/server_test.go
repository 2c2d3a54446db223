// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freroxx/residence-yasmina/internal/auth"
	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/db/kvdb"
	"github.com/freroxx/residence-yasmina/internal/pricing"
)

func newTestServer(t *testing.T, opts Options) (*Server, db.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := kvdb.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	table, err := pricing.DefaultRateTable()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if opts.AdminUser == "" {
		opts.AdminUser, opts.AdminPassword = "admin", "admin"
	}
	return NewServer(opts, store, pricing.NewResolver(table), tokens, nil, nil), store
}

func do(s http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("got body %s", got)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "PAGE_NOT_FOUND") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestQuoteAPI(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	type quote struct {
		Room             string `json:"room"`
		EffectivePersons int    `json:"effective_persons"`
		Nights           int    `json:"nights"`
		Season           string `json:"season"`
		Period           string `json:"period"`
		Nightly          string `json:"nightly"`
		Weekly           string `json:"weekly"`
		Total            string `json:"total"`
		CapacityExceeded bool   `json:"capacity_exceeded"`
	}

	testCases := []struct {
		name       string
		query      string
		wantCode   int
		wantQuote  *quote
		wantErrors []string
	}{
		{
			name:     "suite a one week in high season",
			query:    "room=suiteA&persons=2&checkin=2024-01-10&checkout=2024-01-17",
			wantCode: http.StatusOK,
			wantQuote: &quote{
				Room: "suiteA", EffectivePersons: 2, Nights: 7, Season: "winter", Period: "high",
				Nightly: "572.00", Weekly: "4004.00", Total: "4004.00",
			},
		},
		{
			name:     "apartment in summer",
			query:    "room=appartement&persons=3&checkin=2024-07-15&checkout=2024-07-18",
			wantCode: http.StatusOK,
			wantQuote: &quote{
				Room: "appartement", EffectivePersons: 3, Nights: 3, Season: "summer", Period: "summer",
				Nightly: "683.10", Weekly: "4781.70", Total: "2049.30",
			},
		},
		{
			name:     "suite c over capacity",
			query:    "room=suiteC&persons=6&checkin=2024-08-01&checkout=2024-08-08",
			wantCode: http.StatusOK,
			wantQuote: &quote{
				Room: "suiteC", EffectivePersons: 4, Nights: 7, Season: "summer", Period: "summer",
				Nightly: "782.50", Weekly: "5477.50", Total: "5477.50", CapacityExceeded: true,
			},
		},
		{
			name:     "check out before check in",
			query:    "room=suiteA&persons=2&checkin=2024-01-17&checkout=2024-01-10",
			wantCode: http.StatusOK,
		},
		{
			name:     "nobody staying",
			query:    "room=suiteA&persons=0&checkin=2024-01-10&checkout=2024-01-17",
			wantCode: http.StatusOK,
		},
		{
			name:     "negative persons",
			query:    "room=suiteA&persons=-1&checkin=2024-01-10&checkout=2024-01-17",
			wantCode: http.StatusOK,
		},
		{
			name:     "incomplete query",
			query:    "room=suiteA",
			wantCode: http.StatusOK,
		},
		{
			name:       "malformed input",
			query:      "room=penthouse&persons=two&checkin=10.01.2024&checkout=2024-01-17",
			wantCode:   http.StatusBadRequest,
			wantErrors: []string{"room", "persons", "checkin"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(s, httptest.NewRequest(http.MethodGet, "/api/quote?"+tc.query, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("got status %d, expected %d: %s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode != http.StatusOK {
				var body struct {
					Code   string              `json:"code"`
					Errors map[string][]string `json:"errors"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatal(err)
				}
				for _, field := range tc.wantErrors {
					if len(body.Errors[field]) == 0 {
						t.Errorf("expected an error for %q, got %v", field, body.Errors)
					}
				}
				return
			}

			var body struct {
				Quote *quote `json:"quote"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			switch {
			case tc.wantQuote == nil && body.Quote != nil:
				t.Errorf("expected no quote, got %+v", body.Quote)
			case tc.wantQuote != nil && body.Quote == nil:
				t.Error("expected a quote, got null")
			case tc.wantQuote != nil && *body.Quote != *tc.wantQuote:
				t.Errorf("got %+v, expected %+v", *body.Quote, *tc.wantQuote)
			}
		})
	}
}

func TestQuoteAPICORS(t *testing.T) {
	s, _ := newTestServer(t, Options{CORSOrigins: []string{"https://residence-yasmina.com"}})
	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	req.Header.Set("Origin", "https://residence-yasmina.com")
	w := do(s, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://residence-yasmina.com" {
		t.Errorf("got allow origin %q", got)
	}
}

func TestPages(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	testCases := []struct {
		path string
		want string
	}{
		{path: "/?lang=fr", want: "Accueil"},
		{path: "/?lang=en", want: "Home"},
		{path: "/rooms?lang=fr", want: "Nos Logements"},
		{path: "/rooms?lang=en", want: "Our Accommodations"},
		{path: "/rooms", want: "572,00"},
		{path: "/prices?lang=en", want: "Price calculator"},
		{path: "/gallery?lang=fr", want: "lightbox"},
		{path: "/about?lang=en", want: "Souk El Had"},
		{path: "/booking", want: "docs.google.com/forms"},
		{path: "/contact?lang=fr", want: "Contactez-Nous"},
		{path: "/auth?lang=en", want: "password"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(s, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("got status %d, expected %d", w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Errorf("body does not contain %q", tc.want)
			}
		})
	}
}

func TestLanguageCookie(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	w := do(s, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	var langCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "lang" {
			langCookie = c
		}
	}
	if langCookie == nil || langCookie.Value != "en" {
		t.Fatalf("expected lang cookie en, got %v", langCookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(langCookie)
	w = do(s, req)
	if !strings.Contains(w.Body.String(), `<html lang="en">`) {
		t.Error("cookie language was not applied")
	}

	w = do(s, httptest.NewRequest(http.MethodGet, "/?lang=xx", nil))
	if !strings.Contains(w.Body.String(), `<html lang="fr">`) {
		t.Error("unknown language did not fall back to french")
	}
}

func TestQuotePartial(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "quote", query: "room=suiteA&persons=2&checkin=2024-01-10&checkout=2024-01-17", want: "4 004,00"},
		{name: "prompt", query: "room=suiteA", want: "quote-empty"},
		{name: "error", query: "checkin=nope", want: "quote-error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/prices/quote?lang=fr&"+tc.query, nil)
			req.Header.Set("Hx-Request", "true")
			w := do(s, req)
			if w.Code != http.StatusOK {
				t.Fatalf("got status %d, expected %d", w.Code, http.StatusOK)
			}
			if strings.Contains(w.Body.String(), "<html") {
				t.Error("partial contains the page layout")
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Errorf("body does not contain %q: %s", tc.want, w.Body.String())
			}
		})
	}
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestContact(t *testing.T) {
	s, store := newTestServer(t, Options{})

	w := do(s, postForm("/contact?lang=en", url.Values{
		"name":    {"Amina"},
		"email":   {"not-an-email"},
		"subject": {""},
		"message": {"Hello"},
	}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "toast-error") {
		t.Errorf("expected an error toast, got %s", w.Body.String())
	}

	w = do(s, postForm("/contact?lang=en", url.Values{
		"name":    {"Amina"},
		"email":   {"Amina@Example.com "},
		"subject": {"Summer stay"},
		"message": {"Is the suite A free in July?"},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, expected %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Message sent!") {
		t.Errorf("expected a success toast, got %s", w.Body.String())
	}

	msgs, err := store.ListMessages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, expected 1", len(msgs))
	}
	if msgs[0].Email != "amina@example.com" || msgs[0].Language != "en" {
		t.Errorf("unexpected message %+v", msgs[0])
	}
}

func TestProfileRequiresSession(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/auth" {
		t.Errorf("got location %q, expected /auth", got)
	}
}

func TestSignupAndProfile(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	w := do(s, postForm("/auth/signup?lang=en", url.Values{
		"email":     {"guest@example.com"},
		"password":  {"secret123"},
		"full_name": {"Yasmine Alaoui"},
	}))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, expected %d: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			session = c
		}
	}
	if session == nil || !session.HttpOnly {
		t.Fatalf("expected http only session cookie, got %v", session)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile?lang=en", nil)
	req.AddCookie(session)
	w = do(s, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusOK)
	}
	for _, want := range []string{"guest@example.com", "Yasmine Alaoui", "YA"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("profile does not contain %q", want)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/auth", nil)
	req.AddCookie(session)
	if w = do(s, req); w.Code != http.StatusSeeOther {
		t.Errorf("signed in auth page: got status %d, expected %d", w.Code, http.StatusSeeOther)
	}

	w = do(s, postForm("/auth/signup?lang=en", url.Values{
		"email":     {"GUEST@example.com"},
		"password":  {"secret123"},
		"full_name": {"Someone Else"},
	}))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate sign up: got status %d, expected %d", w.Code, http.StatusConflict)
	}

	w = do(s, postForm("/auth/login?lang=en", url.Values{
		"email":    {"guest@example.com"},
		"password": {"wrong-password"},
	}))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got status %d, expected %d", w.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Error("wrong password page does not show the error")
	}

	w = do(s, postForm("/auth/login", url.Values{
		"email":    {"guest@example.com"},
		"password": {"secret123"},
	}))
	if w.Code != http.StatusSeeOther {
		t.Errorf("login: got status %d, expected %d", w.Code, http.StatusSeeOther)
	}
}

func TestAvatarUploadDisabled(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	w := do(s, postForm("/auth/signup", url.Values{
		"email":     {"guest@example.com"},
		"password":  {"secret123"},
		"full_name": {"Guest"},
	}))
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	if w := do(s, req); w.Code != http.StatusServiceUnavailable {
		t.Errorf("got status %d, expected %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestReadOnly(t *testing.T) {
	s, _ := newTestServer(t, Options{ReadOnly: true})

	w := do(s, postForm("/contact?lang=en", url.Values{"name": {"x"}}))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusMethodNotAllowed)
	}
	if !strings.Contains(w.Body.String(), "maintenance") {
		t.Errorf("expected the maintenance page, got %s", w.Body.String())
	}

	if w := do(s, httptest.NewRequest(http.MethodGet, "/prices", nil)); w.Code != http.StatusOK {
		t.Errorf("GET in read only mode: got status %d, expected %d", w.Code, http.StatusOK)
	}
}

func TestAdmin(t *testing.T) {
	s, store := newTestServer(t, Options{AdminUser: "owner", AdminPassword: "pw"})

	if w := do(s, httptest.NewRequest(http.MethodGet, "/admin/", nil)); w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusUnauthorized)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.SetBasicAuth("owner", "pw")
	if w := do(s, req); w.Code != http.StatusOK {
		t.Fatalf("got status %d, expected %d", w.Code, http.StatusOK)
	}

	req = postForm("/admin/translations", url.Values{"en.nav.home": {"Welcome"}})
	req.SetBasicAuth("owner", "pw")
	if w := do(s, req); w.Code != http.StatusNoContent {
		t.Fatalf("update translations: got status %d, expected %d: %s", w.Code, http.StatusNoContent, w.Body.String())
	}
	ctx := context.Background()
	en, err := store.ByLanguage(ctx, "en")
	if err != nil {
		t.Fatal(err)
	}
	if en.Nav.Home != "Welcome" || en.Nav.Rooms != "Accommodations" {
		t.Errorf("unexpected navigation after update: %+v", en.Nav)
	}

	residence, err := store.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	imageID := residence.Gallery[0].ID
	req = httptest.NewRequest(http.MethodDelete, "/admin/gallery/"+imageID.String(), nil)
	req.SetBasicAuth("owner", "pw")
	if w := do(s, req); w.Code != http.StatusOK {
		t.Fatalf("delete image: got status %d, expected %d", w.Code, http.StatusOK)
	}
	req = httptest.NewRequest(http.MethodDelete, "/admin/gallery/"+imageID.String(), nil)
	req.SetBasicAuth("owner", "pw")
	if w := do(s, req); w.Code != http.StatusNotFound {
		t.Errorf("delete image twice: got status %d, expected %d", w.Code, http.StatusNotFound)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/messages/"+imageID.String(), nil)
	req.SetBasicAuth("owner", "pw")
	if w := do(s, req); w.Code != http.StatusNotFound {
		t.Errorf("delete unknown message: got status %d, expected %d", w.Code, http.StatusNotFound)
	}
}
