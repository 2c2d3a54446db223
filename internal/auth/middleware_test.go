// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/model"
)

func newRouter(t *testing.T, tokens *Tokens) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session(tokens))
	router.GET("/private", RequireSession("/auth"), func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		c.String(http.StatusOK, claims.Email)
	})
	return router
}

func TestRequireSession(t *testing.T) {
	tokens, err := NewTokens("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	valid, err := tokens.Issue(&model.User{ID: uuid.New(), Email: "guest@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		cookie   string
		htmx     bool
		wantCode int
		wantBody string
	}{
		{name: "no cookie", wantCode: http.StatusSeeOther},
		{name: "invalid cookie", cookie: "garbage", wantCode: http.StatusSeeOther},
		{name: "htmx without session", htmx: true, wantCode: http.StatusUnauthorized},
		{name: "valid session", cookie: valid, wantCode: http.StatusOK, wantBody: "guest@example.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tc.cookie})
			}
			if tc.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			w := httptest.NewRecorder()
			newRouter(t, tokens).ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, w.Code)
			}
			if tc.wantBody != "" && w.Body.String() != tc.wantBody {
				t.Errorf("expected body %q, got %q", tc.wantBody, w.Body.String())
			}
			if tc.wantCode == http.StatusSeeOther && w.Header().Get("Location") != "/auth" {
				t.Errorf("expected redirect to /auth, got %q", w.Header().Get("Location"))
			}
		})
	}
}

func TestSetCookie(t *testing.T) {
	tokens, err := NewTokens("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	SetCookie(c, "value", tokens)

	res := w.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != SessionCookie || ck.Value != "value" || !ck.HttpOnly || ck.MaxAge != 3600 {
		t.Errorf("unexpected cookie %+v", ck)
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", ck.SameSite)
	}
}
