// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "yasmina_session"
	claimsKey     = "auth.claims"
)

// Session reads the session cookie and stores valid claims on the
// context. Requests without a valid session pass through unchanged.
func Session(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			ClearCookie(c)
			c.Next()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireSession redirects anonymous requests to loginPath. htmx requests
// get an HX-Redirect header instead.
func RequireSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ClaimsFrom(c); ok {
			c.Next()
			return
		}
		if c.GetHeader("Hx-Request") == "true" {
			c.Header("HX-Redirect", loginPath)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Redirect(http.StatusSeeOther, loginPath)
		c.Abort()
	}
}

func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func SetCookie(c *gin.Context, token string, tokens *Tokens) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(tokens.TTL().Seconds()), "/", "", isSecure(c), true)
}

func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", isSecure(c), true)
}

func isSecure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
