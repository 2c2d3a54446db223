// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/model"
)

func TestNewTokensRequiresSecret(t *testing.T) {
	if _, err := NewTokens("", 0); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
	tokens, err := NewTokens("secret", 0)
	if err != nil {
		t.Fatal(err)
	}
	if tokens.TTL() != DefaultTokenTTL {
		t.Errorf("expected default ttl, got %s", tokens.TTL())
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens, err := NewTokens("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	user := &model.User{ID: uuid.New(), Email: "guest@example.com"}
	raw, err := tokens.Issue(user)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := tokens.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("unexpected claims %+v", claims)
	}
	if d := time.Until(claims.ExpiresAt); d <= 0 || d > time.Hour {
		t.Errorf("unexpected expiry %s", claims.ExpiresAt)
	}
}

func TestTokenRejected(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "guest@example.com"}

	tokens, err := NewTokens("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	other, err := NewTokens("other-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	forged, err := other.Issue(user)
	if err != nil {
		t.Fatal(err)
	}

	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := tokens.Issue(user)
	if err != nil {
		t.Fatal(err)
	}
	tokens.now = time.Now

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "forged", token: forged},
		{name: "expired", token: expired},
		{name: "alg none", token: none},
		{name: "missing exp", token: noExp},
		{name: "subject is not a uuid", token: badSubject},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tokens.Parse(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
