// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNilVerifierAccepts(t *testing.T) {
	v := NewTurnstile("")
	if v != nil {
		t.Fatal("expected nil verifier without secret")
	}
	ok, err := v.Verify(context.Background(), "", "")
	if err != nil || !ok {
		t.Errorf("expected nil verifier to accept, got %v %v", ok, err)
	}
}

func TestVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("secret") != "s3cr3t" {
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-secret"]}`))
			return
		}
		switch r.PostForm.Get("response") {
		case "good":
			if r.PostForm.Get("remoteip") != "203.0.113.7" {
				w.Write([]byte(`{"success":false}`))
				return
			}
			w.Write([]byte(`{"success":true}`))
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		case "garbage":
			w.Write([]byte(`not json`))
		default:
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}
	}))
	defer srv.Close()

	v := NewTurnstile("s3cr3t").WithEndpoint(srv.URL)

	testCases := []struct {
		name    string
		token   string
		want    bool
		wantErr bool
		errIs   error
	}{
		{name: "valid token", token: "good", want: true},
		{name: "rejected token", token: "bad"},
		{name: "missing token", token: "", wantErr: true, errIs: ErrMissingToken},
		{name: "upstream error", token: "broken", wantErr: true},
		{name: "invalid response", token: "garbage", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Verify(context.Background(), tc.token, "203.0.113.7")
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.errIs != nil && !errors.Is(err, tc.errIs) {
				t.Errorf("expected %v, got %v", tc.errIs, err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
