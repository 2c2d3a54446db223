// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewR2ClientDisabled(t *testing.T) {
	_, err := NewR2Client(context.Background(), R2Config{Endpoint: "http://localhost", Bucket: "b"})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestUpload(t *testing.T) {
	var gotPath, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotPath, gotType, gotBody = r.URL.Path, r.Header.Get("Content-Type"), string(body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	client, err := NewR2Client(context.Background(), R2Config{
		Endpoint:      srv.URL,
		AccessKey:     "access",
		SecretKey:     "secret",
		Bucket:        "yasmina",
		PublicBaseURL: "https://cdn.example.com/",
	})
	if err != nil {
		t.Fatal(err)
	}

	url, err := client.Upload(context.Background(), "avatars/a.png", strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://cdn.example.com/avatars/a.png" {
		t.Errorf("unexpected url %q", url)
	}
	if gotPath != "/yasmina/avatars/a.png" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotType != "image/png" {
		t.Errorf("unexpected content type %q", gotType)
	}
	if gotBody != "png-bytes" {
		t.Errorf("unexpected body %q", gotBody)
	}
}

func TestObjectKey(t *testing.T) {
	testCases := []struct {
		prefix   string
		filename string
		suffix   string
	}{
		{prefix: "avatars", filename: "Me.PNG", suffix: ".png"},
		{prefix: "gallery/", filename: "pool.jpg", suffix: ".jpg"},
		{prefix: "gallery", filename: "noext", suffix: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			key := ObjectKey(tc.prefix, tc.filename)
			prefix := strings.TrimSuffix(tc.prefix, "/") + "/"
			if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, tc.suffix) {
				t.Errorf("unexpected key %q", key)
			}
			if len(key) != len(prefix)+36+len(tc.suffix) {
				t.Errorf("expected uuid based name, got %q", key)
			}
		})
	}
	if ObjectKey("a", "x.png") == ObjectKey("a", "x.png") {
		t.Error("keys must not repeat")
	}
}

func TestIsImage(t *testing.T) {
	for ct, want := range map[string]bool{
		"image/png":       true,
		"IMAGE/JPEG":      true,
		"image/webp":      true,
		"application/pdf": false,
		"":                false,
	} {
		if got := IsImage(ct); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", ct, got, want)
		}
	}
}
