// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/freroxx/residence-yasmina/internal/db/jsondb"
	"github.com/freroxx/residence-yasmina/internal/db/kvdb"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func TestInto(t *testing.T) {
	ctx := context.Background()
	src, err := jsondb.Open(filepath.Join(t.TempDir(), "json"))
	if err != nil {
		t.Fatal(err)
	}
	dst, err := kvdb.Open(filepath.Join(t.TempDir(), "out.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Close()

	user := &model.User{Email: "guest@example.com", PasswordHash: "hash"}
	if _, err := src.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}
	if err := src.UpsertProfile(ctx, &model.Profile{UserID: user.ID, FullName: "Guest"}); err != nil {
		t.Fatal(err)
	}
	if _, err := src.CreateMessage(ctx, &model.ContactMessage{Name: "A", Email: "a@example.com", Subject: "S", Message: "M"}); err != nil {
		t.Fatal(err)
	}
	residence, err := src.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	residence.Name = "Converted"
	if err := src.UpdateResidence(ctx, residence); err != nil {
		t.Fatal(err)
	}

	if err := into(ctx, dst, src); err != nil {
		t.Fatal(err)
	}

	got, err := dst.GetUserByEmail(ctx, "guest@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID || got.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", got)
	}
	profile, err := dst.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if profile.FullName != "Guest" {
		t.Errorf("got full name %q, expected Guest", profile.FullName)
	}
	msgs, err := dst.ListMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Errorf("got %d messages, expected 1", len(msgs))
	}
	res, err := dst.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "Converted" {
		t.Errorf("got residence %q, expected Converted", res.Name)
	}
}
