// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

// Package dbtest runs the same behavioural checks against every store
// backend.
package dbtest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

// Run exercises all stores of a backend. open must return an empty,
// freshly seeded store.
func Run(t *testing.T, open func(t *testing.T) db.Store) {
	t.Run("translations", func(t *testing.T) { testTranslations(t, open(t)) })
	t.Run("residence", func(t *testing.T) { testResidence(t, open(t)) })
	t.Run("gallery", func(t *testing.T) { testGallery(t, open(t)) })
	t.Run("users", func(t *testing.T) { testUsers(t, open(t)) })
	t.Run("profiles", func(t *testing.T) { testProfiles(t, open(t)) })
	t.Run("messages", func(t *testing.T) { testMessages(t, open(t)) })
}

func testTranslations(t *testing.T, s db.Store) {
	ctx := context.Background()

	langs, err := s.ListLanguages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Fatalf("expected seeded languages [en fr], got %v", langs)
	}

	fr, err := s.ByLanguage(ctx, "fr")
	if err != nil {
		t.Fatal(err)
	}
	if fr.Nav.Home != "Accueil" {
		t.Errorf("unexpected nav.home %q", fr.Nav.Home)
	}

	if _, err := s.ByLanguage(ctx, "de"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	fr.Hero.CTA = "Réservez"
	if err := s.UpdateLanguages(ctx, map[string]*model.Translation{"fr": fr}); err != nil {
		t.Fatal(err)
	}
	updated, err := s.ByLanguage(ctx, "fr")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Hero.CTA != "Réservez" {
		t.Errorf("update was not stored, got %q", updated.Hero.CTA)
	}

	if err := s.UpdateLanguages(ctx, map[string]*model.Translation{"de": fr}); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating unknown language, got %v", err)
	}

	if err := s.CreateLanguage(ctx, "es", &model.Translation{LanguageName: "Español"}); err != nil {
		t.Fatal(err)
	}
	langs, err = s.ListLanguages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(langs) != 3 || langs[1] != "es" {
		t.Errorf("expected [en es fr], got %v", langs)
	}
}

func testResidence(t *testing.T, s db.Store) {
	ctx := context.Background()

	r, err := s.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Résidence Yasmina" || len(r.Gallery) != 10 || len(r.Rooms) != 4 {
		t.Fatalf("unexpected seeded residence: %+v", r)
	}

	r.Gallery = append(r.Gallery, &model.GalleryImage{ID: uuid.New(), Src: "/static/img/new.jpg", AltKey: "view"})
	r.BookingFormURL = "https://example.com/form"
	if err := s.UpdateResidence(ctx, r); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Gallery) != 11 || got.BookingFormURL != "https://example.com/form" {
		t.Errorf("update was not stored: %+v", got)
	}
	if got.UpdatedAt == nil {
		t.Error("expected updated_at to be set")
	}
}

func testGallery(t *testing.T, s db.Store) {
	ctx := context.Background()

	before, err := s.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}

	const added = 8
	images := make([]*model.GalleryImage, added)
	var wg sync.WaitGroup
	errs := make(chan error, added)
	for i := range images {
		images[i] = &model.GalleryImage{ID: uuid.New(), Src: "/static/img/concurrent.jpg"}
		wg.Add(1)
		go func(image *model.GalleryImage) {
			defer wg.Done()
			errs <- s.AddGalleryImage(ctx, image)
		}(images[i])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Gallery) != len(before.Gallery)+added {
		t.Fatalf("expected %d images, got %d", len(before.Gallery)+added, len(got.Gallery))
	}

	if err := s.RemoveGalleryImage(ctx, images[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveGalleryImage(ctx, images[0].ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	got, err = s.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Gallery) != len(before.Gallery)+added-1 {
		t.Errorf("expected %d images, got %d", len(before.Gallery)+added-1, len(got.Gallery))
	}
	for _, image := range got.Gallery {
		if image.ID == images[0].ID {
			t.Error("removed image is still stored")
		}
	}
}

func testUsers(t *testing.T, s db.Store) {
	ctx := context.Background()

	user := &model.User{Email: "  Guest@Example.com ", PasswordHash: "hash"}
	id, err := s.CreateUser(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if id == uuid.Nil || id != user.ID {
		t.Fatalf("unexpected id %s", id)
	}

	byID, err := s.GetUserByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if byID.Email != "guest@example.com" {
		t.Errorf("email was not normalized: %q", byID.Email)
	}

	byEmail, err := s.GetUserByEmail(ctx, "GUEST@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail.ID != id || byEmail.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", byEmail)
	}

	_, err = s.CreateUser(ctx, &model.User{Email: "guest@example.com", PasswordHash: "other"})
	if !errors.Is(err, db.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}

	if _, err := s.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetUserByID(ctx, uuid.New()); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.CreateUser(ctx, &model.User{Email: "second@example.com", PasswordHash: "x"}); err != nil {
		t.Fatal(err)
	}
	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func testProfiles(t *testing.T, s db.Store) {
	ctx := context.Background()

	id, err := s.CreateUser(ctx, &model.User{Email: "profile@example.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetProfile(ctx, id); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	p := &model.Profile{UserID: id, FullName: "Amina El Idrissi"}
	if err := s.UpsertProfile(ctx, p); err != nil {
		t.Fatal(err)
	}
	p.Description = "Habituée de l'hiver"
	p.AvatarURL = "https://cdn.example.com/a.png"
	if err := s.UpsertProfile(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetProfile(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.FullName != p.FullName || got.Description != p.Description || got.AvatarURL != p.AvatarURL {
		t.Errorf("unexpected profile %+v", got)
	}

	if err := s.UpsertProfile(ctx, &model.Profile{UserID: uuid.New()}); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func testMessages(t *testing.T, s db.Store) {
	ctx := context.Background()

	older := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	first := &model.ContactMessage{Name: "A", Email: "a@example.com", Subject: "s", Message: "m", CreatedAt: &older}
	second := &model.ContactMessage{Name: "B", Email: "b@example.com", Subject: "s", Message: "m", CreatedAt: &newer}
	for _, msg := range []*model.ContactMessage{first, second} {
		if _, err := s.CreateMessage(ctx, msg); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := s.ListMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0].ID != second.ID {
		t.Fatalf("expected newest message first, got %+v", msgs)
	}

	if err := s.DeleteMessage(ctx, first.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteMessage(ctx, first.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	msgs, err = s.ListMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Errorf("expected 1 message, got %d", len(msgs))
	}
}
