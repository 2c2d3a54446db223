// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/db/dbtest"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func TestStore(t *testing.T) {
	dbtest.Run(t, func(t *testing.T) db.Store {
		d, err := Open(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		return d
	})
}

func TestMessagesArePersisted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	d, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	id, err := d.CreateMessage(ctx, &model.ContactMessage{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "messages.json")); err != nil {
		t.Fatalf("expected messages.json: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	msgs, err := reopened.ListMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].ID != id {
		t.Errorf("unexpected messages after reopen: %+v", msgs)
	}
}

func TestCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "translations.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(dir); err == nil {
		t.Error("expected error for corrupt translations file")
	}
}
