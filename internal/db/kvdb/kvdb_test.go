// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/db/dbtest"
)

func TestStore(t *testing.T) {
	dbtest.Run(t, func(t *testing.T) db.Store {
		d, err := Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { d.Close() })
		return d
	})
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	r, err := d.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	r.Name = "Yasmina"
	if err := d.UpdateResidence(ctx, r); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	d, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	r, err = d.GetResidence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Yasmina" {
		t.Errorf("residence was reseeded, got name %q", r.Name)
	}
}
