// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DB serves every store from a single bolt file.
type DB struct {
	*TranslationStore
	*ResidenceStore
	*UserStore
	*MessageStore

	bdb *bolt.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	bdb, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database %q: %w", path, err)
	}

	d := &DB{bdb: bdb}
	if d.TranslationStore, err = NewTranslationStore(bdb); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("initialize translation bucket: %w", err)
	}
	if d.ResidenceStore, err = NewResidenceStore(bdb); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("initialize residence bucket: %w", err)
	}
	if d.UserStore, err = NewUserStore(bdb); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("initialize user buckets: %w", err)
	}
	if d.MessageStore, err = NewMessageStore(bdb); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("initialize message bucket: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.bdb.Close()
}
