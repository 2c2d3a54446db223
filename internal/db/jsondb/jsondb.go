// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"fmt"
	"os"
	"path/filepath"
)

// DB keeps every store as a json file inside one directory.
type DB struct {
	*TranslationStore
	*ResidenceStore
	*UserStore
	*MessageStore
}

func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var (
		d   DB
		err error
	)
	if d.TranslationStore, err = NewTranslationStore(filepath.Join(dir, "translations.json")); err != nil {
		return nil, fmt.Errorf("could not initialize translation store: %w", err)
	}
	if d.ResidenceStore, err = NewResidenceStore(filepath.Join(dir, "residence.json")); err != nil {
		return nil, fmt.Errorf("could not initialize residence store: %w", err)
	}
	if d.UserStore, err = NewUserStore(filepath.Join(dir, "users.json")); err != nil {
		return nil, fmt.Errorf("could not initialize user store: %w", err)
	}
	if d.MessageStore, err = NewMessageStore(filepath.Join(dir, "messages.json")); err != nil {
		return nil, fmt.Errorf("could not initialize message store: %w", err)
	}
	return &d, nil
}

func (d *DB) Close() error {
	return nil
}
