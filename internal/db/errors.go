// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package db

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Store bundles every store a backend provides.
type Store interface {
	TranslationStore
	ResidenceStore
	UserStore
	ProfileStore
	MessageStore
	Close() error
}
