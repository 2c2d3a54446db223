// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/db/jsondb"
	"github.com/freroxx/residence-yasmina/internal/db/kvdb"
	"github.com/freroxx/residence-yasmina/internal/db/pgdb"
)

// OpenStore selects the backend by the scheme of dsn:
// kvdb://path/file.db, jsondb://path/dir or postgres://user:pw@host/db.
func OpenStore(ctx context.Context, dsn string) (db.Store, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse db connection string: %w", err)
	}

	var store db.Store
	switch u.Scheme {
	case "kvdb":
		store, err = openStore(kvdb.Open(u.Host + u.Path))
	case "jsondb":
		store, err = openStore(jsondb.Open(u.Host + u.Path))
	case "postgres", "postgresql":
		store, err = openStore(pgdb.Open(ctx, dsn))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", u.Scheme)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", u.Scheme, err)
	}
	return store, nil
}

func openStore[T db.Store](store T, err error) (db.Store, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}
