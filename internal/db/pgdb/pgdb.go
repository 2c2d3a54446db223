// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pgdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freroxx/residence-yasmina/internal/model"
)

const connectAttempts = 5

// DB serves every store from a PostgreSQL database.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects to dsn, creates missing tables and seeds the default
// translations and residence.
func Open(ctx context.Context, dsn string) (*DB, error) {
	logger := slog.Default().WithGroup("pgdb")

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		logger.WarnContext(ctx, "connect to postgres failed", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	d := &DB{pool: pool}
	if err := d.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if err := d.seed(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

func (d *DB) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS translations (
			lang VARCHAR(16) PRIMARY KEY,
			data JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS residence (
			id SMALLINT PRIMARY KEY DEFAULT 1,
			data JSONB NOT NULL,
			CONSTRAINT single_residence CHECK (id = 1)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NULL
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			full_name VARCHAR(100) NOT NULL DEFAULT '',
			description VARCHAR(1000) NOT NULL DEFAULT '',
			avatar_url TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			subject VARCHAR(200) NOT NULL,
			message TEXT NOT NULL,
			language VARCHAR(16) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx ON contact_messages (created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := d.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seed(ctx context.Context) error {
	for lang, translation := range model.DefaultTranslations() {
		j, err := json.Marshal(translation)
		if err != nil {
			return err
		}
		if _, err := d.pool.Exec(ctx,
			`INSERT INTO translations (lang, data) VALUES ($1, $2) ON CONFLICT (lang) DO NOTHING`,
			lang, j,
		); err != nil {
			return err
		}
	}

	j, err := json.Marshal(model.DemoResidence())
	if err != nil {
		return err
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO residence (id, data) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		j,
	)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
