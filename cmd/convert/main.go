// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/freroxx/residence-yasmina/internal/config"
	"github.com/freroxx/residence-yasmina/internal/db"
)

func main() {
	var (
		from = flag.String("from", "jsondb://testdata", "source database connection string")
		to   = flag.String("to", "kvdb://output.db", "destination database connection string")
	)
	flag.Parse()

	logger := config.NewLogger(slog.LevelInfo)
	slog.SetDefault(logger)
	ctx := context.Background()

	src, err := config.OpenStore(ctx, *from)
	if err != nil {
		logger.Error("could not open source", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	dst, err := config.OpenStore(ctx, *to)
	if err != nil {
		logger.Error("could not open destination", "error", err)
		os.Exit(1)
	}
	defer dst.Close()

	logger.Info("start converting", "from", *from, "to", *to)
	if err := into(ctx, dst, src); err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
	logger.Info("finished converting")
}

// into copies every record of src into dst. Existing users and messages
// in dst are kept.
func into(ctx context.Context, dst, src db.Store) error {
	list, err := src.ListLanguages(ctx)
	if err != nil {
		return fmt.Errorf("list languages: %w", err)
	}
	for _, key := range list {
		t, err := src.ByLanguage(ctx, key)
		if err != nil {
			return fmt.Errorf("read language %q: %w", key, err)
		}
		if err := dst.CreateLanguage(ctx, key, t); err != nil {
			return fmt.Errorf("write language %q: %w", key, err)
		}
	}

	residence, err := src.GetResidence(ctx)
	if err != nil {
		return fmt.Errorf("read residence: %w", err)
	}
	if err := dst.UpdateResidence(ctx, residence); err != nil {
		return fmt.Errorf("write residence: %w", err)
	}

	users, err := src.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if _, err := dst.CreateUser(ctx, u); err != nil {
			if errors.Is(err, db.ErrAlreadyExists) {
				slog.Default().Warn("user exists, skipped", "user", u.ID.String())
				continue
			}
			return fmt.Errorf("write user %s: %w", u.ID, err)
		}
		profile, err := src.GetProfile(ctx, u.ID)
		if errors.Is(err, db.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read profile %s: %w", u.ID, err)
		}
		if err := dst.UpsertProfile(ctx, profile); err != nil {
			return fmt.Errorf("write profile %s: %w", u.ID, err)
		}
	}

	msgs, err := src.ListMessages(ctx)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}
	for _, m := range msgs {
		if _, err := dst.CreateMessage(ctx, m); err != nil {
			return fmt.Errorf("write message %s: %w", m.ID, err)
		}
	}
	return nil
}
