// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pgdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

const userColumns = `id, email, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

func (d *DB) CreateUser(ctx context.Context, user *model.User) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateUser")
	defer span.End()

	if user.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		user.ID = uuid.New()
	}
	user.Email = model.NormalizeEmail(user.Email)
	if user.CreatedAt == nil {
		now := time.Now()
		user.CreatedAt = &now
	}

	_, err := d.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		err := fmt.Errorf("user %q: %w", user.Email, db.ErrAlreadyExists)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return uuid.Nil, err
	}
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

func (d *DB) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetUserByID")
	defer span.End()

	user, err := scanUser(d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if isNoRows(err) {
		err := fmt.Errorf("user %s: %w", userID, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetUserByEmail")
	defer span.End()

	email = model.NormalizeEmail(email)
	user, err := scanUser(d.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if isNoRows(err) {
		err := fmt.Errorf("user %q: %w", email, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (d *DB) ListUsers(ctx context.Context) ([]*model.User, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListUsers")
	defer span.End()

	rows, err := d.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (d *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetProfile")
	defer span.End()

	profile := &model.Profile{}
	err := d.pool.QueryRow(ctx,
		`SELECT user_id, full_name, description, avatar_url, updated_at FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.FullName, &profile.Description, &profile.AvatarURL, &profile.UpdatedAt)
	if isNoRows(err) {
		err := fmt.Errorf("profile %s: %w", userID, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (d *DB) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	if profile.UserID == uuid.Nil {
		err := errors.New("user ID is required for updating a profile")
		span.RecordError(err)
		return err
	}
	now := time.Now()
	profile.UpdatedAt = &now

	_, err := d.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name, description, avatar_url, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   full_name = EXCLUDED.full_name,
		   description = EXCLUDED.description,
		   avatar_url = EXCLUDED.avatar_url,
		   updated_at = EXCLUDED.updated_at`,
		profile.UserID, profile.FullName, profile.Description, profile.AvatarURL, profile.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		err := fmt.Errorf("user %s: %w", profile.UserID, db.ErrNotFound)
		span.RecordError(err)
		return err
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
