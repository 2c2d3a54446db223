// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pgdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func (d *DB) CreateMessage(ctx context.Context, msg *model.ContactMessage) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateMessage")
	defer span.End()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt == nil {
		now := time.Now()
		msg.CreatedAt = &now
	}
	_, err := d.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, language, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Language, msg.CreatedAt,
	)
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, fmt.Errorf("insert message: %w", err)
	}
	return msg.ID, nil
}

func (d *DB) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListMessages")
	defer span.End()

	rows, err := d.pool.Query(ctx,
		`SELECT id, name, email, subject, message, language, created_at
		 FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []*model.ContactMessage
	for rows.Next() {
		msg := &model.ContactMessage{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.Language, &msg.CreatedAt); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func (d *DB) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteMessage")
	defer span.End()

	tag, err := d.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err := fmt.Errorf("message %s: %w", id, db.ErrNotFound)
		span.RecordError(err)
		return err
	}
	return nil
}
