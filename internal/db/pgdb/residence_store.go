// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pgdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func (d *DB) GetResidence(ctx context.Context) (*model.Residence, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "GetResidence")
	defer span.End()

	var data []byte
	err := d.pool.QueryRow(ctx, `SELECT data FROM residence WHERE id = 1`).Scan(&data)
	if isNoRows(err) {
		err := fmt.Errorf("residence: %w", db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get residence: %w", err)
	}
	residence := &model.Residence{}
	return residence, json.Unmarshal(data, residence)
}

func (d *DB) UpdateResidence(ctx context.Context, in *model.Residence) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateResidence")
	defer span.End()

	now := time.Now()
	in.UpdatedAt = &now
	j, err := json.Marshal(in)
	if err != nil {
		span.RecordError(err)
		return err
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO residence (id, data) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`,
		j,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("update residence: %w", err)
	}
	return nil
}

func (d *DB) AddGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "AddGalleryImage")
	defer span.End()

	err := d.modifyResidence(ctx, func(residence *model.Residence) error {
		residence.Gallery = append(residence.Gallery, image)
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (d *DB) RemoveGalleryImage(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RemoveGalleryImage")
	defer span.End()

	err := d.modifyResidence(ctx, func(residence *model.Residence) error {
		if !residence.RemoveGalleryImage(id) {
			return fmt.Errorf("gallery image %s: %w", id, db.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// modifyResidence locks the residence row for the duration of fn.
func (d *DB) modifyResidence(ctx context.Context, fn func(*model.Residence) error) error {
	return pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		var data []byte
		err := tx.QueryRow(ctx, `SELECT data FROM residence WHERE id = 1 FOR UPDATE`).Scan(&data)
		if isNoRows(err) {
			return fmt.Errorf("residence: %w", db.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get residence: %w", err)
		}
		residence := &model.Residence{}
		if err := json.Unmarshal(data, residence); err != nil {
			return err
		}
		if err := fn(residence); err != nil {
			return err
		}
		now := time.Now()
		residence.UpdatedAt = &now
		j, err := json.Marshal(residence)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE residence SET data = $1 WHERE id = 1`, j); err != nil {
			return fmt.Errorf("update residence: %w", err)
		}
		return nil
	})
}
