// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pgdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func (d *DB) ListLanguages(ctx context.Context) ([]string, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListLanguages")
	defer span.End()

	rows, err := d.pool.Query(ctx, `SELECT lang FROM translations ORDER BY lang`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list languages: %w", err)
	}
	langs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

func (d *DB) ByLanguage(ctx context.Context, l string) (*model.Translation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ByLanguage")
	defer span.End()

	var data []byte
	err := d.pool.QueryRow(ctx, `SELECT data FROM translations WHERE lang = $1`, l).Scan(&data)
	if isNoRows(err) {
		err := fmt.Errorf("translation %q: %w", l, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get translation: %w", err)
	}
	translation := &model.Translation{}
	return translation, json.Unmarshal(data, translation)
}

func (d *DB) CreateLanguage(ctx context.Context, key string, translation *model.Translation) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateLanguage")
	defer span.End()

	j, err := json.Marshal(translation)
	if err != nil {
		span.RecordError(err)
		return err
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO translations (lang, data) VALUES ($1, $2)
		 ON CONFLICT (lang) DO UPDATE SET data = EXCLUDED.data`,
		key, j,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("create language %q: %w", key, err)
	}
	return nil
}

func (d *DB) UpdateLanguages(ctx context.Context, translations map[string]*model.Translation) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateLanguages")
	defer span.End()

	span.AddEvent("update languages", trace.WithAttributes(attribute.Int("count", len(translations))))
	return pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		for lang, translation := range translations {
			j, err := json.Marshal(translation)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
				return fmt.Errorf("convert translation to json: %w", err)
			}
			tag, err := tx.Exec(ctx, `UPDATE translations SET data = $2 WHERE lang = $1`, lang, j)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return fmt.Errorf("update translation for language %q: %w", lang, err)
			}
			if tag.RowsAffected() == 0 {
				err := fmt.Errorf("update translation for language %q: %w", lang, db.ErrNotFound)
				span.RecordError(err)
				return err
			}
		}
		return nil
	})
}
