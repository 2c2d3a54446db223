// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

const bucketTranslation = "translation_store"

func NewTranslationStore(bdb *bolt.DB) (*TranslationStore, error) {
	logger := slog.Default().WithGroup("kvdb")
	return &TranslationStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketTranslation))
		if err != nil {
			return err
		}
		if k, _ := bucket.Cursor().First(); k != nil {
			return nil
		}
		logger.Info("translation bucket is empty, seed default languages")
		for lang, translation := range model.DefaultTranslations() {
			j, err := json.Marshal(translation)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(lang), j); err != nil {
				return err
			}
		}
		return nil
	})
}

type TranslationStore struct {
	db *bolt.DB
}

func (t *TranslationStore) UpdateLanguages(ctx context.Context, translations map[string]*model.Translation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateLanguages")
	defer span.End()

	span.AddEvent("update languages", trace.WithAttributes(attribute.Int("count", len(translations))))
	var err error
	data := make(map[string][]byte, len(translations))
	for language, translation := range translations {
		if data[language], err = json.Marshal(translation); err != nil {
			tErr := fmt.Errorf("convert translation to json: %w", err)
			span.SetStatus(codes.Error, tErr.Error())
			return tErr
		}
	}
	return t.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTranslation))
		for lang, translation := range data {
			if bucket.Get([]byte(lang)) == nil {
				err := fmt.Errorf("update translation for language %q: %w", lang, db.ErrNotFound)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			if err := bucket.Put([]byte(lang), translation); err != nil {
				err := fmt.Errorf("update translation for language %q: %w", lang, err)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
		return nil
	})
}

func (t *TranslationStore) ListLanguages(ctx context.Context) ([]string, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLanguages")
	defer span.End()

	span.AddEvent("View bucket")
	res := make([]string, 0)
	return res, t.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTranslation))
		err := bucket.ForEach(func(k, _ []byte) error {
			res = append(res, string(k))
			return nil
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		sort.Strings(res)
		return nil
	})
}

func (t *TranslationStore) ByLanguage(ctx context.Context, l string) (*model.Translation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ByLanguage")
	defer span.End()
	span.AddEvent("View bucket")
	translation := &model.Translation{}
	err := t.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTranslation))
		trans := bucket.Get([]byte(l))
		if trans == nil {
			err := fmt.Errorf("translation %q: %w", l, db.ErrNotFound)
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(trans, translation)
	})
	if err != nil {
		return nil, err
	}
	return translation, nil
}

func (t *TranslationStore) CreateLanguage(ctx context.Context, key string, translation *model.Translation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateLanguage")
	defer span.End()

	val, err := json.Marshal(translation)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.AddEvent("Update bucket", trace.WithAttributes(attribute.String("language", key)))
	return t.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTranslation)).Put([]byte(key), val)
	})
}
