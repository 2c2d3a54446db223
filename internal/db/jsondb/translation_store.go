// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func NewTranslationStore(filename string) (*TranslationStore, error) {
	store := &TranslationStore{
		filename:   filename,
		byLanguage: make(map[string]model.Translation),
	}
	found, err := loadFromFile(filename, &store.byLanguage)
	if err != nil {
		return nil, err
	}
	if !found {
		for lang, translation := range model.DefaultTranslations() {
			store.byLanguage[lang] = *translation
		}
	}
	return store, nil
}

type TranslationStore struct {
	mu sync.RWMutex

	filename   string
	byLanguage map[string]model.Translation
}

func (t *TranslationStore) ListLanguages(ctx context.Context) ([]string, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLanguages")
	defer span.End()

	span.AddEvent("RLock")
	t.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer t.mu.RUnlock()

	res := make([]string, 0, len(t.byLanguage))
	for lang := range t.byLanguage {
		res = append(res, lang)
	}
	sort.Strings(res)
	return res, nil
}

func (t *TranslationStore) ByLanguage(ctx context.Context, l string) (*model.Translation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ByLanguage")
	defer span.End()

	span.AddEvent("RLock")
	t.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer t.mu.RUnlock()

	lang, ok := t.byLanguage[l]
	if !ok {
		err := fmt.Errorf("translation %q: %w", l, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	return &lang, nil
}

func (t *TranslationStore) CreateLanguage(ctx context.Context, key string, translation *model.Translation) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateLanguage")
	defer span.End()

	span.AddEvent("Lock")
	t.mu.Lock()
	defer span.AddEvent("Unlock")
	defer t.mu.Unlock()

	t.byLanguage[key] = *translation
	return saveToFile(ctx, t.filename, t.byLanguage)
}

func (t *TranslationStore) UpdateLanguages(ctx context.Context, translations map[string]*model.Translation) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateLanguages")
	defer span.End()

	span.AddEvent("Lock")
	t.mu.Lock()
	defer span.AddEvent("Unlock")
	defer t.mu.Unlock()

	for lang := range translations {
		if _, ok := t.byLanguage[lang]; !ok {
			err := fmt.Errorf("update translation for language %q: %w", lang, db.ErrNotFound)
			span.RecordError(err)
			return err
		}
	}
	for lang, translation := range translations {
		t.byLanguage[lang] = *translation
	}
	return saveToFile(ctx, t.filename, t.byLanguage)
}
