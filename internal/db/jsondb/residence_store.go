// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func NewResidenceStore(filename string) (*ResidenceStore, error) {
	store := &ResidenceStore{
		filename:  filename,
		residence: model.DemoResidence(),
	}
	if _, err := loadFromFile(filename, &store.residence); err != nil {
		return nil, err
	}
	return store, nil
}

type ResidenceStore struct {
	mu sync.RWMutex

	filename  string
	residence *model.Residence
}

// GetResidence returns a copy, callers may modify it freely.
func (r *ResidenceStore) GetResidence(ctx context.Context) (*model.Residence, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetResidence")
	defer span.End()

	span.AddEvent("RLock")
	r.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer r.mu.RUnlock()

	j, err := json.Marshal(r.residence)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := &model.Residence{}
	return out, json.Unmarshal(j, out)
}

func (r *ResidenceStore) UpdateResidence(ctx context.Context, in *model.Residence) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateResidence")
	defer span.End()

	span.AddEvent("Lock")
	r.mu.Lock()
	defer span.AddEvent("Unlock")
	defer r.mu.Unlock()

	now := time.Now()
	in.UpdatedAt = &now
	r.residence = in
	return saveToFile(ctx, r.filename, r.residence)
}

func (r *ResidenceStore) AddGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "AddGalleryImage")
	defer span.End()

	span.AddEvent("Lock")
	r.mu.Lock()
	defer span.AddEvent("Unlock")
	defer r.mu.Unlock()

	r.residence.Gallery = append(r.residence.Gallery, image)
	now := time.Now()
	r.residence.UpdatedAt = &now
	return saveToFile(ctx, r.filename, r.residence)
}

func (r *ResidenceStore) RemoveGalleryImage(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RemoveGalleryImage")
	defer span.End()

	span.AddEvent("Lock")
	r.mu.Lock()
	defer span.AddEvent("Unlock")
	defer r.mu.Unlock()

	if !r.residence.RemoveGalleryImage(id) {
		err := fmt.Errorf("gallery image %s: %w", id, db.ErrNotFound)
		span.RecordError(err)
		return err
	}
	now := time.Now()
	r.residence.UpdatedAt = &now
	return saveToFile(ctx, r.filename, r.residence)
}
