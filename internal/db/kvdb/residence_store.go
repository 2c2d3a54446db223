// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

const bucketResidence = "residence_store"

func NewResidenceStore(bdb *bolt.DB) (*ResidenceStore, error) {
	const key = "residence"

	logger := slog.Default().WithGroup("kvdb")
	return &ResidenceStore{db: bdb, rkey: key}, bdb.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketResidence))
		if err != nil {
			return err
		}
		res := bucket.Get([]byte(key))
		if err := json.Unmarshal(res, &model.Residence{}); err != nil {
			logger.Warn("could not unmarshal residence, create a new one", "error", err.Error())
			j, err := json.Marshal(model.DemoResidence())
			if err != nil {
				return err
			}
			return bucket.Put([]byte(key), j)
		}
		return nil
	})
}

type ResidenceStore struct {
	db   *bolt.DB
	rkey string
}

func (r *ResidenceStore) GetResidence(ctx context.Context) (*model.Residence, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetResidence")
	defer span.End()

	span.AddEvent("View bucket")
	residence := &model.Residence{}
	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketResidence))
		res := bucket.Get([]byte(r.rkey))
		if res == nil {
			err := fmt.Errorf("residence: %w", db.ErrNotFound)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return json.Unmarshal(res, residence)
	})
	if err != nil {
		return nil, err
	}
	return residence, nil
}

func (r *ResidenceStore) UpdateResidence(ctx context.Context, in *model.Residence) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateResidence")
	defer span.End()

	now := time.Now()
	in.UpdatedAt = &now

	residence, err := json.Marshal(in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.AddEvent("Update bucket")
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketResidence)).Put([]byte(r.rkey), residence)
	})
}

func (r *ResidenceStore) AddGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "AddGalleryImage")
	defer span.End()

	return r.modify(span, func(residence *model.Residence) error {
		residence.Gallery = append(residence.Gallery, image)
		return nil
	})
}

func (r *ResidenceStore) RemoveGalleryImage(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "RemoveGalleryImage")
	defer span.End()

	return r.modify(span, func(residence *model.Residence) error {
		if !residence.RemoveGalleryImage(id) {
			return fmt.Errorf("gallery image %s: %w", id, db.ErrNotFound)
		}
		return nil
	})
}

// modify runs fn on the stored residence within one write transaction.
func (r *ResidenceStore) modify(span trace.Span, fn func(*model.Residence) error) error {
	span.AddEvent("Update bucket")
	err := r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketResidence))
		res := bucket.Get([]byte(r.rkey))
		if res == nil {
			return fmt.Errorf("residence: %w", db.ErrNotFound)
		}
		residence := &model.Residence{}
		if err := json.Unmarshal(res, residence); err != nil {
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
		return bucket.Put([]byte(r.rkey), j)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
