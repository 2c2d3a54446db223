// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

const bucketMessage = "message_store"

func NewMessageStore(bdb *bolt.DB) (*MessageStore, error) {
	return &MessageStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMessage))
		return err
	})
}

type MessageStore struct {
	db *bolt.DB
}

func (m *MessageStore) CreateMessage(ctx context.Context, msg *model.ContactMessage) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateMessage")
	defer span.End()

	if msg.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		msg.ID = uuid.New()
	}
	if msg.CreatedAt == nil {
		now := time.Now()
		msg.CreatedAt = &now
	}

	j, err := json.Marshal(msg)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return msg.ID, m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMessage)).Put(msg.ID[:], j)
	})
}

// ListMessages returns all messages, newest first.
func (m *MessageStore) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListMessages")
	defer span.End()

	span.AddEvent("View bucket")
	var messages []*model.ContactMessage
	err := m.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMessage)).ForEach(func(_, v []byte) error {
			msg := &model.ContactMessage{}
			if err := json.Unmarshal(v, msg); err != nil {
				span.RecordError(err)
				return err
			}
			messages = append(messages, msg)
			return nil
		})
	})
	sortMessages(messages)
	return messages, err
}

func (m *MessageStore) DeleteMessage(ctx context.Context, msgID uuid.UUID) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteMessage")
	defer span.End()

	if msgID == uuid.Nil {
		err := errors.New("message ID is required for deleting")
		span.RecordError(err)
		return err
	}
	span.AddEvent("Update bucket")
	return m.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMessage))
		if bucket.Get(msgID[:]) == nil {
			return fmt.Errorf("message %s: %w", msgID, db.ErrNotFound)
		}
		return bucket.Delete(msgID[:])
	})
}

func sortMessages(messages []*model.ContactMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		a, b := messages[i].CreatedAt, messages[j].CreatedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})
}
