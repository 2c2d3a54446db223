// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

func NewMessageStore(filename string) (*MessageStore, error) {
	store := &MessageStore{
		messages: make(map[uuid.UUID]model.ContactMessage),
		filename: filename,
	}

	if _, err := loadFromFile(filename, &store.messages); err != nil {
		return nil, err
	}
	return store, nil
}

type MessageStore struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]model.ContactMessage
	filename string
}

func (m *MessageStore) CreateMessage(ctx context.Context, msg *model.ContactMessage) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateMessage")
	defer span.End()

	span.AddEvent("Lock")
	m.mu.Lock()
	defer span.AddEvent("Unlock")
	defer m.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt == nil {
		now := time.Now()
		msg.CreatedAt = &now
	}
	m.messages[msg.ID] = *msg
	return msg.ID, saveToFile(ctx, m.filename, m.messages)
}

// ListMessages returns all messages, newest first.
func (m *MessageStore) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListMessages")
	defer span.End()

	span.AddEvent("RLock")
	m.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer m.mu.RUnlock()

	res := make([]*model.ContactMessage, 0, len(m.messages))
	for _, msg := range m.messages {
		msg := msg
		res = append(res, &msg)
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i].CreatedAt, res[j].CreatedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})
	return res, nil
}

func (m *MessageStore) DeleteMessage(ctx context.Context, msgID uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteMessage")
	defer span.End()

	span.AddEvent("Lock")
	m.mu.Lock()
	defer span.AddEvent("Unlock")
	defer m.mu.Unlock()

	if _, ok := m.messages[msgID]; !ok {
		err := fmt.Errorf("message %s: %w", msgID, db.ErrNotFound)
		span.RecordError(err)
		return err
	}
	delete(m.messages, msgID)
	return saveToFile(ctx, m.filename, m.messages)
}
