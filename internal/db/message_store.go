// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/model"
)

type MessageStore interface {
	CreateMessage(context.Context, *model.ContactMessage) (uuid.UUID, error)
	ListMessages(context.Context) ([]*model.ContactMessage, error)
	DeleteMessage(context.Context, uuid.UUID) error
}
