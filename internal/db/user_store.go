// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/model"
)

type UserStore interface {
	CreateUser(context.Context, *model.User) (uuid.UUID, error)
	GetUserByID(context.Context, uuid.UUID) (*model.User, error)
	GetUserByEmail(context.Context, string) (*model.User, error)
	ListUsers(context.Context) ([]*model.User, error)
}

type ProfileStore interface {
	GetProfile(context.Context, uuid.UUID) (*model.Profile, error)
	UpsertProfile(context.Context, *model.Profile) error
}
