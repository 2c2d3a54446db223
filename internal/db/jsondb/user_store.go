// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

type userFile struct {
	Users    map[uuid.UUID]model.User    `json:"users"`
	Profiles map[uuid.UUID]model.Profile `json:"profiles"`
}

func NewUserStore(filename string) (*UserStore, error) {
	store := &UserStore{
		filename: filename,
		data: userFile{
			Users:    make(map[uuid.UUID]model.User),
			Profiles: make(map[uuid.UUID]model.Profile),
		},
	}
	if _, err := loadFromFile(filename, &store.data); err != nil {
		return nil, err
	}
	if store.data.Users == nil {
		store.data.Users = make(map[uuid.UUID]model.User)
	}
	if store.data.Profiles == nil {
		store.data.Profiles = make(map[uuid.UUID]model.Profile)
	}
	return store, nil
}

type UserStore struct {
	mu sync.RWMutex

	filename string
	data     userFile
}

func (u *UserStore) CreateUser(ctx context.Context, user *model.User) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateUser")
	defer span.End()

	span.AddEvent("Lock")
	u.mu.Lock()
	defer span.AddEvent("Unlock")
	defer u.mu.Unlock()

	user.Email = model.NormalizeEmail(user.Email)
	for _, existing := range u.data.Users {
		if existing.Email == user.Email {
			err := fmt.Errorf("user %q: %w", user.Email, db.ErrAlreadyExists)
			span.RecordError(err)
			return uuid.Nil, err
		}
	}
	if user.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		user.ID = uuid.New()
	}
	if user.CreatedAt == nil {
		now := time.Now()
		user.CreatedAt = &now
	}
	u.data.Users[user.ID] = *user
	return user.ID, saveToFile(ctx, u.filename, u.data)
}

func (u *UserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserByID")
	defer span.End()

	span.AddEvent("RLock")
	u.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer u.mu.RUnlock()

	user, ok := u.data.Users[userID]
	if !ok {
		err := fmt.Errorf("user %s: %w", userID, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserByEmail")
	defer span.End()

	span.AddEvent("RLock")
	u.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer u.mu.RUnlock()

	email = model.NormalizeEmail(email)
	for _, user := range u.data.Users {
		if user.Email == email {
			return &user, nil
		}
	}
	err := fmt.Errorf("user %q: %w", email, db.ErrNotFound)
	span.RecordError(err)
	return nil, err
}

func (u *UserStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListUsers")
	defer span.End()

	span.AddEvent("RLock")
	u.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer u.mu.RUnlock()

	res := make([]*model.User, 0, len(u.data.Users))
	for _, user := range u.data.Users {
		user := user
		res = append(res, &user)
	}
	return res, nil
}

func (u *UserStore) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetProfile")
	defer span.End()

	span.AddEvent("RLock")
	u.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer u.mu.RUnlock()

	profile, ok := u.data.Profiles[userID]
	if !ok {
		err := fmt.Errorf("profile %s: %w", userID, db.ErrNotFound)
		span.RecordError(err)
		return nil, err
	}
	return &profile, nil
}

func (u *UserStore) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	if profile.UserID == uuid.Nil {
		err := errors.New("user ID is required for updating a profile")
		span.RecordError(err)
		return err
	}

	span.AddEvent("Lock")
	u.mu.Lock()
	defer span.AddEvent("Unlock")
	defer u.mu.Unlock()

	if _, ok := u.data.Users[profile.UserID]; !ok {
		err := fmt.Errorf("user %s: %w", profile.UserID, db.ErrNotFound)
		span.RecordError(err)
		return err
	}
	now := time.Now()
	profile.UpdatedAt = &now
	u.data.Profiles[profile.UserID] = *profile
	return saveToFile(ctx, u.filename, u.data)
}
