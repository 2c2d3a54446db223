// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

const (
	bucketUser      = "user_store"
	bucketUserEmail = "user_email_index"
	bucketProfile   = "profile_store"
)

func NewUserStore(bdb *bolt.DB) (*UserStore, error) {
	return &UserStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketUser, bucketUserEmail, bucketProfile} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// UserStore keeps accounts and their profiles. Emails are unique.
type UserStore struct {
	db *bolt.DB
}

func (u *UserStore) CreateUser(ctx context.Context, user *model.User) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateUser")
	defer span.End()

	if user.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		user.ID = uuid.New()
	}
	user.Email = model.NormalizeEmail(user.Email)
	if user.CreatedAt == nil {
		now := time.Now()
		user.CreatedAt = &now
	}

	j, err := json.Marshal(user)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return user.ID, u.db.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket([]byte(bucketUserEmail))
		if index.Get([]byte(user.Email)) != nil {
			err := fmt.Errorf("user %q: %w", user.Email, db.ErrAlreadyExists)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if err := index.Put([]byte(user.Email), user.ID[:]); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketUser)).Put(user.ID[:], j)
	})
}

func (u *UserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserByID")
	defer span.End()

	span.AddEvent("View bucket")
	user := &model.User{}
	err := u.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketUser)).Get(userID[:])
		if res == nil {
			err := fmt.Errorf("user %s: %w", userID, db.ErrNotFound)
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(res, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserByEmail")
	defer span.End()

	email = model.NormalizeEmail(email)
	span.AddEvent("View bucket")
	user := &model.User{}
	err := u.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket([]byte(bucketUserEmail)).Get([]byte(email))
		if id == nil {
			err := fmt.Errorf("user %q: %w", email, db.ErrNotFound)
			span.RecordError(err)
			return err
		}
		res := tx.Bucket([]byte(bucketUser)).Get(id)
		if res == nil {
			err := errors.New("email index points to a missing user")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return json.Unmarshal(res, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListUsers")
	defer span.End()

	span.AddEvent("View bucket")
	var users []*model.User
	return users, u.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketUser)).ForEach(func(_, v []byte) error {
			user := &model.User{}
			if err := json.Unmarshal(v, user); err != nil {
				span.RecordError(err)
				return err
			}
			users = append(users, user)
			return nil
		})
	})
}

func (u *UserStore) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetProfile")
	defer span.End()

	span.AddEvent("View bucket")
	profile := &model.Profile{}
	err := u.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketProfile)).Get(userID[:])
		if res == nil {
			err := fmt.Errorf("profile %s: %w", userID, db.ErrNotFound)
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(res, profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *UserStore) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	if profile.UserID == uuid.Nil {
		err := errors.New("user ID is required for updating a profile")
		span.RecordError(err)
		return err
	}
	now := time.Now()
	profile.UpdatedAt = &now

	j, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	span.AddEvent("Update bucket")
	return u.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketUser)).Get(profile.UserID[:]) == nil {
			return fmt.Errorf("user %s: %w", profile.UserID, db.ErrNotFound)
		}
		return tx.Bucket([]byte(bucketProfile)).Put(profile.UserID[:], j)
	})
}
