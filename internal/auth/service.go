// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freroxx/residence-yasmina/internal/db"
	"github.com/freroxx/residence-yasmina/internal/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Store is the persistence the account service needs.
type Store interface {
	db.UserStore
	db.ProfileStore
}

type SignupInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	FullName string `form:"full_name"`
}

func (in *SignupInput) Validate() error {
	ie := model.NewInputError()
	model.CheckEmail(ie, "email", model.NormalizeEmail(in.Email))
	switch n := utf8.RuneCountInString(in.Password); {
	case n == 0:
		ie.Add("password", model.ValidationRequired)
	case n < model.MinPasswordLength:
		ie.Add("password", model.ValidationTooShort)
	case len(in.Password) > model.MaxPasswordBytes:
		ie.Add("password", model.ValidationTooLong)
	}
	model.CheckText(ie, "full_name", in.FullName, 1, model.MaxFullNameLength)
	return ie.OrNil()
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store) *Service {
	return &Service{store: store, logger: slog.Default().WithGroup("auth")}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Signup")
	defer span.End()

	if err := in.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	email := model.NormalizeEmail(in.Email)

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		span.RecordError(ErrEmailTaken)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, db.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Email: email, PasswordHash: hash}
	if _, err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &model.Profile{UserID: user.ID, FullName: strings.TrimSpace(in.FullName)}
	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		s.logger.WarnContext(ctx, "could not create profile", "error", err, "user", user.ID.String())
	}
	s.logger.InfoContext(ctx, "user signed up", "user", user.ID.String())
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Login")
	defer span.End()

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			span.RecordError(err)
			s.logger.ErrorContext(ctx, "could not lookup user", "error", err)
		}
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(user.PasswordHash, password) {
		span.AddEvent("password mismatch")
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) User(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.store.GetUserByID(ctx, userID)
}

// Profile returns the stored profile or an empty one for users that never
// saved it.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Profile")
	defer span.End()

	p, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return &model.Profile{UserID: userID}, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return p, nil
}

// UpdateProfile stores name and description and keeps the avatar.
func (s *Service) UpdateProfile(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.UpdateProfile")
	defer span.End()

	if err := in.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	current, err := s.Profile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	current.FullName = strings.TrimSpace(in.FullName)
	current.Description = strings.TrimSpace(in.Description)
	if err := s.store.UpsertProfile(ctx, current); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return current, nil
}

func (s *Service) SetAvatar(ctx context.Context, userID uuid.UUID, url string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.SetAvatar")
	defer span.End()

	current, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	current.AvatarURL = url
	if err := s.store.UpsertProfile(ctx, current); err != nil {
		span.RecordError(err)
		return fmt.Errorf("set avatar: %w", err)
	}
	return nil
}
