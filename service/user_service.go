package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-finance-api/logger"
	"go-finance-api/model"
	"go-finance-api/repository"
)

// UserService keeps the local user table in step with the identity provider.
type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SyncUser returns the local user for the token subject, creating it from the
// claims on first sight.
func (s *UserService) SyncUser(ctx context.Context, claims *model.AppClaims) (*model.User, error) {
	if claims == nil || claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	log := logger.Log.WithField("external_id", claims.Subject)

	user, err := s.userRepo.GetUserByExternalID(ctx, claims.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	user = &model.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		ImageURL:   claims.ImageURL,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	log.WithField("user_id", user.ID).Info("Created local user for new identity")
	return user, nil
}

// ResolveUser maps an authenticated subject to the local user.
func (s *UserService) ResolveUser(ctx context.Context, subject string) (*model.User, error) {
	return resolveUser(ctx, s.userRepo, subject)
}

func resolveUser(ctx context.Context, users repository.IUserRepository, subject string) (*model.User, error) {
	if subject == "" {
		return nil, ErrUnauthorized
	}
	user, err := users.GetUserByExternalID(ctx, subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}
	return user, nil
}
