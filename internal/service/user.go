package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ferroxide/chatstore/internal/logger"
	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/repository"
	"github.com/ferroxide/chatstore/internal/storage"
)

// IUserService defines the interface for account operations
type IUserService interface {
	Register(ctx context.Context, username, passwordHash string, avatarHash *string) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserService implements the IUserService interface
type UserService struct {
	users repository.IUserRepository
	log   *logger.Logger
}

// NewUserService creates a new IUserService instance
func NewUserService(users repository.IUserRepository, log *logger.Logger) IUserService {
	return &UserService{users: users, log: log}
}

// Register creates an account. The password hash is produced by the caller;
// plaintext never reaches this layer. Uniqueness is decided by the engine's
// unique index, not by a pre-check, so concurrent registrations of the same
// name (in any casing) leave exactly one winner.
func (s *UserService) Register(ctx context.Context, username, passwordHash string, avatarHash *string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		AvatarHash:   avatarHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConstraintViolation) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithContext(ctx).Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username, compared case-insensitively.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Delete removes an account and, through engine cascades, every room the user
// owns plus all memberships and messages that depended on the user or those
// rooms.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.log.WithContext(ctx).Info("user deleted", zap.Uint("user_id", id))
	return nil
}
