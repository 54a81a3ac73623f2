package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/storage"
)

// IUserRepository defines the interface for user data operations
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserRepository implements IUserRepository interface
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new IUserRepository instance
func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The username is canonicalized into the keyed
// column, so a clash that differs only in case surfaces as
// storage.ErrConstraintViolation.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.UsernameKey = fold(user.Username)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return storage.Classify(err)
	}
	return nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return &user, nil
}

// FindByUsername finds a user by username, compared case-insensitively.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username_key = ?", fold(username)).First(&user).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return &user, nil
}

// Delete removes a user. The engine cascades in the same statement: rooms the
// user owns (and transitively their memberships and messages), the user's own
// memberships, and every message the user authored. No reader observes a
// partially cascaded state.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return storage.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", storage.ErrNotFound, id)
	}
	return nil
}

// fold canonicalizes a name for case-insensitive comparison.
func fold(s string) string {
	return strings.ToLower(s)
}
