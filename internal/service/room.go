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
	"github.com/ferroxide/chatstore/pkg/credential"
)

// IRoomService defines the interface for room and membership operations
type IRoomService interface {
	Create(ctx context.Context, name string, ownerID uint, iconHash, passwordHash *string) (*model.Room, error)
	Get(ctx context.Context, id uint) (*model.Room, error)
	Delete(ctx context.Context, id uint) error

	Join(ctx context.Context, roomID, userID uint) error
	Leave(ctx context.Context, roomID, userID uint) error
	IsMember(ctx context.Context, roomID, userID uint) (bool, error)
	RoomsOf(ctx context.Context, userID uint) ([]*model.Room, error)
	MembersOf(ctx context.Context, roomID uint) ([]*model.User, error)

	CheckPassword(ctx context.Context, roomID uint, password string) error
}

// RoomService implements the IRoomService interface
type RoomService struct {
	rooms repository.IRoomRepository
	log   *logger.Logger
}

// NewRoomService creates a new IRoomService instance
func NewRoomService(rooms repository.IRoomRepository, log *logger.Logger) IRoomService {
	return &RoomService{rooms: rooms, log: log}
}

// Create creates a room owned by ownerID. Name uniqueness is case-insensitive
// and decided by the engine; a dangling owner is a referential failure. A nil
// passwordHash means the room is open to join without a password.
func (s *RoomService) Create(ctx context.Context, name string, ownerID uint, iconHash, passwordHash *string) (*model.Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyRoomName
	}

	room := &model.Room{
		Name:         name,
		OwnerID:      ownerID,
		IconHash:     iconHash,
		PasswordHash: passwordHash,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		switch {
		case errors.Is(err, storage.ErrConstraintViolation):
			return nil, ErrRoomNameTaken
		case errors.Is(err, storage.ErrReferentialIntegrity):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.log.WithContext(ctx).Info("room created",
		zap.Uint("room_id", room.ID),
		zap.String("name", room.Name),
		zap.Uint("owner_id", room.OwnerID),
	)
	return room, nil
}

// Get retrieves a room by ID.
func (s *RoomService) Get(ctx context.Context, id uint) (*model.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return room, nil
}

// Delete removes a room and, through engine cascades, all of its memberships
// and messages.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.log.WithContext(ctx).Info("room deleted", zap.Uint("room_id", id))
	return nil
}

// Join adds a user to a room. A duplicate join reports ErrAlreadyMember; there
// is no upsert. Password verification, when required, is the caller's step via
// CheckPassword before joining.
func (s *RoomService) Join(ctx context.Context, roomID, userID uint) error {
	if _, err := s.Get(ctx, roomID); err != nil {
		return err
	}

	if err := s.rooms.AddMember(ctx, roomID, userID); err != nil {
		switch {
		case errors.Is(err, storage.ErrConstraintViolation):
			return ErrAlreadyMember
		case errors.Is(err, storage.ErrReferentialIntegrity):
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.log.WithContext(ctx).Info("member joined",
		zap.Uint("room_id", roomID),
		zap.Uint("user_id", userID),
	)
	return nil
}

// Leave removes a user from a room. Leaving a room the user is not in is not
// an error; the deletion simply affects zero rows.
func (s *RoomService) Leave(ctx context.Context, roomID, userID uint) error {
	if err := s.rooms.RemoveMember(ctx, roomID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// IsMember checks whether a user belongs to a room.
func (s *RoomService) IsMember(ctx context.Context, roomID, userID uint) (bool, error) {
	ok, err := s.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return ok, nil
}

// RoomsOf retrieves all rooms a user is a member of.
func (s *RoomService) RoomsOf(ctx context.Context, userID uint) ([]*model.Room, error) {
	rooms, err := s.rooms.RoomsOfUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user rooms: %w", err)
	}
	return rooms, nil
}

// MembersOf retrieves all users that belong to a room.
func (s *RoomService) MembersOf(ctx context.Context, roomID uint) ([]*model.User, error) {
	if _, err := s.Get(ctx, roomID); err != nil {
		return nil, err
	}

	users, err := s.rooms.MembersOfRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room members: %w", err)
	}
	return users, nil
}

// CheckPassword verifies a room's entry password. A room without a stored
// hash is open: any password, including none, passes.
func (s *RoomService) CheckPassword(ctx context.Context, roomID uint, password string) error {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return err
	}
	if room.PasswordHash == nil {
		return nil
	}
	if !credential.Verify(*room.PasswordHash, password) {
		return ErrWrongPassword
	}
	return nil
}
